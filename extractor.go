package paperlens

import (
	"fmt"
	"strings"

	"github.com/ckaiser/paperlens/layout"
	"github.com/ckaiser/paperlens/links"
	"github.com/ckaiser/paperlens/renderer"
)

// Extractor provides a fluent interface for extracting reconstructed text,
// links, and title metadata from PDFs. Each configuration method returns a
// new Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source
	filename string

	// Renderer supplying per-glyph page geometry
	renderer renderer.Renderer

	// Lifecycle
	ownsRenderer   bool // true if we opened the renderer and should close it
	rendererOpened bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// PageLinks holds the links found on one page.
type PageLinks struct {
	// Page is the 1-based page number.
	Page int

	// Links are the URLs found on the page, with offsets into the page's
	// reconstructed text.
	Links []links.Link

	// PageLength is the length of the page's reconstructed text, so
	// downstream scoring can weigh offsets relative to the page.
	PageLength int
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:       e.filename,
		renderer:       e.renderer,
		ownsRenderer:   e.ownsRenderer,
		rendererOpened: e.rendererOpened,
		options:        e.options.clone(),
		err:            e.err,
	}
}

// ensureRenderer opens the backing document if not already open.
func (e *Extractor) ensureRenderer() error {
	if e.rendererOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	doc, err := renderer.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.renderer = doc
	e.ownsRenderer = true
	e.rendererOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsRenderer {
		if doc, ok := e.renderer.(*renderer.Document); ok && doc != nil {
			err := doc.Close()
			e.renderer = nil
			e.ownsRenderer = false
			return err
		}
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	text, err := paperlens.Open("paper.pdf").Pages(1, 3, 5).Text()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	text, err := paperlens.Open("paper.pdf").PageRange(1, 2).Text()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// PlainScripts disables the [ and ] markers around sub/superscript runs.
//
// Example:
//
//	text, err := paperlens.Open("paper.pdf").PlainScripts().Text()
func (e *Extractor) PlainScripts() *Extractor {
	newExt := e.clone()
	newExt.options.markScripts = false
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the document.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureRenderer(); err != nil {
		return 0, err
	}
	return e.renderer.NumPages(), nil
}

// Text reconstructs and concatenates the text of the selected pages
// (all pages by default) in reading order.
//
// Example:
//
//	text, err := paperlens.Open("paper.pdf").Text()
func (e *Extractor) Text() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if err := e.ensureRenderer(); err != nil {
		return "", err
	}

	pages, err := e.selectedPages()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range pages {
		text, err := e.pageText(n)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// PageText reconstructs the text of a single page (1-indexed).
//
// Example:
//
//	first, err := paperlens.Open("paper.pdf").PageText(1)
func (e *Extractor) PageText(n int) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if err := e.ensureRenderer(); err != nil {
		return "", err
	}
	if err := e.checkPage(n); err != nil {
		return "", err
	}
	return e.pageText(n)
}

// Links finds the URLs on every selected page of the document, with their
// approximate offsets into each page's reconstructed text.
//
// Example:
//
//	pages, err := paperlens.Open("paper.pdf").Links()
func (e *Extractor) Links() ([]PageLinks, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureRenderer(); err != nil {
		return nil, err
	}

	pages, err := e.selectedPages()
	if err != nil {
		return nil, err
	}

	result := make([]PageLinks, 0, len(pages))
	for _, n := range pages {
		text, err := e.pageText(n)
		if err != nil {
			return nil, err
		}
		result = append(result, PageLinks{
			Page:       n,
			Links:      links.ParseText(text),
			PageLength: len(text),
		})
	}
	return result, nil
}

// Title extracts the paper title from the first page.
//
// Example:
//
//	title, err := paperlens.Open("paper.pdf").Title()
func (e *Extractor) Title() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if err := e.ensureRenderer(); err != nil {
		return "", err
	}
	if err := e.checkPage(1); err != nil {
		return "", err
	}

	text, err := e.pageText(1)
	if err != nil {
		return "", err
	}
	return ParseTitle(text), nil
}

// pageText renders page n and runs layout reconstruction on it.
func (e *Extractor) pageText(n int) (string, error) {
	content, err := e.renderer.Page(n)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", n, err)
	}

	cfg := layout.DefaultConfig()
	cfg.MarkScripts = e.options.markScripts

	page, err := layout.NewPage(content, cfg)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", n, err)
	}
	return page.Text(), nil
}

// selectedPages resolves the configured page selection against the
// document, defaulting to all pages.
func (e *Extractor) selectedPages() ([]int, error) {
	total := e.renderer.NumPages()

	if len(e.options.pages) == 0 {
		all := make([]int, total)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}

	for _, n := range e.options.pages {
		if n < 1 || n > total {
			return nil, fmt.Errorf("page %d out of range [1, %d]", n, total)
		}
	}
	return e.options.pages, nil
}

func (e *Extractor) checkPage(n int) error {
	if total := e.renderer.NumPages(); n < 1 || n > total {
		return fmt.Errorf("page %d out of range [1, %d]", n, total)
	}
	return nil
}
