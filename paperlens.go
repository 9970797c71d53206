// Package paperlens reconstructs the reading order of PDF documents and
// extracts the artifact links and title metadata academic papers carry.
//
// PDF text has no inherent ordering: pages are bags of positioned glyph
// rectangles, multi-column layouts interleave physically, and footnotes or
// superscripts are offset visually rather than marked. The layout package
// rebuilds line, paragraph, and column structure from raw glyph geometry;
// this package wraps it in a fluent API.
//
// Basic usage:
//
//	text, err := paperlens.Open("paper.pdf").Text()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	links, err := paperlens.Open("paper.pdf").
//	    Pages(1, 2).
//	    PlainScripts().
//	    Links()
//
// For advanced use cases, the lower-level layout and renderer packages are
// also available.
package paperlens

import "github.com/ckaiser/paperlens/renderer"

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via
// Close() or after the last terminal operation.
//
// Example:
//
//	text, err := paperlens.Open("paper.pdf").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromRenderer creates an Extractor from an already-constructed renderer.
// This is useful for non-file backends and tests. The caller is responsible
// for the renderer's lifecycle.
//
// Example:
//
//	doc, err := renderer.Open("paper.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//	text, err := paperlens.FromRenderer(doc).Text()
func FromRenderer(r renderer.Renderer) *Extractor {
	return &Extractor{
		renderer:       r,
		rendererOpened: true,
		options:        defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	title := paperlens.Must(paperlens.Open("paper.pdf").Title())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
