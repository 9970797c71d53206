package renderer

import (
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/ckaiser/paperlens/model"
)

// US Letter, used when a page carries no resolvable MediaBox.
const (
	defaultPageWidth  = 612
	defaultPageHeight = 792
)

// Document renders pages from a PDF file via github.com/ledongthuc/pdf.
type Document struct {
	reader *pdf.Reader
	closer io.Closer
}

// Open opens the PDF at path. The caller must call Close when done.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Document{reader: r, closer: f}, nil
}

// NewDocument wraps an already-opened reader. Close is a no-op.
func NewDocument(r *pdf.Reader) *Document {
	return &Document{reader: r}
}

// Close releases the underlying file, if any.
func (d *Document) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// NumPages returns the document's page count.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// Page renders page n (1-based) into per-glyph geometry. PDF coordinates
// have a bottom-left origin; rectangles are flipped so Y grows downward,
// which is the convention the layout engine expects. The underlying parser
// panics on malformed content streams, so the render is fenced.
func (d *Document) Page(n int) (content model.PageContent, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render page %d: %v", n, r)
		}
	}()

	page := d.reader.Page(n)
	if page.V.IsNull() {
		return model.PageContent{}, fmt.Errorf("render page %d: no such page", n)
	}

	width, height := pageSize(page)
	return glyphContent(page.Content().Text, width, height), nil
}

// glyphContent converts raw text fragments into per-glyph page content,
// flipping Y and run-length encoding the font sizes.
func glyphContent(texts []pdf.Text, width, height float64) model.PageContent {
	content := model.PageContent{Width: width, Height: height}

	var text []rune
	for _, t := range texts {
		runes := []rune(t.S)
		if len(runes) == 0 {
			continue
		}

		// Multi-rune fragments get the fragment's width split evenly;
		// the engine only needs approximate per-glyph extents.
		w := t.W / float64(len(runes))
		for i, r := range runes {
			x1 := t.X + float64(i)*w
			rect := model.NewRect(x1, height-t.Y-t.FontSize, x1+w, height-t.Y)

			text = append(text, r)
			content.Layout = append(content.Layout, rect)

			last := len(content.Attrs) - 1
			if last >= 0 && content.Attrs[last].FontSize == t.FontSize {
				content.Attrs[last].EndIndex = len(text) - 1
			} else {
				content.Attrs = append(content.Attrs, model.AttrSpan{
					EndIndex: len(text) - 1,
					FontSize: t.FontSize,
				})
			}
		}
	}
	content.Text = string(text)

	return content
}

// pageSize resolves the page's MediaBox, following the Parent chain when the
// page node does not carry one directly, and falls back to US Letter.
func pageSize(page pdf.Page) (width, height float64) {
	node := page.V
	for depth := 0; depth < 16 && !node.IsNull(); depth++ {
		if box := node.Key("MediaBox"); !box.IsNull() {
			if w, h, ok := boxSize(box); ok {
				return w, h
			}
		}
		node = node.Key("Parent")
	}
	return defaultPageWidth, defaultPageHeight
}

// boxSize extracts width and height from a [llx lly urx ury] array.
func boxSize(box pdf.Value) (width, height float64, ok bool) {
	if box.Kind() != pdf.Array || box.Len() != 4 {
		return 0, 0, false
	}

	coords := make([]float64, 4)
	for i := range coords {
		v := box.Index(i)
		switch v.Kind() {
		case pdf.Integer:
			coords[i] = float64(v.Int64())
		case pdf.Real:
			coords[i] = v.Float64()
		default:
			return 0, 0, false
		}
	}

	width = coords[2] - coords[0]
	height = coords[3] - coords[1]
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}
