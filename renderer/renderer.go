package renderer

import "github.com/ckaiser/paperlens/model"

// Renderer produces per-glyph page geometry. Pages are numbered from 1 to
// NumPages inclusive.
type Renderer interface {
	// NumPages returns the number of pages in the document.
	NumPages() int

	// Page renders page n (1-based) into text, per-character layout
	// rectangles, and font attribute runs.
	Page(n int) (model.PageContent, error)
}
