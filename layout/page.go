package layout

import (
	"errors"
	"math"
	"sort"
	"unicode"

	"github.com/ckaiser/paperlens/model"
)

// ErrLayoutMismatch is returned by NewPage when the rendering backend
// supplies fewer text characters than layout rectangles. The page cannot be
// reconstructed and must be abandoned by the caller; there is no partial
// output and no retry inside the engine.
var ErrLayoutMismatch = errors.New("layout: page text shorter than layout rectangles")

// Config holds reconstruction options.
type Config struct {
	// MarkScripts wraps detected sub/superscript runs in [ and ] markers.
	MarkScripts bool
}

// DefaultConfig returns the default reconstruction options.
func DefaultConfig() Config {
	return Config{MarkScripts: true}
}

// Page owns the full reconstruction state for one page: dimensions, the
// token arena, the evolving block set, and the spatial index. Construct it
// with NewPage, call Text once, and discard it; nothing persists across
// pages.
type Page struct {
	width  float64
	height float64
	cfg    Config

	tokens []model.Token
	blocks []*Block
	index  *Index
}

// NewPage tokenizes the page content, sorts the tokens into approximate
// reading order, and builds the spatial index. It returns ErrLayoutMismatch
// when the text is shorter than the layout rectangle array, which signals
// that the rendering backend failed to produce consistent output.
func NewPage(content model.PageContent, cfg Config) (*Page, error) {
	text := []rune(content.Text)
	if len(text) < len(content.Layout) {
		return nil, ErrLayoutMismatch
	}

	p := &Page{
		width:  content.Width,
		height: content.Height,
		cfg:    cfg,
	}

	attr := 0
	for i, rect := range content.Layout {
		if unicode.IsSpace(text[i]) {
			// Spaces and newlines are re-derived from geometry.
			continue
		}

		if attr < len(content.Attrs)-1 && content.Attrs[attr].EndIndex < i {
			attr++
		}
		fontSize := 0.0
		if len(content.Attrs) > 0 {
			fontSize = content.Attrs[attr].FontSize
		}

		p.tokens = append(p.tokens, model.NewToken(rect, text[i], fontSize))
	}

	sort.SliceStable(p.tokens, func(i, j int) bool {
		return p.tokens[i].Before(p.tokens[j])
	})
	p.index = NewIndex(p.tokens)

	return p, nil
}

// TokenCount returns the number of non-whitespace tokens on the page.
func (p *Page) TokenCount() int {
	return len(p.tokens)
}

// Text runs the full reconstruction pipeline and returns the page text in
// reading order, with line breaks, paragraph breaks, and (when configured)
// sub/superscript markers. An empty page yields an empty string.
func (p *Page) Text() string {
	if len(p.tokens) == 0 {
		return ""
	}

	p.blocks = nil
	p.formBlocks()

	p.mergeOverlapping()
	p.mergeSmallLines()
	p.mergeParagraphs()
	p.mergeColumnsForward()
	p.mergeBigColumns()
	p.mergeHorizontal()

	return p.emit(p.orderBlocks())
}

// blockOf returns the block currently owning token index i, or nil.
func (p *Page) blockOf(i int) *Block {
	for _, b := range p.blocks {
		if b.contains(i) {
			return b
		}
	}
	return nil
}

// blockFont returns the font size of a block's first inserted token, the
// representative size used by all merge thresholds.
func (p *Page) blockFont(b *Block) float64 {
	return p.tokens[b.Tokens[0]].FontSize
}

// checkOverlap reports whether the union of the group's rectangles is clear
// of every block outside the group. A foreign block touching or overlapping
// the union vetoes the merge; this is what keeps two columns that happen to
// share a baseline from being joined.
func (p *Page) checkOverlap(group ...*Block) bool {
	union := group[0].Rect
	for _, b := range group[1:] {
		union = union.Union(b.Rect)
	}

	for _, b := range p.blocks {
		if inGroup(b, group) {
			continue
		}
		if _, _, dist := b.Rect.Distance(union); dist == 0 {
			return false
		}
	}
	return true
}

func inGroup(b *Block, group []*Block) bool {
	for _, g := range group {
		if g == b {
			return true
		}
	}
	return false
}

// findBelow returns the nearest block strictly below rect that overlaps it
// horizontally, or nil.
func (p *Page) findBelow(rect model.Rect) *Block {
	var result *Block
	minDY := math.Inf(1)

	for _, b := range p.blocks {
		if rect.Contains(b.Rect) {
			continue
		}
		if b.Rect.Y1 < rect.Y2 {
			continue
		}
		dx, dy, _ := b.Rect.Distance(rect)
		if dx == 0 && dy < minDY {
			minDY = dy
			result = b
		}
	}
	return result
}

// removeAt deletes the block at index i from the working set.
func (p *Page) removeAt(i int) {
	p.blocks = append(p.blocks[:i], p.blocks[i+1:]...)
}

// remove deletes the given block from the working set.
func (p *Page) remove(b *Block) {
	for i, cand := range p.blocks {
		if cand == b {
			p.removeAt(i)
			return
		}
	}
}
