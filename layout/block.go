package layout

import (
	"math"

	"github.com/ckaiser/paperlens/model"
)

// Block is a mutable cluster of tokens believed to form one visual unit: a
// word run, a line, a paragraph, or a column. It holds token arena indices,
// never token copies, in insertion order; the emitted text iterates this
// order, so it must stay append-only. The bounding rectangle is maintained
// incrementally on every insertion and merge.
type Block struct {
	// Tokens are arena indices of the member tokens, in insertion order.
	Tokens []int

	// Rect is the smallest rectangle enclosing all member tokens.
	Rect model.Rect

	members map[int]struct{}
}

// newBlock creates a block containing a single token.
func newBlock(i int, t model.Token) *Block {
	return &Block{
		Tokens:  []int{i},
		Rect:    t.Rect,
		members: map[int]struct{}{i: {}},
	}
}

// add appends a token to the block and grows the bounding rectangle.
func (b *Block) add(i int, t model.Token) {
	b.Tokens = append(b.Tokens, i)
	b.members[i] = struct{}{}
	b.Rect.X1 = math.Min(b.Rect.X1, t.Rect.X1)
	b.Rect.Y1 = math.Min(b.Rect.Y1, t.Rect.Y1)
	b.Rect.X2 = math.Max(b.Rect.X2, t.Rect.X2)
	b.Rect.Y2 = math.Max(b.Rect.Y2, t.Rect.Y2)
}

// absorb merges other into b, preserving both insertion orders. The caller
// removes other from the working block set; token membership stays a
// partition because other is destroyed.
func (b *Block) absorb(other *Block) {
	b.Tokens = append(b.Tokens, other.Tokens...)
	for _, i := range other.Tokens {
		b.members[i] = struct{}{}
	}
	b.Rect = b.Rect.Union(other.Rect)
}

// contains reports whether token index i is a member of the block.
func (b *Block) contains(i int) bool {
	_, ok := b.members[i]
	return ok
}

// overlaps reports whether two blocks' rectangles overlap on both axes by
// more than a 1-unit margin.
func (b *Block) overlaps(other *Block) bool {
	dx := b.Rect.DX(other.Rect)
	dy := b.Rect.DY(other.Rect)

	const margin = 1.0
	if dx > 0 || dy > 0 {
		return false
	}
	return math.Abs(dx) > margin || math.Abs(dy) > margin
}
