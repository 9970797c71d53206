package layout

import "math"

// The six merge passes run in a fixed order, each iterating to a local fixed
// point before the next begins: overlap, small-line, paragraph, column
// forward, big column, horizontal. Pass order matters; each pass assumes the
// block set left behind by the previous one.

// mergeOverlapping unions any two blocks whose rectangles overlap beyond the
// 1-unit margin, repeating until no overlaps remain.
func (p *Page) mergeOverlapping() {
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(p.blocks); i++ {
			b1 := p.blocks[i]
			for j := i + 1; j < len(p.blocks); {
				b2 := p.blocks[j]
				if b1.overlaps(b2) {
					b1.absorb(b2)
					p.removeAt(j)
					changed = true
				} else {
					j++
				}
			}
		}
	}
}

// mergeSmallLines merges line fragments that share a text line but could not
// be joined earlier. Both fragments must be no taller than twice their font
// size, their vertical centers must coincide, and the nearest block below
// must be the same for both; that last test keeps two columns that happen to
// share a baseline apart. A merge may chain across several fragments before
// being committed.
func (p *Page) mergeSmallLines() {
	i := -1
	for i < len(p.blocks)-1 {
		i++
		b1 := p.blocks[i]
		b1Font := p.blockFont(b1)
		if b1.Rect.Height() > 2*b1Font {
			continue
		}

		j := i
		for j < len(p.blocks)-1 {
			j++
			b2 := p.blocks[j]
			b2Font := p.blockFont(b2)
			if b2.Rect.Height() > 2*b2Font {
				continue
			}

			if !sameRow(b1, b2) || !p.checkOverlap(b1, b2) {
				continue
			}
			if p.findBelow(b1.Rect) != p.findBelow(b2.Rect) {
				continue
			}

			below := p.findBelow(b1.Rect.Union(b2.Rect))
			if below == nil || below.Rect.DY(b1.Rect) >= 2*b1Font {
				continue
			}

			group := []*Block{b1, b2}
			l := j
			clear := false
			for l < len(p.blocks)-1 {
				clear = p.checkOverlap(groupWith(group, below)...)
				l++
				b3 := p.blocks[l]
				if math.Abs(b2.Rect.Height()-b3.Rect.Height()) > b2Font*0.3 {
					continue
				}
				if sameRow(b2, b3) && p.checkOverlap(groupWith(group, b3)...) {
					if clear && !p.checkOverlap(groupWith(group, b3, below)...) {
						break
					}
					group = append(group, b3)
				}
			}

			if clear {
				for k := len(group) - 1; k >= 1; k-- {
					group[k-1].absorb(group[k])
					p.remove(group[k])
				}
				j--
			}
		}
	}
}

// mergeParagraphs collapses vertically stacked blocks with near-zero
// horizontal offset and a vertical gap under one font size, so successive
// physical lines of a paragraph become a single block.
func (p *Page) mergeParagraphs() {
	for i := 0; i < len(p.blocks); i++ {
		b1 := p.blocks[i]
		for j := i + 1; j < len(p.blocks); {
			b2 := p.blocks[j]
			dx, dy, _ := b1.Rect.Distance(b2.Rect)
			fontSize := p.blockFont(b2)
			if math.Round(dx) == 0 && dy < fontSize && p.checkOverlap(b1, b2) {
				b1.absorb(b2)
				p.removeAt(j)
			} else {
				j++
			}
		}
	}
}

// mergeColumnsForward merges each block with the nearest block below it when
// they align horizontally (by center or by either edge) and the vertical gap
// falls under the font-size-derived threshold. A successful merge revisits
// the same block, so multi-line columns collapse fully.
func (p *Page) mergeColumnsForward() {
	for i := 0; i < len(p.blocks); i++ {
		b1 := p.blocks[i]

		b2 := p.findBelow(b1.Rect)
		if b2 == nil {
			continue
		}
		fontSize := p.blockFont(b2)
		_, dy, _ := b1.Rect.Distance(b2.Rect)

		centered := b1.Rect.Center().DX(b2.Rect.Center()) < fontSize && dy < fontSize
		edgeAligned := (math.Abs(b1.Rect.X1-b2.Rect.X1) < fontSize ||
			math.Abs(b1.Rect.X2-b2.Rect.X2) < fontSize) && dy < fontSize*2

		if (centered || edgeAligned) && p.checkOverlap(b1, b2) {
			b1.absorb(b2)
			p.remove(b2)
			i--
		}
	}
}

// mergeBigColumns merges tall blocks (over twice their font size) whose left
// and right edges both align with the block found directly below. This
// covers headings spanning multiple already-merged paragraphs.
func (p *Page) mergeBigColumns() {
	i := -1
	for i < len(p.blocks)-1 {
		i++
		b1 := p.blocks[i]
		b1Font := p.blockFont(b1)
		if b1.Rect.Height() < 2*b1Font {
			continue
		}

		b2 := p.findBelow(b1.Rect)
		if b2 == nil {
			continue
		}
		fontSize := p.blockFont(b2)
		if b2.Rect.Height() < 2*fontSize {
			continue
		}

		if math.Abs(b1.Rect.X1-b2.Rect.X1) < fontSize &&
			math.Abs(b1.Rect.X2-b2.Rect.X2) < fontSize*0.7 &&
			p.checkOverlap(b1, b2) {
			b1.absorb(b2)
			p.remove(b2)
			i--
		}
	}
}

// mergeHorizontal unions groups of blocks that are vertically co-located but
// horizontally adjacent (one visual row split into several fragments),
// chaining through additional fragments before the final merge is committed.
func (p *Page) mergeHorizontal() {
	i := 0
	for i < len(p.blocks) {
		b1 := p.blocks[i]
		merged := false

		for j := i + 1; j < len(p.blocks); j++ {
			b2 := p.blocks[j]
			dx, dy, _ := b1.Rect.Distance(b2.Rect)
			fontSize := p.blockFont(b2)

			if dx == 0 &&
				(b1.Rect.X1-fontSize*0.7 < b2.Rect.X1 || b1.Rect.Center().DX(b2.Rect.Center()) < fontSize) &&
				b1.Rect.X2+fontSize*0.7 > b2.Rect.X2 &&
				dy < fontSize*2 {

				// Pull horizontally adjacent fragments into b2 first.
				for k := j + 1; k < len(p.blocks); {
					b3 := p.blocks[k]
					_, dy3, _ := b2.Rect.Distance(b3.Rect)
					dx3, _, _ := b1.Rect.Distance(b3.Rect)
					if dy3 == 0 && dx3 == 0 && p.checkOverlap(b2, b3) {
						b2.absorb(b3)
						p.removeAt(k)
					} else {
						k++
					}
				}

				if p.checkOverlap(b1, b2) {
					b1.absorb(b2)
					p.removeAt(j)
					j--
					merged = true
				}
			}
		}

		if !merged {
			i++
		}
	}
}

// sameRow reports whether two blocks' vertical centers effectively coincide.
func sameRow(a, b *Block) bool {
	return math.Floor(a.Rect.Center().DY(b.Rect.Center())) == 0
}

// groupWith returns a new slice so chained candidate groups never share a
// backing array.
func groupWith(group []*Block, extra ...*Block) []*Block {
	out := make([]*Block, 0, len(group)+len(extra))
	out = append(out, group...)
	out = append(out, extra...)
	return out
}
