package layout

import "math"

// orderBlocks partitions the final block set into header, footer, left,
// right, and center regions and linearizes them into reading order: header
// first, then center blocks threaded positionally between the columns, then
// the remaining left and right columns, then footer. The result is a total
// order over the block set; no block is dropped or duplicated.
func (p *Page) orderBlocks() []*Block {
	yMin := math.Inf(1)
	yMax := math.Inf(-1)
	for _, b := range p.blocks {
		yMin = math.Min(yMin, b.Rect.Y1)
		yMax = math.Max(yMax, b.Rect.Y2)
	}

	pageCenter := p.width / 2

	var header, footer, left, right, center []*Block
	for _, b := range p.blocks {
		fontSize := p.blockFont(b)
		short := b.Rect.Height() < 3*fontSize
		straddles := b.Rect.X1 < pageCenter && pageCenter < b.Rect.X2

		switch {
		case math.Round(b.Rect.Y1) == math.Round(yMin) && (short || straddles):
			header = append(header, b)
		case math.Round(b.Rect.Y2) == math.Round(yMax) && (short || straddles):
			footer = append(footer, b)
		case b.Rect.X2 < pageCenter:
			left = append(left, b)
		case b.Rect.X1 > pageCenter:
			right = append(right, b)
		default:
			center = append(center, b)
		}
	}

	// Column extents; the block lists follow token reading order, so first
	// and last bound the columns vertically.
	minLeftY, maxLeftY := p.height, 0.0
	if len(left) > 0 {
		minLeftY = math.Round(left[0].Rect.Y1)
		maxLeftY = math.Round(left[len(left)-1].Rect.Y2)
	}
	minRightY, maxRightY := p.height, 0.0
	if len(right) > 0 {
		minRightY = math.Round(right[0].Rect.Y1)
		maxRightY = math.Round(right[len(right)-1].Rect.Y2)
	}

	// Center blocks wholly above both columns are header material; blocks
	// wholly below both are footer material (ahead of the existing footer).
	var kept, earlyFooter []*Block
	for _, b := range center {
		switch {
		case math.Round(b.Rect.Y2) <= minLeftY && math.Round(b.Rect.Y2) <= minRightY:
			header = append(header, b)
		case math.Round(b.Rect.Y1) >= maxLeftY && math.Round(b.Rect.Y1) >= maxRightY:
			earlyFooter = append(earlyFooter, b)
		default:
			kept = append(kept, b)
		}
	}
	center = kept
	footer = append(earlyFooter, footer...)

	// Thread the remaining center blocks between the columns: before each
	// center block, flush the column blocks that end above it, then the
	// left-column blocks it vertically spans; after it, the right-column
	// blocks it spans.
	if len(center) > 0 {
		var ordered []*Block
		for _, b1 := range center {
			left = flush(&ordered, left, func(b2 *Block) bool {
				return b2.Rect.Y2 <= b1.Rect.Y1+1
			})
			right = flush(&ordered, right, func(b2 *Block) bool {
				return b2.Rect.Y2 <= b1.Rect.Y1+1
			})
			left = flush(&ordered, left, func(b2 *Block) bool {
				cy := b2.Rect.Center().Y
				return b1.Rect.Y1 < cy && cy < b1.Rect.Y2
			})
			ordered = append(ordered, b1)
			right = flush(&ordered, right, func(b2 *Block) bool {
				cy := b2.Rect.Center().Y
				return b1.Rect.Y1 < cy && cy < b1.Rect.Y2
			})
		}
		center = ordered
	}

	result := make([]*Block, 0, len(p.blocks))
	result = append(result, header...)
	result = append(result, center...)
	result = append(result, left...)
	result = append(result, right...)
	result = append(result, footer...)
	return result
}

// flush moves every block satisfying keep from pending into *out, preserving
// order, and returns the blocks that remain pending.
func flush(out *[]*Block, pending []*Block, keep func(*Block) bool) []*Block {
	var rest []*Block
	for _, b := range pending {
		if keep(b) {
			*out = append(*out, b)
		} else {
			rest = append(rest, b)
		}
	}
	return rest
}
