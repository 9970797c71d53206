package layout

import "math"

// formBlocks greedily clusters tokens into line-level blocks. Tokens are
// visited in reading order; each unvisited token either joins the block of a
// neighbor at or before it, or starts a new block, and the block is then
// extended forward along the visual line.
func (p *Page) formBlocks() {
	for current := range p.tokens {
		if p.blockOf(current) != nil {
			continue
		}
		token := p.tokens[current]

		nn := p.index.Nearest(token.Center(), 10, Manhattan, token.FontSize*1.5)

		var prev, next []int
		for _, n := range nn {
			if n == current {
				continue
			}
			t2 := p.tokens[n]

			// "Previous" candidates sit at or before the token, or above
			// it, within one font size vertically.
			if (t2.Center().X <= token.Center().X || t2.Center().Y < token.Center().Y) &&
				t2.DY(token) < token.FontSize {
				prev = append(prev, n)
			}
			// "Next" candidates are strictly ahead on the same line.
			if t2.Center().X > token.Center().X && t2.DY(token) < token.FontSize*0.7 {
				next = append(next, n)
			}
		}

		// Prefer staying on the current line: join the first previous
		// candidate that already belongs to a block.
		var block *Block
		for _, ni := range prev {
			if b := p.blockOf(ni); b != nil {
				block = b
				break
			}
		}

		if block == nil {
			block = newBlock(current, token)
			p.blocks = append(p.blocks, block)
		} else {
			block.add(current, token)
		}

		if len(next) > 0 {
			p.extendForward(current, block, next)
		}
	}
}

// extendForward walks the visual line to the right of the start token,
// absorbing unclustered neighbors into the block. The walk is an explicit
// worklist loop; dense pages produce long chains that would overflow a
// recursive version.
func (p *Page) extendForward(start int, block *Block, neighbors []int) {
	startToken := p.tokens[start]
	token := startToken

	for len(neighbors) > 0 {
		for _, ni := range neighbors {
			t2 := p.tokens[ni]
			if token.DY(t2) < token.FontSize*0.7 &&
				!block.contains(ni) && // cheap pre-check before the scan
				p.blockOf(ni) == nil {
				block.add(ni, t2)
			}
		}

		// The neighbor set may include tokens located before the frontier's
		// center but after its left edge (a '?' above an '=' for example).
		// Advance to a token strictly past the center, or stop; otherwise
		// the walk could loop forever.
		frontier := -1
		for _, ni := range neighbors {
			if round4(p.tokens[ni].Center().X) <= round4(token.Center().X) {
				continue
			}
			frontier = ni
			break
		}
		if frontier < 0 {
			break
		}

		token = p.tokens[frontier]
		nn := p.index.Nearest(token.Center(), 10, Euclidean, token.FontSize*2)

		var fresh []int
		for _, n := range nn {
			if n == frontier {
				continue
			}
			t2 := p.tokens[n]
			if t2.Center().X > token.Rect.X1 &&
				t2.DY(token) < token.FontSize*0.7 &&
				t2.DY(startToken) < startToken.FontSize {
				fresh = append(fresh, n)
			}
		}
		neighbors = fresh
	}
}

// round4 rounds to four decimal places, the resolution used when comparing
// token centers during the forward walk.
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
