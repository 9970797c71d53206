package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/ckaiser/paperlens/model"
)

// emit writes each block in final order, iterating the block's tokens in
// insertion order (not spatial order). Line breaks are derived from vertical
// gaps between consecutive tokens, scaled to the font size and capped at
// three newlines; every block is followed by a three-newline separator.
func (p *Page) emit(blocks []*Block) string {
	var buf strings.Builder

	for _, b := range blocks {
		prev := p.tokens[b.Tokens[0]]

		var line []model.Token
		heights := []float64{prev.Center().Y}

		for _, ti := range b.Tokens {
			token := p.tokens[ti]

			lineHeight := heights[len(heights)/2]
			dy := math.Abs(token.Center().Y - lineHeight)

			if prev.DY(token) > token.FontSize*0.7 && prev.DX(token) > token.FontSize {
				p.writeLine(&buf, line)
				n := int(math.Floor(dy / (token.FontSize * 0.7)))
				if n < 1 {
					n = 1
				} else if n > 3 {
					n = 3
				}
				buf.WriteString(strings.Repeat("\n", n))
				line = line[:0]
				heights = heights[:0]
			}

			line = append(line, token)
			heights = insertSorted(heights, token.Center().Y)
			prev = token
		}

		p.writeLine(&buf, line)
		buf.WriteString("\n\n\n")
	}

	return buf.String()
}

// writeLine emits one visual line. A space is inserted when the horizontal
// gap to the previous token exceeds 0.1x the font size. Runs of tokens
// offset from the line's median baseline with a smaller font size are
// wrapped in [ and ] markers, force-closed at line end.
func (p *Page) writeLine(buf *strings.Builder, line []model.Token) {
	if len(line) == 0 {
		return
	}

	ys := make([]float64, len(line))
	sizes := make([]float64, len(line))
	for i, t := range line {
		ys[i] = t.Center().Y
		sizes[i] = t.FontSize
	}
	lineHeight := median(ys)
	lineFont := median(sizes)

	inScript := false
	prev := line[0]
	for _, token := range line {
		ldy := math.Abs(token.Center().Y - lineHeight)

		if inScript && p.exitScript(prev, token, ldy) {
			buf.WriteByte(']')
			inScript = false
		}

		if prev.Rect.X2 < token.Rect.X1 && token.Rect.X1-prev.Rect.X2 > token.FontSize*0.1 {
			buf.WriteByte(' ')
		}

		if !inScript && p.enterScript(token, ldy, lineFont) {
			buf.WriteByte('[')
			inScript = true
		}

		buf.WriteRune(token.Char)
		prev = token
	}

	if inScript {
		buf.WriteByte(']')
	}
}

// enterScript reports whether token starts a sub/superscript run: offset
// from the line baseline by more than 2 units but less than 0.7x its own
// font size, with a font smaller than the line's median font.
func (p *Page) enterScript(token model.Token, ldy, lineFont float64) bool {
	return p.cfg.MarkScripts &&
		ldy != 0 &&
		2 < ldy &&
		ldy < token.FontSize*0.7 &&
		token.FontSize*0.7 < lineFont*0.7
}

// exitScript reports whether token returns to the baseline after a
// sub/superscript run.
func (p *Page) exitScript(prev, token model.Token, ldy float64) bool {
	return p.cfg.MarkScripts &&
		token.DY(prev) > 2 &&
		ldy < 2 &&
		token.FontSize > prev.FontSize
}

// insertSorted inserts v into the sorted slice s, keeping it sorted.
func insertSorted(s []float64, v float64) []float64 {
	i := sort.SearchFloat64s(s, v)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// median returns the numpy-style median: the middle value for odd lengths,
// the mean of the two middle values for even lengths. The input is not
// modified.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
