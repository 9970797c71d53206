package model

import "math"

// Token is one visible character on a page: its bounding rectangle, the
// character value, and the font size of the attribute run it belongs to.
// Tokens are immutable once constructed; the center point is computed once.
type Token struct {
	Rect     Rect
	Char     rune
	FontSize float64

	center Point
}

// NewToken creates a token and caches its center point
func NewToken(rect Rect, char rune, fontSize float64) Token {
	return Token{
		Rect:     rect,
		Char:     char,
		FontSize: fontSize,
		center: Point{
			X: (rect.X1 + rect.X2) / 2,
			Y: rect.Y1 + (rect.Y2-rect.Y1)/2,
		},
	}
}

// Center returns the cached center point of the token's rectangle
func (t Token) Center() Point {
	return t.center
}

// DX returns the horizontal distance between the centers of two tokens
func (t Token) DX(other Token) float64 {
	return math.Abs(t.Rect.X1+t.Rect.X2-other.Rect.X1-other.Rect.X2) / 2
}

// DY returns the vertical distance between the centers of two tokens
func (t Token) DY(other Token) float64 {
	return math.Abs(t.Rect.Y1+t.Rect.Y2-other.Rect.Y1-other.Rect.Y2) / 2
}

// Before reports whether t precedes other in approximate reading order.
// Tokens whose vertical centers differ by less than 0.7x the larger font
// size are treated as sharing a row and compared by horizontal position;
// otherwise the higher token comes first.
func (t Token) Before(other Token) bool {
	sc := t.center
	oc := other.center

	if math.Abs(sc.Y-oc.Y) < math.Max(t.FontSize, other.FontSize)*0.7 {
		return sc.X < oc.X
	}
	return sc.Y < oc.Y
}

// AttrSpan is one run-length font attribute range: it applies to all
// character indices up to and including EndIndex.
type AttrSpan struct {
	EndIndex int
	FontSize float64
}

// PageContent is the raw per-page output of a rendering backend: the page
// text, one rectangle per character of the text (aligned 1:1), the ordered
// run-length font attributes, and the page dimensions in points.
type PageContent struct {
	Text   string
	Layout []Rect
	Attrs  []AttrSpan
	Width  float64
	Height float64
}
