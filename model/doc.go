// Package model provides the geometric primitives and glyph-level data
// types shared by the layout engine and the rendering backends.
//
// All coordinates use a top-left origin with Y increasing downward, the
// convention used by the rendering backend's text layout output. A page is
// described by a [PageContent]: the page text, one [Rect] per character of
// that text, a run-length list of font-size attribute spans, and the page
// dimensions.
//
// # Geometry
//
//   - [Point] - 2D point with distance calculations
//   - [Rect] - axis-aligned rectangle with gap, union, and containment helpers
//   - [Token] - one non-whitespace glyph with a cached center point
//
// The directional gap helpers [Rect.DX] and [Rect.DY] return negative values
// when two rectangles overlap on that axis; [Rect.Distance] clamps both gaps
// to zero so touching or overlapping rectangles report a distance of zero.
package model
