// Package layout reconstructs the natural reading order of a PDF page from
// raw per-glyph geometry.
//
// PDF text storage has no inherent reading order: glyphs are positioned
// rectangles with no guaranteed sequencing, multi-column layouts interleave
// physically, and sub/superscripts are visually offset rather than marked.
// This package rebuilds paragraph and line structure into a single linear
// text string, per page.
//
// # Pipeline
//
// Processing is synchronous and strictly page-scoped, in five stages:
//
//  1. Tokenization - per-character rectangles and font-size runs become an
//     ordered arena of immutable glyph tokens; whitespace is discarded.
//  2. Spatial index - a static nearest-neighbor structure over token centers.
//  3. Block formation - tokens are greedily clustered into line-level blocks
//     using neighbor queries.
//  4. Merge passes - six order-dependent passes coalesce line blocks into
//     word runs, paragraphs, and columns.
//  5. Region ordering and emission - blocks are partitioned into header,
//     footer, left, right, and center regions, linearized, and emitted with
//     line breaks, paragraph breaks, and sub/superscript markers.
//
// # Usage
//
//	page, err := layout.NewPage(content, layout.DefaultConfig())
//	if err != nil {
//	    // rendering backend produced inconsistent output; skip the page
//	}
//	text := page.Text()
//
// The engine surfaces exactly one error, [ErrLayoutMismatch]. All other
// geometric irregularities (zero-size rectangles, duplicate centers) are
// absorbed by tolerance-based comparisons. An empty page yields an empty
// string.
//
// The numeric tolerances used throughout (0.7, 1.5, 2.0, 0.1 of a font size,
// and so on) are empirically tuned against a corpus of academic papers and
// are load-bearing: changing them changes the emitted text.
//
// A Page is not safe for concurrent use; process distinct pages on distinct
// Page values.
package layout
