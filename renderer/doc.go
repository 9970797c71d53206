// Package renderer turns PDF pages into the per-glyph geometry the layout
// engine consumes: one rectangle and font size per character, in a top-left
// origin coordinate system where Y grows downward.
//
// The package ships one implementation backed by github.com/ledongthuc/pdf.
// Alternative sources (a different parser, pre-extracted geometry, test
// fixtures) plug in through the Renderer interface.
package renderer
