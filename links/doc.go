// Package links finds URLs and DOIs in reconstructed page text.
//
// The text the layout engine produces wraps URLs across physical lines, so
// detection joins lines before matching and maps every hit back to its
// offset in the original text. Offsets are approximate by construction;
// Locate tolerates a small number of newline-induced errors when pinning a
// known link to a position.
package links
