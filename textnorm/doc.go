// Package textnorm folds the typographic Unicode that PDF text is full of
// (smart quotes, dashes, ligatures embedded in punctuation positions) to
// plain ASCII, while leaving genuine non-ASCII word characters alone.
package textnorm
