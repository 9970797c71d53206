package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// foldTable maps typographic punctuation to its ASCII spelling. Anything
// not listed falls back to NFKD decomposition.
var foldTable = map[rune]string{
	'‘': "'", '’': "'", '‚': "'", '‛': "'",
	'“': `"`, '”': `"`, '„': `"`, '‟': `"`,
	'‹': "<", '›': ">",
	'‐': "-", '‑': "-", '‒': "-", '–': "-",
	'—': "-", '―': "-", '−': "-",
	'…': "...",
	' ': " ", ' ': " ", ' ': " ", ' ': " ",
	'​': "", '­': "",
}

// Sanitize replaces non-ASCII, non-word characters with their ASCII
// equivalent. Word characters survive untouched even outside ASCII, so
// accented names and ligatures in running text are preserved.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r <= unicode.MaxASCII || isWord(r) {
			b.WriteRune(r)
			continue
		}
		if repl, ok := foldTable[r]; ok {
			b.WriteString(repl)
			continue
		}
		// NFKD strips what it can (compatibility forms, combining marks);
		// whatever stays non-ASCII has no equivalent and is dropped.
		for _, d := range norm.NFKD.String(string(r)) {
			if d <= unicode.MaxASCII {
				b.WriteRune(d)
			}
		}
	}

	return b.String()
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
