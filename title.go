package paperlens

import (
	"strings"

	"github.com/ckaiser/paperlens/textnorm"
)

// ParseTitle extracts a paper title from reconstructed first-page text.
//
// The title block is emitted first, so the heuristic takes the second
// visual line as the title start and joins up to three surrounding non-empty
// lines for titles that wrap, stopping at the first blank line. The
// sub/superscript markers the layout engine inserts are stripped and
// typographic Unicode is folded to ASCII.
func ParseTitle(pageText string) string {
	lines := strings.Split(pageText, "\n")
	if len(lines) < 2 {
		return ""
	}

	title := strings.TrimSpace(lines[1])

	rest := make([]string, 0, len(lines)-1)
	rest = append(rest, lines[0])
	rest = append(rest, lines[2:]...)

	for i := 0; i < 3 && i < len(rest); i++ {
		if rest[i] == "" {
			break
		}
		title += " " + strings.TrimSpace(rest[i])
	}

	title = textnorm.Sanitize(title)
	return strings.NewReplacer("[", "", "]", "").Replace(title)
}
