package links

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Link is one URL found in page text, with the character offsets of every
// occurrence in the original (pre-unwrapping) text.
type Link struct {
	URL       string
	Locations []int
}

var (
	reURL = regexp.MustCompile(`(?:https?://|www\.)[A-Za-z0-9\-._~:/?#@!$&'()*+,;=%]+`)
	reDOI = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

	// Characters not valid at the end of a URL in running prose.
	reSpecialChar = regexp.MustCompile(`[^a-zA-Z0-9/]`)
)

// ParseText finds URLs in page text. Lines are joined before matching so a
// URL wrapped across physical lines is still found whole; a wrapped URL is
// also reported at every truncation a line break produced, since there is no
// way to tell a wrapped URL from a short one followed by prose. When a URL
// ends in a special character, a variant without it is reported too ("(see
// http://x.org)," keeps the closing paren, which is valid in a URL, and
// drops the comma).
func ParseText(text string) []Link {
	var (
		joined  []byte
		origins []int
		urls    []string
		locs    = make(map[string]map[int]struct{})
		longest = make(map[int]int)
	)

	add := func(url string, origin int) {
		set := locs[url]
		if set == nil {
			set = make(map[int]struct{})
			locs[url] = set
			urls = append(urls, url)
		}
		set[origin] = struct{}{}
	}

	scan := func() {
		for _, m := range reURL.FindAllIndex(joined, -1) {
			start, end := m[0], m[1]
			if !urlBoundary(joined, start) {
				continue
			}

			origin := origins[start]
			if end-start <= longest[origin] {
				continue
			}
			longest[origin] = end - start

			url := string(joined[start:end])
			if len(url) > 1 && reSpecialChar.MatchString(url[len(url)-1:]) {
				add(url[:len(url)-1], origin)
			}
			add(url, origin)
		}
	}

	offset := 0
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			for i := range line {
				origins = append(origins, offset+i)
			}
			joined = append(joined, line...)
			scan()
		}
		offset += len(line) + 1
	}

	result := make([]Link, 0, len(urls))
	for _, u := range urls {
		ls := make([]int, 0, len(locs[u]))
		for l := range locs[u] {
			ls = append(ls, l)
		}
		sort.Ints(ls)
		result = append(result, Link{URL: u, Locations: ls})
	}
	return result
}

// urlBoundary reports whether a match starting at start is a genuine URL
// start. Scheme-qualified URLs always are; a bare www. match must not sit
// inside a longer word or path that line-joining glued together.
func urlBoundary(joined []byte, start int) bool {
	if len(joined)-start >= 4 && string(joined[start:start+4]) == "http" {
		return true
	}
	if start == 0 {
		return true
	}
	switch c := joined[start-1]; {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return false
	case c == '.', c == '/':
		return false
	}
	return true
}

// Locate pins a known link to offsets in page text. linkText is the visible
// anchor text the PDF associates with the link; when it is essentially the
// link itself, all fuzzy occurrences of the link are returned, otherwise the
// first occurrence of the anchor text. Matching tolerates a small number of
// line breaks inside the needle, roughly 3% of its length.
func Locate(text, link, linkText string) []int {
	isLink := strings.Contains(link, linkText) || strings.Contains(linkText, link)

	// Some documents attach a whole paragraph as the anchor text.
	if len(linkText) > 2*len(link) {
		linkText = link
	}

	if isLink {
		if matches := findFuzzy(text, link, maxErrs(link), -1); len(matches) > 0 {
			return matches
		}
	}

	matches := findFuzzy(text, linkText, maxErrs(linkText), 1)
	if len(matches) == 0 {
		return nil
	}

	// The anchor text may be a prefix of the link ("github.com/x" shown for
	// "github.com/x/releases"); reject the hit when the text at the match
	// continues differently from the link.
	if strings.HasPrefix(link, linkText) {
		fields := strings.Fields(text[matches[0]:])
		if len(fields) > 0 {
			substr := fields[0]
			if len(substr) > len(link) {
				substr = substr[:len(link)]
			}
			if !strings.HasPrefix(link, substr) {
				return nil
			}
		}
	}

	return matches
}

// DOIs extracts distinct DOI identifiers from page text, in order of first
// appearance, with trailing sentence punctuation stripped.
func DOIs(text string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, m := range reDOI.FindAllString(text, -1) {
		doi := strings.TrimRight(m, ".,;:)")
		if i := strings.IndexByte(doi, '/'); i < 0 || i == len(doi)-1 {
			continue
		}
		if _, dup := seen[doi]; dup {
			continue
		}
		seen[doi] = struct{}{}
		out = append(out, doi)
	}
	return out
}

func maxErrs(needle string) int {
	if errs := int(math.Round(float64(len(needle)) * 0.03)); errs > 1 {
		return errs
	}
	return 1
}

// findFuzzy returns the start offsets of up to limit non-overlapping
// occurrences of needle in text, allowing up to errs newline characters
// interleaved in the text per occurrence. limit < 0 means all.
func findFuzzy(text, needle string, errs, limit int) []int {
	if needle == "" {
		return nil
	}

	var out []int
	for i := 0; i < len(text); i++ {
		if text[i] != needle[0] {
			continue
		}
		end, ok := matchFrom(text, i, needle, errs)
		if !ok {
			continue
		}
		out = append(out, i)
		if limit > 0 && len(out) == limit {
			break
		}
		i = end - 1
	}
	return out
}

// matchFrom matches needle at text[start:], skipping up to errs newlines in
// the text, and returns the end offset of the match.
func matchFrom(text string, start int, needle string, errs int) (int, bool) {
	i, j := start, 0
	for j < len(needle) {
		if i >= len(text) {
			return 0, false
		}
		switch {
		case text[i] == needle[j]:
			i++
			j++
		case text[i] == '\n' && errs > 0:
			errs--
			i++
		default:
			return 0, false
		}
	}
	return i, true
}
