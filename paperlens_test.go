package paperlens

import (
	"errors"
	"strings"
	"testing"

	"github.com/ckaiser/paperlens/model"
)

// stubRenderer serves pre-built page content, standing in for a PDF backend.
type stubRenderer struct {
	pages []model.PageContent
	errOn int // 1-based page that fails to render, 0 for none
}

func (s *stubRenderer) NumPages() int { return len(s.pages) }

func (s *stubRenderer) Page(n int) (model.PageContent, error) {
	if n == s.errOn {
		return model.PageContent{}, errors.New("damaged content stream")
	}
	return s.pages[n-1], nil
}

// pageWith lays words out as per-glyph content on a US Letter page. Each
// wordSpec is a word followed by its geometry: x, y1, y2, advance, font size.
type wordSpec struct {
	s                  string
	x, y1, y2, adv, fs float64
}

func pageWith(words ...wordSpec) model.PageContent {
	var text strings.Builder
	var rects []model.Rect
	var attrs []model.AttrSpan

	i := 0
	for _, w := range words {
		for j, ch := range []rune(w.s) {
			x1 := w.x + float64(j)*w.adv
			text.WriteRune(ch)
			rects = append(rects, model.NewRect(x1, w.y1, x1+w.adv, w.y2))
			attrs = append(attrs, model.AttrSpan{EndIndex: i, FontSize: w.fs})
			i++
		}
	}

	return model.PageContent{
		Text:   text.String(),
		Layout: rects,
		Attrs:  attrs,
		Width:  612,
		Height: 792,
	}
}

func twoPageDoc() *stubRenderer {
	return &stubRenderer{pages: []model.PageContent{
		pageWith(wordSpec{"one", 10, 100, 110, 10, 10}),
		pageWith(wordSpec{"two", 10, 100, 110, 10, 10}),
	}}
}

func TestExtractor_TextAcrossPages(t *testing.T) {
	got, err := FromRenderer(twoPageDoc()).Text()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "one\n\n\ntwo\n\n\n" {
		t.Errorf("Expected %q, got %q", "one\n\n\ntwo\n\n\n", got)
	}
}

func TestExtractor_PageSelection(t *testing.T) {
	got, err := FromRenderer(twoPageDoc()).Pages(2).Text()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "two\n\n\n" {
		t.Errorf("Expected %q, got %q", "two\n\n\n", got)
	}

	got, err = FromRenderer(twoPageDoc()).PageRange(1, 2).Text()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "one\n\n\ntwo\n\n\n" {
		t.Errorf("Expected %q, got %q", "one\n\n\ntwo\n\n\n", got)
	}
}

func TestExtractor_PageOutOfRange(t *testing.T) {
	if _, err := FromRenderer(twoPageDoc()).Pages(3).Text(); err == nil {
		t.Error("Expected error for page 3 of a 2-page document")
	}
	if _, err := FromRenderer(twoPageDoc()).PageText(0); err == nil {
		t.Error("Expected error for page 0")
	}
}

func TestExtractor_ConfigurationIsImmutable(t *testing.T) {
	base := FromRenderer(twoPageDoc())
	_ = base.Pages(2)

	got, err := base.Text()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "one\n\n\ntwo\n\n\n" {
		t.Errorf("Pages() on a derived extractor changed the base: got %q", got)
	}
}

func TestExtractor_PageText(t *testing.T) {
	got, err := FromRenderer(twoPageDoc()).PageText(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "two\n\n\n" {
		t.Errorf("Expected %q, got %q", "two\n\n\n", got)
	}
}

func TestExtractor_RenderErrorIsWrapped(t *testing.T) {
	doc := twoPageDoc()
	doc.errOn = 2

	_, err := FromRenderer(doc).Text()
	if err == nil {
		t.Fatal("Expected error from damaged page")
	}
	if !strings.Contains(err.Error(), "page 2") {
		t.Errorf("Expected page number in error, got %q", err)
	}
}

func TestExtractor_Links(t *testing.T) {
	doc := &stubRenderer{pages: []model.PageContent{
		pageWith(
			wordSpec{"see", 10, 100, 110, 10, 10},
			wordSpec{"https://x.org/y", 43, 100, 110, 10, 10},
		),
	}}

	pages, err := FromRenderer(doc).Links()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pages) != 1 || pages[0].Page != 1 {
		t.Fatalf("Expected links for page 1, got %+v", pages)
	}

	pl := pages[0]
	if pl.PageLength != len("see https://x.org/y\n\n\n") {
		t.Errorf("Unexpected page length %d", pl.PageLength)
	}
	if len(pl.Links) != 1 || pl.Links[0].URL != "https://x.org/y" {
		t.Fatalf("Expected one link, got %+v", pl.Links)
	}
	if len(pl.Links[0].Locations) != 1 || pl.Links[0].Locations[0] != 4 {
		t.Errorf("Expected link at offset 4, got %v", pl.Links[0].Locations)
	}
}

func TestExtractor_PlainScripts(t *testing.T) {
	doc := &stubRenderer{pages: []model.PageContent{
		pageWith(
			wordSpec{"mc", 10, 95, 105, 10, 10},
			wordSpec{"2", 30, 94, 100, 6, 6},
		),
	}}

	got, err := FromRenderer(doc).Text()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(got, "mc[2]") {
		t.Errorf("Expected script markers by default, got %q", got)
	}

	got, err = FromRenderer(doc).PlainScripts().Text()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(got, "mc2") {
		t.Errorf("Expected no script markers, got %q", got)
	}
}

func TestExtractor_Title(t *testing.T) {
	doc := &stubRenderer{pages: []model.PageContent{
		pageWith(
			wordSpec{"The Amazing", 10, 100, 110, 10, 10},
			wordSpec{"Title", 10, 112, 122, 10, 10},
		),
	}}

	got, err := FromRenderer(doc).Title()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "Title The Amazing" {
		t.Errorf("Expected %q, got %q", "Title The Amazing", got)
	}
}

func TestExtractor_NoFilename(t *testing.T) {
	if _, err := (&Extractor{options: defaultOptions()}).Text(); err == nil {
		t.Error("Expected error when no source is configured")
	}
}

func TestParseTitle(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"second line plus continuations",
			"header\nGreat Title\nContinued\n\n\n",
			"Great Title header Continued",
		},
		{
			"stops at blank line",
			"header\nGreat Title\n\nIgnored\n",
			"Great Title header",
		},
		{
			"script markers stripped",
			"hdr\nE = mc[2] Explained\n\n\n",
			"E = mc2 Explained hdr",
		},
		{
			"typographic unicode folded",
			"hdr\nCache — Timing “Attacks”\n\n\n",
			`Cache - Timing "Attacks" hdr`,
		},
		{"too short", "one line", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseTitle(tc.in); got != tc.want {
				t.Errorf("ParseTitle(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}
