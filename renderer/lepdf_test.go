package renderer

import (
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/ckaiser/paperlens/model"
)

func TestGlyphContent_FlipsY(t *testing.T) {
	// A 10pt glyph with its baseline 100pt above the bottom of a 792pt
	// page sits 682pt from the top.
	texts := []pdf.Text{
		{S: "A", X: 50, Y: 100, W: 8, FontSize: 10},
	}

	content := glyphContent(texts, 612, 792)

	if content.Text != "A" {
		t.Fatalf("Expected text %q, got %q", "A", content.Text)
	}
	want := model.NewRect(50, 682, 58, 692)
	if content.Layout[0] != want {
		t.Errorf("Expected rect %+v, got %+v", want, content.Layout[0])
	}
	if content.Width != 612 || content.Height != 792 {
		t.Errorf("Expected 612x792 page, got %gx%g", content.Width, content.Height)
	}
}

func TestGlyphContent_SplitsMultiRuneFragments(t *testing.T) {
	texts := []pdf.Text{
		{S: "ab", X: 10, Y: 100, W: 20, FontSize: 10},
	}

	content := glyphContent(texts, 612, 792)

	if content.Text != "ab" {
		t.Fatalf("Expected text %q, got %q", "ab", content.Text)
	}
	if len(content.Layout) != 2 {
		t.Fatalf("Expected 2 rectangles, got %d", len(content.Layout))
	}
	if content.Layout[0].X1 != 10 || content.Layout[0].X2 != 20 {
		t.Errorf("First glyph spans %g..%g, expected 10..20", content.Layout[0].X1, content.Layout[0].X2)
	}
	if content.Layout[1].X1 != 20 || content.Layout[1].X2 != 30 {
		t.Errorf("Second glyph spans %g..%g, expected 20..30", content.Layout[1].X1, content.Layout[1].X2)
	}
}

func TestGlyphContent_RunLengthEncodesFontSizes(t *testing.T) {
	texts := []pdf.Text{
		{S: "a", X: 10, Y: 100, W: 10, FontSize: 10},
		{S: "b", X: 20, Y: 100, W: 10, FontSize: 10},
		{S: "2", X: 30, Y: 104, W: 6, FontSize: 6},
	}

	content := glyphContent(texts, 612, 792)

	want := []model.AttrSpan{
		{EndIndex: 1, FontSize: 10},
		{EndIndex: 2, FontSize: 6},
	}
	if len(content.Attrs) != len(want) {
		t.Fatalf("Expected %d attribute runs, got %d", len(want), len(content.Attrs))
	}
	for i, a := range want {
		if content.Attrs[i] != a {
			t.Errorf("Run %d: expected %+v, got %+v", i, a, content.Attrs[i])
		}
	}
}

func TestGlyphContent_SkipsEmptyFragments(t *testing.T) {
	texts := []pdf.Text{
		{S: "", X: 10, Y: 100, W: 0, FontSize: 10},
		{S: "x", X: 10, Y: 100, W: 10, FontSize: 10},
	}

	content := glyphContent(texts, 612, 792)

	if content.Text != "x" {
		t.Errorf("Expected empty fragments to be dropped, got %q", content.Text)
	}
	if len(content.Layout) != 1 || len(content.Attrs) != 1 {
		t.Errorf("Expected 1 rectangle and 1 attribute run, got %d and %d",
			len(content.Layout), len(content.Attrs))
	}
}

func TestGlyphContent_EmptyPage(t *testing.T) {
	content := glyphContent(nil, 612, 792)

	if content.Text != "" || len(content.Layout) != 0 || len(content.Attrs) != 0 {
		t.Errorf("Expected empty content, got %+v", content)
	}
}
