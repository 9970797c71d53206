package layout

import (
	"testing"
)

func TestFormation_AdjacentGlyphsShareBlock(t *testing.T) {
	// Two glyphs one font-size apart on the same baseline.
	content := contentOf(612, 792,
		word("PD", 10, 95, 105, 10, 10),
	)
	p, err := NewPage(content, DefaultConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p.formBlocks()
	if len(p.blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(p.blocks))
	}
	if len(p.blocks[0].Tokens) != 2 {
		t.Errorf("Expected 2 tokens in block, got %d", len(p.blocks[0].Tokens))
	}
	assertPartition(t, p)
}

func TestFormation_WordRunExtendsAcrossSmallGap(t *testing.T) {
	// "PDF" and "Parser" on one baseline with a 3-unit gap: the forward
	// walk bridges the gap, producing one line-level block.
	content := contentOf(612, 792,
		word("PDF", 10, 95, 105, 10, 10),
		word("Parser", 43, 95, 105, 10, 10),
	)
	p, err := NewPage(content, DefaultConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p.formBlocks()
	if len(p.blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(p.blocks))
	}
	if len(p.blocks[0].Tokens) != 9 {
		t.Errorf("Expected 9 tokens, got %d", len(p.blocks[0].Tokens))
	}
	assertPartition(t, p)
}

func TestFormation_SeparateLinesSeparateBlocks(t *testing.T) {
	content := contentOf(612, 792,
		word("ab", 10, 100, 110, 10, 10),
		word("cd", 10, 400, 410, 10, 10),
	)
	p, err := NewPage(content, DefaultConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p.formBlocks()
	if len(p.blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(p.blocks))
	}
	assertPartition(t, p)
}

func TestFormation_TokenOrderWithinBlockFollowsWalk(t *testing.T) {
	content := contentOf(612, 792,
		word("abc", 10, 95, 105, 10, 10),
	)
	p, err := NewPage(content, DefaultConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p.formBlocks()
	if len(p.blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(p.blocks))
	}

	var got []rune
	for _, ti := range p.blocks[0].Tokens {
		got = append(got, p.tokens[ti].Char)
	}
	if string(got) != "abc" {
		t.Errorf("Expected insertion order abc, got %q", string(got))
	}
}
