package editor_test

import (
	"testing"

	"blockpad/internal/domain"
	"blockpad/internal/editor"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		in      string
		typ     domain.BlockType
		content string
		level   int
	}{
		{"# Title", domain.BlockTypeHeading, "Title", 1},
		{"## Sub", domain.BlockTypeHeading, "Sub", 2},
		{"### Deep", domain.BlockTypeHeading, "Deep", 3},
		{"- item", domain.BlockTypeBulletList, "item", 0},
		{"* item", domain.BlockTypeBulletList, "item", 0},
		{"1. step one", domain.BlockTypeNumberedList, "step one", 0},
		{"42. later step", domain.BlockTypeNumberedList, "later step", 0},
		{"> wisdom", domain.BlockTypeQuote, "wisdom", 0},
		{"```go", domain.BlockTypeCode, "go", 0},
		{"plain text", domain.BlockTypeParagraph, "plain text", 0},
		{"#no space", domain.BlockTypeParagraph, "#no space", 0},
		{"1.no space", domain.BlockTypeParagraph, "1.no space", 0},
		{"", domain.BlockTypeParagraph, "", 0},
	}

	for _, tc := range cases {
		got := editor.Classify(tc.in)
		if got.Type != tc.typ || got.Content != tc.content || got.Level != tc.level {
			t.Errorf("Classify(%q) = {%s %q %d}, want {%s %q %d}",
				tc.in, got.Type, got.Content, got.Level, tc.typ, tc.content, tc.level)
		}
	}
}

// The "#### " prefix is not in the rule set; level-3 is the deepest heading.
func TestClassify_FourHashesIsParagraph(t *testing.T) {
	got := editor.Classify("#### Too deep")
	if got.Type != domain.BlockTypeParagraph {
		t.Errorf("expected paragraph, got %q", got.Type)
	}
}

func TestClassification_Block(t *testing.T) {
	b := editor.Classify("## Section").Block()
	if b.Type != domain.BlockTypeHeading || b.Level != 2 || b.Content != "Section" {
		t.Errorf("unexpected block: %+v", b)
	}
	if b.ID == "" {
		t.Error("expected allocated id")
	}
}
