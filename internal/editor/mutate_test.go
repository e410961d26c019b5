package editor_test

import (
	"testing"
	"time"

	"blockpad/internal/domain"
	"blockpad/internal/editor"
)

func sampleDoc() domain.Document {
	return domain.Document{
		ID:    "doc-1",
		Title: "Sample",
		Content: []domain.Block{
			{ID: "b1", Type: domain.BlockTypeHeading, Level: 1, Content: "Title"},
			{ID: "b2", Type: domain.BlockTypeParagraph, Content: "Body text"},
			{ID: "b3", Type: domain.BlockTypeBulletList, Content: "one\ntwo"},
		},
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

func blockIDs(doc domain.Document) []string {
	ids := make([]string, len(doc.Content))
	for i, b := range doc.Content {
		ids[i] = b.ID
	}
	return ids
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewBlock_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		b := editor.NewBlock(domain.BlockTypeParagraph, "x")
		if b.ID == "" {
			t.Fatal("expected non-empty block id")
		}
		if seen[b.ID] {
			t.Fatalf("duplicate block id %q", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestNewBlock_HeadingLevelClamped(t *testing.T) {
	b := editor.NewBlock(domain.BlockTypeHeading, "H")
	if b.Level != 1 {
		t.Errorf("expected default heading level 1, got %d", b.Level)
	}

	p := editor.NewBlock(domain.BlockTypeParagraph, "p")
	if p.Level != 0 {
		t.Errorf("expected no level on paragraph, got %d", p.Level)
	}
}

func TestInsertBlock_AfterExisting(t *testing.T) {
	doc := sampleDoc()
	nb := editor.NewBlock(domain.BlockTypeQuote, "quoted")

	out := editor.InsertBlock(doc, "b1", nb)

	if len(out.Content) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(out.Content))
	}
	if out.Content[1].ID != nb.ID {
		t.Errorf("expected new block at index 1, got %q", out.Content[1].ID)
	}
	if out.Content[2].ID != "b2" || out.Content[3].ID != "b3" {
		t.Errorf("relative order of untouched blocks changed: %v", blockIDs(out))
	}
}

func TestInsertBlock_MissingIDAppends(t *testing.T) {
	doc := sampleDoc()
	nb := editor.NewBlock(domain.BlockTypeParagraph, "tail")

	out := editor.InsertBlock(doc, "no-such-id", nb)

	if last := out.Content[len(out.Content)-1]; last.ID != nb.ID {
		t.Errorf("expected new block appended last, got %q", last.ID)
	}
}

func TestInsertBlock_InputUnchanged(t *testing.T) {
	doc := sampleDoc()
	before := blockIDs(doc)
	prevUpdated := doc.UpdatedAt

	out := editor.InsertBlock(doc, "b2", editor.NewBlock(domain.BlockTypeParagraph, "x"))

	if !sameIDs(blockIDs(doc), before) {
		t.Error("input document was mutated")
	}
	if !doc.UpdatedAt.Equal(prevUpdated) {
		t.Error("input document UpdatedAt was mutated")
	}
	if out.UpdatedAt.Before(prevUpdated) {
		t.Error("output UpdatedAt not refreshed")
	}
}

func TestUpdateBlock_ShallowMerge(t *testing.T) {
	doc := sampleDoc()
	content := "replaced"

	out := editor.UpdateBlock(doc, "b2", domain.BlockPatch{Content: &content})

	b := out.Content[1]
	if b.Content != "replaced" {
		t.Errorf("expected content replaced, got %q", b.Content)
	}
	if b.Type != domain.BlockTypeParagraph {
		t.Errorf("untouched field changed: type %q", b.Type)
	}
	if b.UpdatedAt.IsZero() {
		t.Error("matched block UpdatedAt not stamped")
	}
	if !out.Content[0].UpdatedAt.IsZero() {
		t.Error("non-matching block was stamped")
	}
}

func TestUpdateBlock_Reclassify(t *testing.T) {
	doc := sampleDoc()
	heading := domain.BlockTypeHeading
	level := 7

	out := editor.UpdateBlock(doc, "b2", domain.BlockPatch{Type: &heading, Level: &level})

	b := out.Content[1]
	if b.ID != "b2" {
		t.Error("id must persist across reclassification")
	}
	if b.Type != domain.BlockTypeHeading {
		t.Errorf("expected heading, got %q", b.Type)
	}
	if b.Level != 3 {
		t.Errorf("expected level clamped to 3, got %d", b.Level)
	}
}

func TestUpdateBlock_MissingIDRefreshesDocOnly(t *testing.T) {
	doc := sampleDoc()
	prevUpdated := doc.UpdatedAt
	content := "x"

	out := editor.UpdateBlock(doc, "no-such-id", domain.BlockPatch{Content: &content})

	for i, b := range out.Content {
		if b.Content != doc.Content[i].Content {
			t.Errorf("block %d content changed on missing-id update", i)
		}
	}
	if out.UpdatedAt.Before(prevUpdated) {
		t.Error("document UpdatedAt must refresh even on a no-op")
	}
}

func TestUpdateBlock_EmptyPatchRefreshesUpdatedAt(t *testing.T) {
	doc := sampleDoc()
	prevUpdated := doc.UpdatedAt

	out := editor.UpdateBlock(doc, "b2", domain.BlockPatch{})

	if out.Content[1].Content != "Body text" {
		t.Error("empty patch must not change content")
	}
	if out.UpdatedAt.Before(prevUpdated) {
		t.Error("UpdatedAt must be >= previous value")
	}
}

func TestDeleteBlock_RemovesMatch(t *testing.T) {
	doc := sampleDoc()

	out := editor.DeleteBlock(doc, "b2")

	if !sameIDs(blockIDs(out), []string{"b1", "b3"}) {
		t.Errorf("unexpected block sequence: %v", blockIDs(out))
	}
}

func TestDeleteBlock_MissingIDKeepsSequence(t *testing.T) {
	doc := sampleDoc()

	out := editor.DeleteBlock(doc, "no-such-id")

	if !sameIDs(blockIDs(out), blockIDs(doc)) {
		t.Errorf("sequence changed on missing-id delete: %v", blockIDs(out))
	}
}
