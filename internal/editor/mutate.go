// Package editor holds the pure document transformations: block mutation,
// shorthand classification, and markdown export/import. Nothing here touches
// storage; every operation takes a Document and returns a new one.
package editor

import (
	"time"

	"github.com/google/uuid"

	"blockpad/internal/domain"
)

// NewBlock allocates a block with a fresh process-unique id. IDs are never
// reused, even after the block is deleted.
func NewBlock(blockType domain.BlockType, content string) domain.Block {
	b := domain.Block{
		ID:        uuid.New().String(),
		Type:      blockType,
		Content:   content,
		CreatedAt: time.Now(),
	}
	b.Normalize()
	return b
}

// InsertBlock inserts block immediately after the block with afterBlockID.
// When no block has that id the new block is appended at the end. The input
// document is left unchanged.
func InsertBlock(doc domain.Document, afterBlockID string, block domain.Block) domain.Document {
	out := doc.Clone()
	idx := out.FindBlock(afterBlockID)
	if idx == -1 {
		out.Content = append(out.Content, block)
	} else {
		out.Content = append(out.Content, domain.Block{})
		copy(out.Content[idx+2:], out.Content[idx+1:])
		out.Content[idx+1] = block
	}
	out.UpdatedAt = time.Now()
	return out
}

// UpdateBlock shallow-merges patch into the block matching blockID and stamps
// that block's UpdatedAt. A missing block id is a silent no-op on content;
// the document's own UpdatedAt refreshes either way.
func UpdateBlock(doc domain.Document, blockID string, patch domain.BlockPatch) domain.Document {
	out := doc.Clone()
	if idx := out.FindBlock(blockID); idx != -1 {
		b := &out.Content[idx]
		if patch.Type != nil {
			b.Type = *patch.Type
		}
		if patch.Content != nil {
			b.Content = *patch.Content
		}
		if patch.Level != nil {
			b.Level = *patch.Level
		}
		b.Normalize()
		b.UpdatedAt = time.Now()
	}
	out.UpdatedAt = time.Now()
	return out
}

// DeleteBlock removes the block with the matching id. A missing id leaves the
// content unchanged but still refreshes the document's UpdatedAt.
func DeleteBlock(doc domain.Document, blockID string) domain.Document {
	out := doc.Clone()
	if idx := out.FindBlock(blockID); idx != -1 {
		out.Content = append(out.Content[:idx], out.Content[idx+1:]...)
	}
	out.UpdatedAt = time.Now()
	return out
}
