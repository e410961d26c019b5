package domain

import "time"

type BlockType string

const (
	BlockTypeHeading      BlockType = "heading"
	BlockTypeParagraph    BlockType = "paragraph"
	BlockTypeBulletList   BlockType = "bullet-list"
	BlockTypeNumberedList BlockType = "numbered-list"
	BlockTypeQuote        BlockType = "quote"
	BlockTypeCode         BlockType = "code"
)

const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 3
)

// Block is the smallest addressable unit of document content.
// The ID never changes after creation; the type may (a paragraph can be
// reclassified into a heading without losing cursor continuity).
// List blocks keep their items as newline-joined lines inside Content.
type Block struct {
	ID        string    `json:"id"`
	Type      BlockType `json:"type"`
	Content   string    `json:"content"`
	Level     int       `json:"level,omitempty"` // headings only, 1-3
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// BlockPatch carries a partial block update. Nil fields are left untouched.
type BlockPatch struct {
	Type    *BlockType `json:"type,omitempty"`
	Content *string    `json:"content,omitempty"`
	Level   *int       `json:"level,omitempty"`
}

// ClampLevel forces a heading level into the [1,3] range.
func ClampLevel(level int) int {
	if level < MinHeadingLevel {
		return MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		return MaxHeadingLevel
	}
	return level
}

// Normalize enforces the per-type attribute rules: headings carry a clamped
// level, every other type carries none.
func (b *Block) Normalize() {
	if b.Type == BlockTypeHeading {
		b.Level = ClampLevel(b.Level)
	} else {
		b.Level = 0
	}
}
