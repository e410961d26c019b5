package editor

import (
	"regexp"
	"strings"

	"blockpad/internal/domain"
)

var numberedPrefix = regexp.MustCompile(`^\d+\. `)

// Classification is the result of mapping a line of typed text to a block
// shape: the detected type, the content with the shorthand prefix stripped,
// and the heading level when applicable.
type Classification struct {
	Type    domain.BlockType
	Content string
	Level   int
}

// Classify inspects one line of raw typed text and decides the intended block
// type from a fixed, ordered set of prefix rules; the first match wins. Lines
// are classified independently, there is no state between calls.
func Classify(text string) Classification {
	switch {
	case strings.HasPrefix(text, "# "):
		return Classification{Type: domain.BlockTypeHeading, Level: 1, Content: text[2:]}
	case strings.HasPrefix(text, "## "):
		return Classification{Type: domain.BlockTypeHeading, Level: 2, Content: text[3:]}
	case strings.HasPrefix(text, "### "):
		return Classification{Type: domain.BlockTypeHeading, Level: 3, Content: text[4:]}
	case strings.HasPrefix(text, "- "), strings.HasPrefix(text, "* "):
		return Classification{Type: domain.BlockTypeBulletList, Content: text[2:]}
	case numberedPrefix.MatchString(text):
		return Classification{Type: domain.BlockTypeNumberedList, Content: numberedPrefix.ReplaceAllString(text, "")}
	case strings.HasPrefix(text, "> "):
		return Classification{Type: domain.BlockTypeQuote, Content: text[2:]}
	case strings.HasPrefix(text, "```"):
		return Classification{Type: domain.BlockTypeCode, Content: text[3:]}
	default:
		return Classification{Type: domain.BlockTypeParagraph, Content: text}
	}
}

// Block converts a classification into a freshly allocated block.
func (c Classification) Block() domain.Block {
	b := NewBlock(c.Type, c.Content)
	b.Level = c.Level
	b.Normalize()
	return b
}
