package domain

import "time"

// DefaultTitle is used whenever a document is created or decoded without one.
const DefaultTitle = "Untitled Document"

// Document is an ordered sequence of blocks plus metadata. Block order is
// meaningful: it determines render and export order.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   []Block   `json:"content"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
	Starred   bool      `json:"isStarred,omitempty"`
}

// Clone returns a deep copy. Mutator operations work on clones so that the
// input document is never modified in place.
func (d Document) Clone() Document {
	out := d
	out.Content = make([]Block, len(d.Content))
	copy(out.Content, d.Content)
	return out
}

// FindBlock returns the index of the block with the given id, or -1.
func (d Document) FindBlock(blockID string) int {
	for i := range d.Content {
		if d.Content[i].ID == blockID {
			return i
		}
	}
	return -1
}

// DocumentStore is the persistence boundary mapping document id to Document.
// Every backing failure (store unavailable, corrupt blob, SQL error) is
// absorbed here and reported as a boolean or absent result; callers never see
// a fault from the degraded paths.
type DocumentStore interface {
	// Save persists the document under id. The stored copy always carries
	// UpdatedAt = save time; CreatedAt is kept from the input when set,
	// otherwise stamped now.
	Save(id string, doc Document) bool

	// Get returns the stored document, or false if it was never saved or the
	// backing blob is missing or corrupt.
	Get(id string) (Document, bool)

	// GetAll returns every stored document, most recently modified first.
	GetAll() []Document

	// Delete removes the entry. Deleting an unknown id is a silent success.
	Delete(id string) bool

	// Search returns documents whose title or block contents contain the
	// query, case-insensitively, in store order.
	Search(query string) []Document
}
