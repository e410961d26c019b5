package storage

import (
	"sync"

	"blockpad/internal/domain"
)

// MemoryStore is an in-memory DocumentStore with the same observable
// semantics as the file-backed stores. Used in tests and as an ephemeral
// backend.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]domain.Document
}

var _ domain.DocumentStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]domain.Document)}
}

func (s *MemoryStore) Save(id string, doc domain.Document) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[id] = stampForSave(id, doc.Clone())
	return true
}

func (s *MemoryStore) Get(id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, false
	}
	return doc.Clone(), true
}

func (s *MemoryStore) GetAll() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copies := make(map[string]domain.Document, len(s.docs))
	for id, d := range s.docs {
		copies[id] = d.Clone()
	}
	return sortByUpdated(copies)
}

func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, id)
	return true
}

func (s *MemoryStore) Search(query string) []domain.Document {
	return filterDocuments(s.GetAll(), query)
}
