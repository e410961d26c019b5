// Package storage provides the DocumentStore backends: a JSON blob file
// (the default), SQLite, and an in-memory store for tests.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"blockpad/internal/domain"
	"blockpad/internal/logger"
)

// BlobStore persists the whole document map as one JSON file. The file is
// re-read and re-parsed on every call and rewritten in full on every save;
// there is no in-memory canonical copy. A missing or corrupt file reads as
// an empty store.
type BlobStore struct {
	mu   sync.Mutex
	path string
}

var _ domain.DocumentStore = (*BlobStore)(nil)

// NewBlobStore creates a BlobStore backed by the file at path, creating the
// parent directory if needed.
func NewBlobStore(path string) (*BlobStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &BlobStore{path: path}, nil
}

// Path returns the backing file path.
func (s *BlobStore) Path() string {
	return s.path
}

func (s *BlobStore) readAll() map[string]domain.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]domain.Document{}
	}
	var docs map[string]domain.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		logger.Sugar.Warnf("document blob %s is corrupt, treating as empty: %v", s.path, err)
		return map[string]domain.Document{}
	}
	if docs == nil {
		docs = map[string]domain.Document{}
	}
	return docs
}

func (s *BlobStore) writeAll(docs map[string]domain.Document) bool {
	data, err := json.Marshal(docs)
	if err != nil {
		logger.Sugar.Errorf("encode document blob: %v", err)
		return false
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		logger.Sugar.Errorf("write document blob %s: %v", s.path, err)
		return false
	}
	return true
}

func (s *BlobStore) Save(id string, doc domain.Document) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.readAll()
	docs[id] = stampForSave(id, doc)
	return s.writeAll(docs)
}

func (s *BlobStore) Get(id string) (domain.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.readAll()[id]
	if !ok {
		return domain.Document{}, false
	}
	return doc, true
}

func (s *BlobStore) GetAll() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortByUpdated(s.readAll())
}

func (s *BlobStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.readAll()
	if _, ok := docs[id]; !ok {
		// Deleting an unknown id is a silent success.
		return true
	}
	delete(docs, id)
	return s.writeAll(docs)
}

func (s *BlobStore) Search(query string) []domain.Document {
	return filterDocuments(s.GetAll(), query)
}

// stampForSave applies the authoritative save-time timestamps: UpdatedAt is
// always overwritten with now, CreatedAt is kept when the input carries one.
func stampForSave(id string, doc domain.Document) domain.Document {
	now := time.Now()
	doc.ID = id
	if doc.Title == "" {
		doc.Title = domain.DefaultTitle
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now
	return doc
}

// sortByUpdated flattens the map most-recently-modified first.
func sortByUpdated(docs map[string]domain.Document) []domain.Document {
	out := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// filterDocuments keeps documents whose title or block contents contain the
// query, case-insensitively, preserving input order.
func filterDocuments(docs []domain.Document, query string) []domain.Document {
	q := strings.ToLower(query)
	var out []domain.Document
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.Title), q) {
			out = append(out, d)
			continue
		}
		for _, b := range d.Content {
			if b.Content != "" && strings.Contains(strings.ToLower(b.Content), q) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}
