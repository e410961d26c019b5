package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	"blockpad/internal/domain"
	"blockpad/internal/logger"
)

// SQLiteStore implements domain.DocumentStore on a documents table, keeping
// the blob store's observable semantics: save stamps the authoritative
// UpdatedAt, corrupt rows read as absent, failures collapse to false.
type SQLiteStore struct {
	db *DB
}

var _ domain.DocumentStore = (*SQLiteStore)(nil)

func NewSQLiteStore(db *DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Save(id string, doc domain.Document) bool {
	doc = stampForSave(id, doc)
	content, err := json.Marshal(doc.Content)
	if err != nil {
		logger.Sugar.Errorf("encode document %s: %v", id, err)
		return false
	}

	_, err = s.db.Conn().Exec(
		`INSERT INTO documents (id, title, content_json, starred, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content_json = excluded.content_json,
			starred = excluded.starred,
			updated_at = excluded.updated_at`,
		id, doc.Title, string(content), doc.Starred, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		logger.Sugar.Errorf("save document %s: %v", id, err)
		return false
	}
	return true
}

func (s *SQLiteStore) Get(id string) (domain.Document, bool) {
	row := s.db.Conn().QueryRow(
		`SELECT id, title, content_json, starred, created_at, updated_at FROM documents WHERE id = ?`, id,
	)
	doc, err := scanDocument(row.Scan)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Sugar.Warnf("get document %s: %v", id, err)
		}
		return domain.Document{}, false
	}
	return doc, true
}

func (s *SQLiteStore) GetAll() []domain.Document {
	rows, err := s.db.Conn().Query(
		`SELECT id, title, content_json, starred, created_at, updated_at FROM documents ORDER BY updated_at DESC`,
	)
	if err != nil {
		logger.Sugar.Warnf("list documents: %v", err)
		return nil
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			// A row with undecodable content reads as absent, not fatal.
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

func (s *SQLiteStore) Delete(id string) bool {
	if _, err := s.db.Conn().Exec(`DELETE FROM documents WHERE id = ?`, id); err != nil {
		logger.Sugar.Errorf("delete document %s: %v", id, err)
		return false
	}
	return true
}

func (s *SQLiteStore) Search(query string) []domain.Document {
	// Block contents live inside the JSON column, so the match is a linear
	// scan over decoded documents rather than a SQL LIKE.
	return filterDocuments(s.GetAll(), query)
}

func scanDocument(scan func(dest ...any) error) (domain.Document, error) {
	var doc domain.Document
	var content string
	var createdAt, updatedAt time.Time
	if err := scan(&doc.ID, &doc.Title, &content, &doc.Starred, &createdAt, &updatedAt); err != nil {
		return domain.Document{}, err
	}
	if err := json.Unmarshal([]byte(content), &doc.Content); err != nil {
		return domain.Document{}, err
	}
	doc.CreatedAt = createdAt
	doc.UpdatedAt = updatedAt
	return doc, nil
}
