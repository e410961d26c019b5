package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"blockpad/internal/domain"
	"blockpad/internal/editor"
	"blockpad/internal/logger"
)

// ─────────────────────────────────────────────────────────────
// Document Service — business logic over a DocumentStore
// ─────────────────────────────────────────────────────────────

// Sort keys accepted by SortDocuments.
const (
	SortByModified = "modified"
	SortByTitle    = "title"
	SortByCreated  = "created"
)

const snippetLength = 100

// DocumentService manages document lifecycle on top of a store.
// All block edits go through the pure editor ops and then persist
// the whole document, so the store only ever sees complete snapshots.
type DocumentService struct {
	store   domain.DocumentStore
	emitter EventEmitter
	saver   *Autosaver
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(store domain.DocumentStore, emitter EventEmitter) *DocumentService {
	if emitter == nil {
		emitter = NopEmitter{}
	}
	return &DocumentService{store: store, emitter: emitter}
}

// SetAutosaver attaches a debouncer. With one attached, block edits
// queue through it instead of writing the store on every keystroke;
// reads still see the queued snapshot. Pass nil to restore
// write-through saves.
func (s *DocumentService) SetAutosaver(a *Autosaver) {
	s.saver = a
}

// ── Lifecycle ──────────────────────────────────────────────

// CreateDocument seeds a new document with a level-1 heading carrying
// the title and an empty paragraph below it, then persists it.
func (s *DocumentService) CreateDocument(ctx context.Context, title string) (domain.Document, bool) {
	if title == "" {
		title = domain.DefaultTitle
	}
	doc := domain.Document{
		ID:    uuid.New().String(),
		Title: title,
		Content: []domain.Block{
			newSeedBlock(domain.BlockTypeHeading, title, 1),
			newSeedBlock(domain.BlockTypeParagraph, "", 0),
		},
	}
	if !s.store.Save(doc.ID, doc) {
		logger.Sugar.Errorw("create document failed", "id", doc.ID)
		return domain.Document{}, false
	}
	saved, ok := s.store.Get(doc.ID)
	if !ok {
		return domain.Document{}, false
	}
	s.emitter.Emit(ctx, EventDocumentSaved, saved.ID)
	return saved, true
}

func newSeedBlock(blockType domain.BlockType, content string, level int) domain.Block {
	b := editor.NewBlock(blockType, content)
	b.Level = level
	b.Normalize()
	return b
}

// GetDocument fetches a document by id. A block edit still inside its
// autosave window is returned from the pending snapshot, not the store.
func (s *DocumentService) GetDocument(id string) (domain.Document, bool) {
	if s.saver != nil {
		if doc, ok := s.saver.Pending(id); ok {
			return doc, true
		}
	}
	return s.store.Get(id)
}

// OpenDocument fetches a document, falling back to an in-memory
// welcome document when the id is unknown. The fallback is not
// persisted; saving it is the caller's decision.
func (s *DocumentService) OpenDocument(id string) domain.Document {
	if doc, ok := s.GetDocument(id); ok {
		return doc
	}
	return domain.Document{
		ID:    id,
		Title: domain.DefaultTitle,
		Content: []domain.Block{
			newSeedBlock(domain.BlockTypeHeading, "Welcome to your document", 1),
			newSeedBlock(domain.BlockTypeParagraph, "Start writing here...", 0),
		},
	}
}

// SaveDocument persists a full document snapshot.
func (s *DocumentService) SaveDocument(ctx context.Context, doc domain.Document) bool {
	if !s.store.Save(doc.ID, doc) {
		logger.Sugar.Errorw("save document failed", "id", doc.ID)
		return false
	}
	s.emitter.Emit(ctx, EventDocumentSaved, doc.ID)
	return true
}

// RenameDocument changes the title of an existing document.
func (s *DocumentService) RenameDocument(ctx context.Context, id, title string) bool {
	doc, ok := s.store.Get(id)
	if !ok {
		return false
	}
	doc.Title = title
	return s.SaveDocument(ctx, doc)
}

// ToggleStar flips the starred flag of an existing document.
func (s *DocumentService) ToggleStar(ctx context.Context, id string) (domain.Document, bool) {
	doc, ok := s.store.Get(id)
	if !ok {
		return domain.Document{}, false
	}
	doc.Starred = !doc.Starred
	if !s.SaveDocument(ctx, doc) {
		return domain.Document{}, false
	}
	return s.store.Get(id)
}

// DeleteDocument removes a document. Removing an unknown id succeeds.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) bool {
	if s.saver != nil {
		// A queued edit must not resurrect the document after delete.
		s.saver.Cancel(id)
	}
	if !s.store.Delete(id) {
		logger.Sugar.Errorw("delete document failed", "id", id)
		return false
	}
	s.emitter.Emit(ctx, EventDocumentDeleted, id)
	return true
}

// ListDocuments returns all documents, most recently updated first.
func (s *DocumentService) ListDocuments() []domain.Document {
	return s.store.GetAll()
}

// SearchDocuments returns documents whose title or block contents
// contain the query, case-insensitively.
func (s *DocumentService) SearchDocuments(query string) []domain.Document {
	return s.store.Search(query)
}

// ── Block edits ────────────────────────────────────────────

// InsertBlock classifies raw text into a block and inserts it after
// afterBlockID (or at the end when the id is unknown), persisting the
// resulting document.
func (s *DocumentService) InsertBlock(ctx context.Context, docID, afterBlockID, text string) (domain.Document, bool) {
	doc, ok := s.GetDocument(docID)
	if !ok {
		return domain.Document{}, false
	}
	doc = editor.InsertBlock(doc, afterBlockID, editor.Classify(text).Block())
	return s.persistEdit(ctx, doc)
}

// UpdateBlock applies a partial patch to one block and persists the
// resulting document.
func (s *DocumentService) UpdateBlock(ctx context.Context, docID, blockID string, patch domain.BlockPatch) (domain.Document, bool) {
	doc, ok := s.GetDocument(docID)
	if !ok {
		return domain.Document{}, false
	}
	doc = editor.UpdateBlock(doc, blockID, patch)
	return s.persistEdit(ctx, doc)
}

// DeleteBlock removes one block and persists the resulting document.
func (s *DocumentService) DeleteBlock(ctx context.Context, docID, blockID string) (domain.Document, bool) {
	doc, ok := s.GetDocument(docID)
	if !ok {
		return domain.Document{}, false
	}
	doc = editor.DeleteBlock(doc, blockID)
	return s.persistEdit(ctx, doc)
}

// persistEdit stores the result of a block edit: queued through the
// autosaver when one is attached, written through otherwise.
func (s *DocumentService) persistEdit(ctx context.Context, doc domain.Document) (domain.Document, bool) {
	if s.saver != nil {
		s.saver.Queue(doc)
		return doc, true
	}
	if !s.SaveDocument(ctx, doc) {
		return domain.Document{}, false
	}
	return s.store.Get(doc.ID)
}

// ImportMarkdown creates a new document from markdown text. The title
// comes from the first heading, or the default when there is none.
func (s *DocumentService) ImportMarkdown(ctx context.Context, text string) (domain.Document, bool) {
	blocks := editor.ImportBlocks(text)
	title := domain.DefaultTitle
	for _, b := range blocks {
		if b.Type == domain.BlockTypeHeading {
			title = b.Content
			break
		}
	}
	doc := domain.Document{
		ID:      uuid.New().String(),
		Title:   title,
		Content: blocks,
	}
	if !s.SaveDocument(ctx, doc) {
		return domain.Document{}, false
	}
	return s.store.Get(doc.ID)
}

// ── Summaries and ordering ─────────────────────────────────

// DocumentSummary is the list-view projection of a document.
type DocumentSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	WordCount int    `json:"wordCount"`
	Starred   bool   `json:"isStarred,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Summarize builds the list-view projection for one document. The
// snippet is the first paragraph's text, truncated.
func Summarize(doc domain.Document) DocumentSummary {
	snippet := ""
	for _, b := range doc.Content {
		if b.Type == domain.BlockTypeParagraph && strings.TrimSpace(b.Content) != "" {
			snippet = b.Content
			break
		}
	}
	if runes := []rune(snippet); len(runes) > snippetLength {
		snippet = string(runes[:snippetLength]) + "…"
	}
	return DocumentSummary{
		ID:        doc.ID,
		Title:     doc.Title,
		Snippet:   snippet,
		WordCount: editor.WordCount(doc),
		Starred:   doc.Starred,
		CreatedAt: doc.CreatedAt.Format("2006-01-02 15:04"),
		UpdatedAt: doc.UpdatedAt.Format("2006-01-02 15:04"),
	}
}

// SortDocuments orders docs in place by the given key: "title" A→Z,
// "created" newest first, anything else by last modified, newest
// first. Starred documents always sort before unstarred ones.
func SortDocuments(docs []domain.Document, key string) {
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Starred != docs[j].Starred {
			return docs[i].Starred
		}
		switch key {
		case SortByTitle:
			return strings.ToLower(docs[i].Title) < strings.ToLower(docs[j].Title)
		case SortByCreated:
			return docs[i].CreatedAt.After(docs[j].CreatedAt)
		default:
			return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
		}
	})
}
