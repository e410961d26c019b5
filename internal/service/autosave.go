package service

import (
	"sync"
	"time"

	"blockpad/internal/domain"
	"blockpad/internal/logger"
)

// ─────────────────────────────────────────────────────────────
// Autosaver — debounced persistence for in-flight edits
// ─────────────────────────────────────────────────────────────

// DefaultAutosaveDelay is the debounce window between the last edit
// and the write that persists it.
const DefaultAutosaveDelay = 2 * time.Second

type pendingSave struct {
	timer *time.Timer
	doc   domain.Document
}

// Autosaver coalesces rapid edits to the same document into a single
// store write. Each Queue call replaces the pending snapshot and
// restarts that document's timer; only the latest snapshot is ever
// written. It writes to the store directly so a DocumentService can
// route its own saves through it.
type Autosaver struct {
	store domain.DocumentStore
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
	closed  bool
}

// NewAutosaver creates an Autosaver writing to store after delay of
// inactivity per document. A non-positive delay falls back to
// DefaultAutosaveDelay.
func NewAutosaver(store domain.DocumentStore, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{
		store:   store,
		delay:   delay,
		pending: make(map[string]*pendingSave),
	}
}

// Queue schedules doc for saving, replacing any pending snapshot for
// the same id and restarting its timer.
func (a *Autosaver) Queue(doc domain.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	if p, ok := a.pending[doc.ID]; ok {
		p.timer.Stop()
		p.doc = doc
		p.timer.Reset(a.delay)
		return
	}
	p := &pendingSave{doc: doc}
	id := doc.ID
	p.timer = time.AfterFunc(a.delay, func() { a.fire(id) })
	a.pending[id] = p
}

// Pending returns the queued-but-unwritten snapshot for id, if any,
// so reads can see an edit before its debounce window elapses.
func (a *Autosaver) Pending(id string) (domain.Document, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.pending[id]
	if !ok {
		return domain.Document{}, false
	}
	return p.doc.Clone(), true
}

// Cancel drops the pending snapshot for id without writing it.
func (a *Autosaver) Cancel(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.pending[id]; ok {
		p.timer.Stop()
		delete(a.pending, id)
	}
}

func (a *Autosaver) fire(id string) {
	a.mu.Lock()
	p, ok := a.pending[id]
	if ok {
		delete(a.pending, id)
	}
	a.mu.Unlock()
	if !ok {
		return
	}
	a.save(p.doc)
}

// Flush writes every pending snapshot immediately.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	taken := a.pending
	a.pending = make(map[string]*pendingSave)
	a.mu.Unlock()

	for _, p := range taken {
		p.timer.Stop()
		a.save(p.doc)
	}
}

// Close flushes pending snapshots and rejects further Queue calls.
func (a *Autosaver) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	a.Flush()
}

func (a *Autosaver) save(doc domain.Document) {
	if !a.store.Save(doc.ID, doc) {
		logger.Sugar.Errorw("autosave failed", "id", doc.ID)
	}
}
