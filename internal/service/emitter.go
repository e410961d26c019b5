package service

import (
	"context"
	"sync"

	"blockpad/internal/logger"
)

// ─────────────────────────────────────────────────────────────
// EventEmitter — decouples services from any UI transport
// ─────────────────────────────────────────────────────────────

// EventEmitter is an interface for publishing events to whoever is
// listening (a UI, a log sink, nothing at all). Services receive this
// interface instead of a concrete transport, which makes them
// independently testable with a mock emitter.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// Event names published by the services in this package.
const (
	EventDocumentSaved   = "document:saved"
	EventDocumentDeleted = "document:deleted"
	EventStoreChanged    = "store:changed"
	EventBackupDone      = "backup:done"
)

// NopEmitter discards all events.
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, string, any) {}

// LogEmitter writes events to the process logger. Headless runs use it
// where a UI would otherwise listen.
type LogEmitter struct{}

func (LogEmitter) Emit(_ context.Context, event string, data any) {
	logger.Sugar.Infow("event", "name", event, "data", data)
}

// MockEmitter is a test-friendly EventEmitter that records all calls.
// Safe for concurrent use; some services emit from timer goroutines.
type MockEmitter struct {
	mu     sync.Mutex
	Events []EmittedEvent
}

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, EmittedEvent{Event: event, Data: data})
}

// Recorded returns a snapshot of everything emitted so far.
func (m *MockEmitter) Recorded() []EmittedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EmittedEvent, len(m.Events))
	copy(out, m.Events)
	return out
}
