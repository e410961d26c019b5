package service_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"blockpad/internal/service"
)

func TestStoreWatcher_EmitsOnExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "documents.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	emitter := &service.MockEmitter{}
	w, err := service.NewStoreWatcher(path, emitter)
	if err != nil {
		t.Fatalf("NewStoreWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`{"d1":{}}`), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(emitter.Recorded()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no store:changed event")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if events := emitter.Recorded(); events[0].Event != service.EventStoreChanged {
		t.Errorf("event = %q", events[0].Event)
	}
}

func TestStoreWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "documents.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	emitter := &service.MockEmitter{}
	w, err := service.NewStoreWatcher(path, emitter)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(500 * time.Millisecond)
	if events := emitter.Recorded(); len(events) != 0 {
		t.Errorf("unexpected events: %+v", events)
	}
}
