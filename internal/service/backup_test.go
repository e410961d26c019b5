package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blockpad/internal/service"
	"blockpad/internal/storage"
)

func TestBackupService_RunBackup(t *testing.T) {
	store := storage.NewMemoryStore()
	docs := service.NewDocumentService(store, &service.MockEmitter{})
	ctx := context.Background()

	d1, _ := docs.CreateDocument(ctx, "Meeting Notes")
	docs.CreateDocument(ctx, "Roadmap")

	dir := filepath.Join(t.TempDir(), "backups")
	emitter := &service.MockEmitter{}
	backup := service.NewBackupService(docs, dir, emitter)

	n, err := backup.RunBackup(ctx)
	if err != nil {
		t.Fatalf("RunBackup: %v", err)
	}
	if n != 2 {
		t.Errorf("wrote %d files, want 2", n)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("dir has %d entries", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, "meeting-notes-"+d1.ID+".md"))
	if err != nil {
		t.Fatalf("expected slugged filename: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Meeting Notes") {
		t.Errorf("backup content = %q", string(data))
	}

	if len(emitter.Events) != 1 || emitter.Events[0].Event != service.EventBackupDone {
		t.Errorf("events = %+v", emitter.Events)
	}
}

func TestBackupService_StartRejectsBadSchedule(t *testing.T) {
	docs := service.NewDocumentService(storage.NewMemoryStore(), &service.MockEmitter{})
	backup := service.NewBackupService(docs, t.TempDir(), nil)

	if err := backup.Start(context.Background(), "not a cron expr"); err == nil {
		t.Error("expected error for invalid schedule")
	}
	backup.Stop()
}
