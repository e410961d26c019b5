package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"blockpad/internal/storage"
)

func newSQLiteStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	db, err := storage.OpenDB(filepath.Join(t.TempDir(), "blockpad.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return storage.NewSQLiteStore(db)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s := newSQLiteStore(t)

	if !s.Save("d1", testDoc("d1", "First")) {
		t.Fatal("save failed")
	}

	got, ok := s.Get("d1")
	if !ok {
		t.Fatal("expected document present")
	}
	if got.Title != "First" || len(got.Content) != 2 {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestSQLiteStore_UpsertKeepsCreatedAt(t *testing.T) {
	s := newSQLiteStore(t)

	s.Save("d1", testDoc("d1", "First"))
	first, _ := s.Get("d1")

	time.Sleep(5 * time.Millisecond)
	s.Save("d1", testDoc("d1", "Renamed"))

	got, _ := s.Get("d1")
	if got.Title != "Renamed" {
		t.Errorf("expected updated title, got %q", got.Title)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Error("upsert must keep original CreatedAt")
	}
	if !got.UpdatedAt.After(first.UpdatedAt) {
		t.Error("upsert must advance UpdatedAt")
	}
}

func TestSQLiteStore_GetAllOrder(t *testing.T) {
	s := newSQLiteStore(t)

	s.Save("a", testDoc("a", "Alpha"))
	time.Sleep(5 * time.Millisecond)
	s.Save("b", testDoc("b", "Beta"))

	docs := s.GetAll()
	if len(docs) != 2 || docs[0].ID != "b" {
		t.Errorf("expected newest first, got %+v", docs)
	}
}

func TestSQLiteStore_DeleteAndSearch(t *testing.T) {
	s := newSQLiteStore(t)
	s.Save("d1", testDoc("d1", "Meeting Notes"))
	s.Save("d2", testDoc("d2", "Roadmap"))

	if got := s.Search("MEETING"); len(got) != 1 || got[0].ID != "d1" {
		t.Errorf("search: %+v", got)
	}

	if !s.Delete("d1") {
		t.Fatal("delete failed")
	}
	if !s.Delete("d1") {
		t.Error("repeated delete must still succeed")
	}
	if _, ok := s.Get("d1"); ok {
		t.Error("expected document gone")
	}
}
