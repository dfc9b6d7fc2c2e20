package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"hidden_piece/story"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "hidden_piece.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	data, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data != nil {
		t.Fatalf("data = %q; want nil", data)
	}
	if _, ok, err := s.UpdatedAt(context.Background()); err != nil || ok {
		t.Fatalf("UpdatedAt ok=%v err=%v; want nothing saved", ok, err)
	}
}

func TestSaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	if err := s.Save(ctx, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `{"a":2}` {
		t.Fatalf("data = %s; want latest snapshot", data)
	}
	at, ok, err := s.UpdatedAt(ctx)
	if err != nil || !ok || !at.Equal(fixed) {
		t.Fatalf("UpdatedAt = %v, %v, %v; want %v", at, ok, err, fixed)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if data, _ := s.Load(ctx); data != nil {
		t.Fatalf("data after clear = %s", data)
	}
}

func TestGameSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "hidden_piece.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	store := story.Open(ctx, first)
	store.SetStage(story.Stage3)
	store.AddInventoryItem(story.ToolTimer)
	store.AdjustStat(story.Patience, 15)
	want := store.State()
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	got := story.Open(ctx, second).State()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("state after reopen = %+v; want %+v", got, want)
	}
}
