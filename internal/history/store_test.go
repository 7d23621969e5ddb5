package history

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestVisitsDedupedByPathNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for _, p := range []string{"root.a", "root.b", "root.a"} {
		if err := s.RecordVisit(ctx, p, "int"); err != nil {
			t.Fatalf("record %s: %v", p, err)
		}
	}
	visits, err := s.RecentVisits(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(visits) != 2 {
		t.Fatalf("visit count = %d, want 2 distinct paths", len(visits))
	}
	seen := map[string]bool{}
	for _, v := range visits {
		seen[v.Path] = true
		if v.SessionID != s.SessionID() {
			t.Errorf("visit %s has session %q, want %q", v.Path, v.SessionID, s.SessionID())
		}
	}
	if !seen["root.a"] || !seen["root.b"] {
		t.Fatalf("paths = %v", seen)
	}
}

func TestRecentVisitsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for _, p := range []string{"root.a", "root.b", "root.c"} {
		if err := s.RecordVisit(ctx, p, ""); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	visits, err := s.RecentVisits(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(visits) != 2 {
		t.Fatalf("limit ignored: %d rows", len(visits))
	}
}

func TestBookmarkRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.AddBookmark(ctx, "root.cfg.Timeout", "timeout"); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Re-adding the same path replaces the label instead of duplicating.
	if err := s.AddBookmark(ctx, "root.cfg.Timeout", "request timeout"); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	marks, err := s.Bookmarks(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(marks) != 1 {
		t.Fatalf("bookmark count = %d, want 1", len(marks))
	}
	if marks[0].Label != "request timeout" {
		t.Errorf("label = %q", marks[0].Label)
	}
	if err := s.RemoveBookmark(ctx, "root.cfg.Timeout"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	marks, err = s.Bookmarks(ctx)
	if err != nil {
		t.Fatalf("relist: %v", err)
	}
	if len(marks) != 0 {
		t.Fatalf("bookmark not removed: %v", marks)
	}
}

func TestOpenIsIdempotentOnSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	first.Close()
	second, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	second.Close()
}
