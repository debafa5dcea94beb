package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/bulktag/internal/model"
	"github.com/handiism/bulktag/internal/store"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func seed(st *store.MemStore, path, title string) {
	tags := model.NewRecord()
	tags[model.FieldTitle] = title
	st.Put(path, tags)
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	paths := []string{
		filepath.Join(root, "b.mp3"),
		filepath.Join(root, "a.MP3"),
		filepath.Join(root, "sub", "c.mp3"),
	}
	for _, p := range paths {
		touch(t, p)
	}
	touch(t, filepath.Join(root, "cover.jpg"))
	touch(t, filepath.Join(root, "notes.txt"))

	st := store.NewMemStore()
	for i, p := range paths {
		seed(st, p, string(rune('A'+i)))
	}

	sc := NewScanner(st, []string{".mp3"}, 4)
	items, failures, err := sc.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(failures) != 0 {
		t.Fatalf("failures = %v", failures)
	}
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}

	// Deterministic sorted path order, extension matched case
	// insensitively.
	want := []string{
		filepath.Join(root, "a.MP3"),
		filepath.Join(root, "b.mp3"),
		filepath.Join(root, "sub", "c.mp3"),
	}
	for i, item := range items {
		if item.Path != want[i] {
			t.Errorf("items[%d].Path = %q, want %q", i, item.Path, want[i])
		}
	}
}

func TestScanner_Scan_LoadFailureIsolated(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "good.mp3")
	bad := filepath.Join(root, "bad.mp3")
	touch(t, good)
	touch(t, bad)

	st := store.NewMemStore()
	seed(st, good, "Good")
	seed(st, bad, "Bad")
	st.FailLoad(bad)

	sc := NewScanner(st, []string{".mp3"}, 2)
	items, failures, err := sc.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(items) != 1 || items[0].Path != good {
		t.Errorf("items = %v", items)
	}
	if len(failures) != 1 || failures[0].Path != bad {
		t.Errorf("failures = %v", failures)
	}
}

func TestScanner_Scan_MissingRoot(t *testing.T) {
	st := store.NewMemStore()
	sc := NewScanner(st, []string{".mp3"}, 2)

	if _, _, err := sc.Scan(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestScanner_Scan_Cancelled(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.mp3"))

	st := store.NewMemStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc := NewScanner(st, []string{".mp3"}, 2)
	if _, _, err := sc.Scan(ctx, root); err == nil {
		t.Error("expected context error")
	}
}
