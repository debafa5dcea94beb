package history

import (
	"fmt"
	"testing"

	"github.com/handiism/bulktag/internal/model"
)

func state(path, before, after string) ItemState {
	b := model.NewRecord()
	b[model.FieldTitle] = before
	a := model.NewRecord()
	a[model.FieldTitle] = after
	return ItemState{Path: path, Before: b, After: a}
}

func TestManager_UndoRedo(t *testing.T) {
	m := NewManager(10)

	if m.CanUndo() || m.CanRedo() {
		t.Fatal("fresh manager should have nothing to undo or redo")
	}
	if _, ok := m.Undo(); ok {
		t.Error("Undo on empty manager returned ok")
	}

	m.Record("first", []ItemState{state("/a.mp3", "old", "new")})
	m.Record("second", []ItemState{state("/a.mp3", "new", "newer")})

	if !m.CanUndo() {
		t.Fatal("expected CanUndo after recording")
	}
	if got := m.UndoLabel(); got != "second" {
		t.Errorf("UndoLabel = %q, want %q", got, "second")
	}

	entry, ok := m.Undo()
	if !ok || entry.Label != "second" {
		t.Fatalf("Undo = %q, %v; want second, true", entry.Label, ok)
	}
	if entry.Items[0].Before[model.FieldTitle] != "new" {
		t.Errorf("Before = %q, want %q", entry.Items[0].Before[model.FieldTitle], "new")
	}

	if !m.CanRedo() {
		t.Fatal("expected CanRedo after undo")
	}
	if got := m.RedoLabel(); got != "second" {
		t.Errorf("RedoLabel = %q, want %q", got, "second")
	}

	entry, ok = m.Redo()
	if !ok || entry.Label != "second" {
		t.Fatalf("Redo = %q, %v; want second, true", entry.Label, ok)
	}
	if entry.Items[0].After[model.FieldTitle] != "newer" {
		t.Errorf("After = %q, want %q", entry.Items[0].After[model.FieldTitle], "newer")
	}
	if m.CanRedo() {
		t.Error("CanRedo after redoing the last entry")
	}
}

func TestManager_RecordTruncatesRedoFuture(t *testing.T) {
	m := NewManager(10)
	m.Record("first", nil)
	m.Record("second", nil)

	m.Undo()
	if !m.CanRedo() {
		t.Fatal("expected CanRedo after undo")
	}

	m.Record("third", nil)
	if m.CanRedo() {
		t.Error("recording must discard the redo future")
	}
	if got := m.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
	if got := m.UndoLabel(); got != "third" {
		t.Errorf("UndoLabel = %q, want %q", got, "third")
	}
}

func TestManager_EvictsOldestBeyondMax(t *testing.T) {
	m := NewManager(3)
	for i := 0; i < 8; i++ {
		m.Record(fmt.Sprintf("action-%d", i), nil)
	}

	if got := m.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}

	// Only the three most recent survive, newest first on undo.
	want := []string{"action-7", "action-6", "action-5"}
	for _, label := range want {
		entry, ok := m.Undo()
		if !ok || entry.Label != label {
			t.Fatalf("Undo = %q, %v; want %q, true", entry.Label, ok, label)
		}
	}
	if m.CanUndo() {
		t.Error("expected history exhausted")
	}
}

func TestManager_RecordClonesSnapshots(t *testing.T) {
	m := NewManager(10)
	st := state("/a.mp3", "old", "new")
	m.Record("edit", []ItemState{st})

	st.Before[model.FieldTitle] = "mutated"

	entry, _ := m.Undo()
	if got := entry.Items[0].Before[model.FieldTitle]; got != "old" {
		t.Errorf("stored snapshot aliased caller's map: %q", got)
	}
}

func TestNewManager_ZeroMaxFallsBack(t *testing.T) {
	m := NewManager(0)
	for i := 0; i < DefaultMaxEntries+5; i++ {
		m.Record("x", nil)
	}
	if got := m.Len(); got != DefaultMaxEntries {
		t.Errorf("Len = %d, want %d", got, DefaultMaxEntries)
	}
}
