package history

import (
	"time"

	"github.com/handiism/bulktag/internal/model"
)

// DefaultMaxEntries bounds the history when no explicit limit is
// given.
const DefaultMaxEntries = 50

// ItemState captures one item's tag values around a batch action.
type ItemState struct {
	// Path identifies the item the snapshots belong to.
	Path string

	// Before is the item's Record as it was before the action ran.
	Before model.Record

	// After is the Record that was persisted by the action. Storing
	// it alongside Before is what makes redo well-defined: undo
	// restores Before, redo restores After.
	After model.Record
}

// Entry is one undoable batch action.
type Entry struct {
	// Label describes the action for display ("Applied 3 operation(s)
	// to 12 file(s)").
	Label string

	// Time is when the action was recorded.
	Time time.Time

	// Items holds the per-item before/after snapshots, in the order
	// the items were processed.
	Items []ItemState
}

// Manager keeps a bounded, linear undo/redo history of batch actions.
//
// The manager is position-based: Record appends at the current
// position, discarding any entries after it (an undone "future" is
// destroyed by new work, there is no branching). Undo and Redo move
// the position and hand the relevant entry back to the caller, who is
// responsible for pushing the snapshots through the tag store.
//
// Manager is not safe for concurrent use; the batch runner and UI
// share it from a single goroutine.
//
// Example:
//
//	h := history.NewManager(50)
//	h.Record("Applied operations", states)
//	if entry, ok := h.Undo(); ok {
//	    // restore entry.Items[i].Before via the store
//	}
type Manager struct {
	max      int
	entries  []Entry
	position int
}

// NewManager creates a Manager bounded to max entries. A max of zero
// or less falls back to DefaultMaxEntries.
func NewManager(max int) *Manager {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Manager{max: max, position: -1}
}

// Record appends a new action.
//
// Any entries after the current position (the redo future) are
// discarded first. When the bound is exceeded the oldest entry is
// evicted and the position adjusted, so the most recent max entries
// always survive.
func (m *Manager) Record(label string, items []ItemState) {
	m.entries = m.entries[:m.position+1]

	snapshots := make([]ItemState, len(items))
	for i, it := range items {
		snapshots[i] = ItemState{
			Path:   it.Path,
			Before: it.Before.Clone(),
			After:  it.After.Clone(),
		}
	}

	m.entries = append(m.entries, Entry{
		Label: label,
		Time:  time.Now(),
		Items: snapshots,
	})

	if len(m.entries) > m.max {
		m.entries = m.entries[1:]
	} else {
		m.position++
	}
}

// CanUndo reports whether there is an action to undo.
func (m *Manager) CanUndo() bool {
	return m.position >= 0
}

// CanRedo reports whether there is an undone action to redo.
func (m *Manager) CanRedo() bool {
	return m.position < len(m.entries)-1
}

// Undo returns the entry at the current position and steps back.
// The second return value is false when there is nothing to undo.
//
// The caller restores each item's Before snapshot.
func (m *Manager) Undo() (Entry, bool) {
	if !m.CanUndo() {
		return Entry{}, false
	}
	entry := m.entries[m.position]
	m.position--
	return entry, true
}

// Redo advances the position and returns the entry now at it. The
// second return value is false when there is nothing to redo.
//
// The caller restores each item's After snapshot.
func (m *Manager) Redo() (Entry, bool) {
	if !m.CanRedo() {
		return Entry{}, false
	}
	m.position++
	return m.entries[m.position], true
}

// UndoLabel returns the label of the action Undo would return, or ""
// when undo is unavailable.
func (m *Manager) UndoLabel() string {
	if !m.CanUndo() {
		return ""
	}
	return m.entries[m.position].Label
}

// RedoLabel returns the label of the action Redo would return, or ""
// when redo is unavailable.
func (m *Manager) RedoLabel() string {
	if !m.CanRedo() {
		return ""
	}
	return m.entries[m.position+1].Label
}

// Len returns the number of entries currently held.
func (m *Manager) Len() int {
	return len(m.entries)
}
