package batch

import (
	"context"
	"fmt"

	"github.com/handiism/bulktag/internal/history"
	"github.com/handiism/bulktag/internal/model"
	"github.com/handiism/bulktag/internal/ops"
	"github.com/handiism/bulktag/internal/store"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a batch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// ItemError records one item whose store operation failed.
type ItemError struct {
	Path string
	Err  error
}

// RunResult summarizes one batch action.
type RunResult struct {
	// Attempted is the number of items the pipeline ran against.
	Attempted int

	// Saved is the number of items whose save succeeded.
	Saved int

	// Failures holds the per-item save errors. One item's failure
	// never blocks the rest of the batch.
	Failures []ItemError
}

// Runner applies pipeline configurations to sets of items, persists
// the results through the tag store and feeds the undo history.
//
// Items are processed strictly in order, one at a time; the only
// concurrency in the application lives in the scanner. Cancellation
// is cooperative and checked between items, never mid-item.
//
// Example:
//
//	runner := batch.NewRunner(st, hist, func(ev batch.ProgressEvent) {
//	    fmt.Println(ev.Message)
//	})
//	result, err := runner.Run(ctx, batch.Selected(items), cfg, "Applied cleanup preset")
type Runner struct {
	store      store.TagStore
	history    *history.Manager
	onProgress func(ProgressEvent)
}

// NewRunner creates a Runner. onProgress may be nil.
func NewRunner(st store.TagStore, hist *history.Manager, onProgress func(ProgressEvent)) *Runner {
	return &Runner{store: st, history: hist, onProgress: onProgress}
}

// Selected filters items down to the ones marked selected.
func Selected(items []*model.Item) []*model.Item {
	var out []*model.Item
	for _, item := range items {
		if item.Selected {
			out = append(out, item)
		}
	}
	return out
}

// Run applies cfg to every given item and saves the results.
//
// Per item: capture the pre-image, run the pipeline on it, update the
// item's in-memory tags and attempt a store save. Save failures are
// recorded per item and do not stop the batch. After the batch, one
// history entry is recorded covering exactly the items whose save
// succeeded, so undo never claims to restore a state that was never
// persisted. A batch in which nothing saved records no entry.
//
// Run returns early with ctx.Err() when cancelled between items; work
// already saved stays saved and is still recorded in history.
func (r *Runner) Run(ctx context.Context, items []*model.Item, cfg ops.Config, label string) (RunResult, error) {
	var result RunResult
	var states []history.ItemState

	defer func() {
		if result.Saved > 0 {
			r.history.Record(label, states)
		}
	}()

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Attempted++
		before := item.Snapshot()

		after, opResults := cfg.Apply(item.Tags)
		for _, skip := range ops.Skips(opResults) {
			r.progress(ProgressEvent{
				Message: fmt.Sprintf("Skipped %s for %s: %s", skip.Kind, item.Filename, skip.Reason),
				Level:   LevelWarning,
			})
		}

		item.Tags = after
		if err := r.store.Save(item.Path, item.Tags); err != nil {
			result.Failures = append(result.Failures, ItemError{Path: item.Path, Err: err})
			r.progress(ProgressEvent{
				Message: fmt.Sprintf("Error saving %s: %v", item.Filename, err),
				Level:   LevelError,
			})
			continue
		}

		item.MarkSaved()
		result.Saved++
		states = append(states, history.ItemState{Path: item.Path, Before: before, After: item.Snapshot()})
		r.progress(ProgressEvent{
			Message: fmt.Sprintf("Updated %s", item.Filename),
			Level:   LevelVerbose,
		})
	}

	r.progress(ProgressEvent{
		Message: fmt.Sprintf("Updated %d/%d file(s)", result.Saved, result.Attempted),
		Level:   LevelSuccess,
	})
	return result, nil
}

// Preview runs the pipeline against the item's tags and returns the
// would-be result without saving anything or mutating the item.
func (r *Runner) Preview(item *model.Item, cfg ops.Config) (model.Record, []ops.Result) {
	return cfg.Apply(item.Tags)
}

// Undo pops the most recent history entry and writes every item's
// pre-action snapshot back through the store. The in-memory items are
// the caller's to resync from the returned entry.
//
// Per-item save failures during restore are reported as warnings and
// do not stop the remaining restores. The bool is false when there is
// nothing to undo.
func (r *Runner) Undo() (history.Entry, bool) {
	entry, ok := r.history.Undo()
	if !ok {
		return history.Entry{}, false
	}
	r.restore(entry, func(st history.ItemState) model.Record { return st.Before })
	r.progress(ProgressEvent{Message: "Undone: " + entry.Label, Level: LevelSuccess})
	return entry, true
}

// Redo re-applies the most recently undone entry by writing every
// item's post-action snapshot back through the store. The bool is
// false when there is nothing to redo.
func (r *Runner) Redo() (history.Entry, bool) {
	entry, ok := r.history.Redo()
	if !ok {
		return history.Entry{}, false
	}
	r.restore(entry, func(st history.ItemState) model.Record { return st.After })
	r.progress(ProgressEvent{Message: "Redone: " + entry.Label, Level: LevelSuccess})
	return entry, true
}

func (r *Runner) restore(entry history.Entry, pick func(history.ItemState) model.Record) {
	for _, st := range entry.Items {
		if err := r.store.Save(st.Path, pick(st)); err != nil {
			r.progress(ProgressEvent{
				Message: fmt.Sprintf("Error restoring %s: %v", st.Path, err),
				Level:   LevelWarning,
			})
		}
	}
}

// History exposes the underlying history manager for UI state (can
// undo/redo, labels).
func (r *Runner) History() *history.Manager {
	return r.history
}

func (r *Runner) progress(event ProgressEvent) {
	if r.onProgress != nil {
		r.onProgress(event)
	}
}
