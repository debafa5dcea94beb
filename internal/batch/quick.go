package batch

import (
	"context"
	"fmt"

	"github.com/handiism/bulktag/internal/comment"
	"github.com/handiism/bulktag/internal/history"
	"github.com/handiism/bulktag/internal/model"
)

// RenameCommentTags rewrites the comment field of every item by
// decoding its composite value, renaming tags per mapping
// (case-insensitive whole-tag match) and re-encoding. The key and
// rating segments survive untouched.
//
// Items whose comment does not change are left alone; changed items
// are saved and recorded as one history entry.
//
// Example:
//
//	result, err := runner.RenameCommentTags(ctx, items, map[string]string{
//	    "mazn":  "Nasty",
//	    "slomz": "Dark",
//	})
func (r *Runner) RenameCommentTags(ctx context.Context, items []*model.Item, mapping map[string]string) (RunResult, error) {
	label := fmt.Sprintf("Renamed comment tags (%d mapping(s))", len(mapping))
	return r.runCommentEdit(ctx, items, label, func(c comment.Composite) comment.Composite {
		c.Tags = comment.Rename(c.Tags, mapping)
		return c
	})
}

// CleanCommentTags trims and deduplicates the comment tag list of
// every item, preserving the key and rating segments.
func (r *Runner) CleanCommentTags(ctx context.Context, items []*model.Item) (RunResult, error) {
	return r.runCommentEdit(ctx, items, "Cleaned comment tags", func(c comment.Composite) comment.Composite {
		c.Tags = comment.Dedupe(comment.Clean(c.Tags))
		return c
	})
}

// runCommentEdit applies a composite-value edit to every item's
// comment field with the same snapshot/save/history discipline as
// Run.
func (r *Runner) runCommentEdit(ctx context.Context, items []*model.Item, label string, edit func(comment.Composite) comment.Composite) (RunResult, error) {
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

		decoded := comment.Decode(item.Tags[model.FieldComment])
		encoded := edit(decoded).Encode()
		if encoded == item.Tags[model.FieldComment] {
			continue
		}

		result.Attempted++
		before := item.Snapshot()
		item.Tags[model.FieldComment] = encoded

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
			Message: fmt.Sprintf("Updated comment of %s", item.Filename),
			Level:   LevelVerbose,
		})
	}

	r.progress(ProgressEvent{
		Message: fmt.Sprintf("%s: %d file(s) changed", label, result.Saved),
		Level:   LevelSuccess,
	})
	return result, nil
}
