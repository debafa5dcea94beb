package batch

import (
	"context"
	"testing"

	"github.com/handiism/bulktag/internal/model"
	"github.com/handiism/bulktag/internal/store"
)

func itemWithComment(path, comment string) *model.Item {
	tags := model.NewRecord()
	tags[model.FieldComment] = comment
	return model.NewItem(path, tags)
}

func TestRenameCommentTags(t *testing.T) {
	st := store.NewMemStore()
	items := []*model.Item{
		itemWithComment("/a.mp3", "5A - 5 - mazn, slomz"),
		itemWithComment("/b.mp3", "other, tags"),
		itemWithComment("/c.mp3", ""),
	}
	seeded(st, items...)
	runner := newRunner(st)

	mapping := map[string]string{"mazn": "Nasty", "slomz": "Dark"}
	result, err := runner.RenameCommentTags(context.Background(), items, mapping)
	if err != nil {
		t.Fatalf("RenameCommentTags: %v", err)
	}

	// Only the item whose comment actually changed counts.
	if result.Attempted != 1 || result.Saved != 1 {
		t.Fatalf("result = %+v", result)
	}
	if got := st.Get("/a.mp3")[model.FieldComment]; got != "5A - 5 - Nasty, Dark" {
		t.Errorf("comment = %q, want %q", got, "5A - 5 - Nasty, Dark")
	}
	if got := st.Get("/b.mp3")[model.FieldComment]; got != "other, tags" {
		t.Errorf("untouched comment changed: %q", got)
	}

	// The action is undoable like any other batch.
	if _, ok := runner.Undo(); !ok {
		t.Fatal("expected undo entry")
	}
	if got := st.Get("/a.mp3")[model.FieldComment]; got != "5A - 5 - mazn, slomz" {
		t.Errorf("after undo comment = %q", got)
	}
}

func TestCleanCommentTags(t *testing.T) {
	st := store.NewMemStore()
	items := []*model.Item{
		itemWithComment("/a.mp3", "8A - 7 -  Dark , dark, Upper "),
		itemWithComment("/b.mp3", "already, clean"),
	}
	seeded(st, items...)
	runner := newRunner(st)

	result, err := runner.CleanCommentTags(context.Background(), items)
	if err != nil {
		t.Fatalf("CleanCommentTags: %v", err)
	}
	if result.Saved != 1 {
		t.Fatalf("result = %+v", result)
	}
	if got := st.Get("/a.mp3")[model.FieldComment]; got != "8A - 7 - Dark, Upper" {
		t.Errorf("comment = %q, want %q", got, "8A - 7 - Dark, Upper")
	}
}

func TestRenameCommentTags_NoChangesNoHistory(t *testing.T) {
	st := store.NewMemStore()
	item := itemWithComment("/a.mp3", "untouched")
	seeded(st, item)
	runner := newRunner(st)

	result, err := runner.RenameCommentTags(context.Background(), []*model.Item{item}, map[string]string{"x": "y"})
	if err != nil {
		t.Fatalf("RenameCommentTags: %v", err)
	}
	if result.Attempted != 0 || result.Saved != 0 {
		t.Errorf("result = %+v", result)
	}
	if runner.History().CanUndo() {
		t.Error("no-op action recorded history")
	}
}
