package model

import "testing"

func TestNewRecord_AllFieldsPresent(t *testing.T) {
	r := NewRecord()
	if len(r) != len(Fields()) {
		t.Fatalf("len = %d, want %d", len(r), len(Fields()))
	}
	for _, f := range Fields() {
		if v, ok := r[f]; !ok || v != "" {
			t.Errorf("field %q = %q, %v; want empty and present", f, v, ok)
		}
	}
}

func TestIsField(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"title", true},
		{"albumartist", true},
		{"copyright", true},
		{"titel", false},
		{"ALL FIELDS", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsField(tt.name); got != tt.want {
			t.Errorf("IsField(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRecord_Clone(t *testing.T) {
	r := NewRecord()
	r[FieldTitle] = "Song"

	clone := r.Clone()
	clone[FieldTitle] = "Changed"

	if r[FieldTitle] != "Song" {
		t.Errorf("clone aliased original: %q", r[FieldTitle])
	}
}

func TestRecord_Diff(t *testing.T) {
	before := NewRecord()
	before[FieldTitle] = "  my Song "
	before[FieldComment] = "5A - 5 - mazn"

	after := before.Clone()
	after[FieldTitle] = "My Song"
	after[FieldComment] = "5A - 5 - Nasty"

	changes := before.Diff(after)
	if len(changes) != 2 {
		t.Fatalf("changes = %d, want 2", len(changes))
	}

	// Canonical order: title before comment.
	if changes[0].Field != FieldTitle || changes[1].Field != FieldComment {
		t.Errorf("order = %v, %v; want title then comment", changes[0].Field, changes[1].Field)
	}
	if changes[0].Before != "  my Song " || changes[0].After != "My Song" {
		t.Errorf("title change = %+v", changes[0])
	}
}

func TestRecord_DiffIdentical(t *testing.T) {
	r := NewRecord()
	r[FieldTitle] = "Song"
	if changes := r.Diff(r.Clone()); len(changes) != 0 {
		t.Errorf("changes = %v, want none", changes)
	}
}

func TestItem_ModifiedAndSave(t *testing.T) {
	tags := NewRecord()
	tags[FieldTitle] = "Song"
	item := NewItem("/music/a.mp3", tags)

	if item.Modified() {
		t.Error("fresh item reports modified")
	}
	if !item.Selected {
		t.Error("fresh item should start selected")
	}

	item.Tags[FieldTitle] = "New Song"
	if !item.Modified() {
		t.Error("edited item reports unmodified")
	}

	item.MarkSaved()
	if item.Modified() {
		t.Error("saved item reports modified")
	}
}

func TestItem_SnapshotRestore(t *testing.T) {
	tags := NewRecord()
	tags[FieldTitle] = "Original"
	item := NewItem("/music/a.mp3", tags)

	snap := item.Snapshot()
	item.Tags[FieldTitle] = "Edited"

	// The snapshot must not see the later edit.
	if snap[FieldTitle] != "Original" {
		t.Fatalf("snapshot aliased live tags: %q", snap[FieldTitle])
	}

	item.Restore(snap)
	if item.Tags[FieldTitle] != "Original" {
		t.Errorf("title after restore = %q, want %q", item.Tags[FieldTitle], "Original")
	}
}

func TestItem_NewItemDoesNotAliasInput(t *testing.T) {
	tags := NewRecord()
	tags[FieldTitle] = "Song"
	item := NewItem("/music/a.mp3", tags)

	tags[FieldTitle] = "Changed"
	if item.Tags[FieldTitle] != "Song" {
		t.Errorf("item aliased caller's map: %q", item.Tags[FieldTitle])
	}
}

func TestItem_DisplayName(t *testing.T) {
	tags := NewRecord()
	tags[FieldArtist] = "Artist"
	tags[FieldTitle] = "Title"
	item := NewItem("/music/01 track.mp3", tags)

	if got, want := item.DisplayName(), "01 track.mp3 - Artist - Title"; got != want {
		t.Errorf("DisplayName = %q, want %q", got, want)
	}

	bare := NewItem("/music/02 track.mp3", NewRecord())
	if got, want := bare.DisplayName(), "02 track.mp3"; got != want {
		t.Errorf("DisplayName = %q, want %q", got, want)
	}
}

func TestItem_FormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{61.4, "1:01"},
		{754, "12:34"},
	}
	for _, tt := range tests {
		item := &Item{Duration: tt.seconds}
		if got := item.FormatDuration(); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
