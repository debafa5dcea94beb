package model

import (
	"fmt"
	"path/filepath"
)

// Item represents one audio file under edit.
//
// Item pairs the file's location with its in-memory tag Record and the
// Record as it looked when the file was loaded. The two diverge while
// edits are pending and converge again after a successful save.
//
// Example:
//
//	item := model.NewItem("/music/track.mp3", tags)
//	item.Tags[model.FieldTitle] = "New Title"
//	fmt.Println(item.Modified()) // true
type Item struct {
	// Path is the absolute path of the audio file.
	Path string

	// Filename is the base name of Path, kept for display.
	Filename string

	// Selected marks the item for inclusion in the next batch action.
	// Newly scanned items start selected.
	Selected bool

	// Duration is the track length in seconds, when the store could
	// determine it. Zero means unknown.
	Duration float64

	// Tags holds the current (possibly edited, not yet saved) values.
	Tags Record

	// Original holds the values as loaded from the file. Updated to
	// match Tags after every successful save.
	Original Record
}

// NewItem creates an Item for the file at path with its loaded tags.
//
// The tags Record is cloned into both Tags and Original so the Item
// never aliases the caller's map.
func NewItem(path string, tags Record) *Item {
	if tags == nil {
		tags = NewRecord()
	}
	return &Item{
		Path:     path,
		Filename: filepath.Base(path),
		Selected: true,
		Tags:     tags.Clone(),
		Original: tags.Clone(),
	}
}

// Modified reports whether the in-memory tags differ from the values
// loaded from (or last saved to) the file.
func (i *Item) Modified() bool {
	return !i.Tags.Equal(i.Original)
}

// Snapshot returns an independent copy of the current tag values,
// suitable for capture into undo history.
func (i *Item) Snapshot() Record {
	return i.Tags.Clone()
}

// Restore replaces the current tag values with a copy of snap.
func (i *Item) Restore(snap Record) {
	i.Tags = snap.Clone()
}

// MarkSaved records that the current tags have been persisted, so
// Modified reports false until the next edit.
func (i *Item) MarkSaved() {
	i.Original = i.Tags.Clone()
}

// DisplayName returns a one-line label for file lists: the filename,
// followed by artist and title when either is present.
func (i *Item) DisplayName() string {
	artist := i.Tags[FieldArtist]
	title := i.Tags[FieldTitle]
	if artist == "" && title == "" {
		return i.Filename
	}
	return fmt.Sprintf("%s - %s - %s", i.Filename, artist, title)
}

// FormatDuration renders the duration as M:SS, or "0:00" when unknown.
func (i *Item) FormatDuration() string {
	if i.Duration <= 0 {
		return "0:00"
	}
	mins := int(i.Duration) / 60
	secs := int(i.Duration) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
