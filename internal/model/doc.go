// Package model defines the core data structures used throughout
// the bulktag application.
//
// # Record
//
// Record maps a closed set of tag fields to string values. Every
// recognized field is always present in a loaded Record, with the
// empty string standing for "tag absent":
//
//	r := model.NewRecord()
//	r[model.FieldTitle] = "My Song"
//
// # Item
//
// Item represents one audio file under edit, carrying both its current
// and originally loaded tag values:
//
//	item := model.NewItem("/music/track.mp3", tags)
//	item.Modified() // tags changed since load/save?
//
// # Ownership
//
// Records are never shared between components. Snapshot, Restore and
// NewItem all copy, so undo history and previews stay immune to later
// edits.
package model
