package model

import "sort"

// Field identifies one recognized tag field of an audio file.
//
// The field set is a closed enumeration: operations address fields by
// these values only, and anything outside the set is ignored rather
// than invented on the fly. This mirrors the behavior of tag editors
// that silently skip unknown fields instead of failing.
type Field string

// The recognized tag fields. The declaration order is the canonical
// display order used by previews and reports.
const (
	FieldTitle       Field = "title"
	FieldArtist      Field = "artist"
	FieldAlbum       Field = "album"
	FieldAlbumArtist Field = "albumartist"
	FieldComposer    Field = "composer"
	FieldConductor   Field = "conductor"
	FieldGenre       Field = "genre"
	FieldDate        Field = "date"
	FieldComment     Field = "comment"
	FieldBPM         Field = "bpm"
	FieldKey         Field = "key"
	FieldMood        Field = "mood"
	FieldLyricist    Field = "lyricist"
	FieldRemixer     Field = "remixer"
	FieldLabel       Field = "label"
	FieldISRC        Field = "isrc"
	FieldCopyright   Field = "copyright"
)

var fieldOrder = []Field{
	FieldTitle, FieldArtist, FieldAlbum, FieldAlbumArtist, FieldComposer,
	FieldConductor, FieldGenre, FieldDate, FieldComment, FieldBPM,
	FieldKey, FieldMood, FieldLyricist, FieldRemixer, FieldLabel,
	FieldISRC, FieldCopyright,
}

var fieldSet = func() map[Field]bool {
	m := make(map[Field]bool, len(fieldOrder))
	for _, f := range fieldOrder {
		m[f] = true
	}
	return m
}()

// Fields returns the recognized tag fields in canonical order.
//
// The returned slice is a copy; callers may modify it freely.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// IsField reports whether name is a recognized tag field.
//
// Example:
//
//	model.IsField("title")  // true
//	model.IsField("titel")  // false
func IsField(name string) bool {
	return fieldSet[Field(name)]
}

// Record holds the tag values of one audio file, keyed by Field.
//
// A loaded Record always contains every recognized field; the empty
// string stands for "tag not present in the file". Records are plain
// values with no aliasing guarantees, so any component that stores one
// for later (snapshots, previews) must take a Clone first.
type Record map[Field]string

// NewRecord returns a Record with every recognized field present and
// set to the empty string.
func NewRecord() Record {
	r := make(Record, len(fieldOrder))
	for _, f := range fieldOrder {
		r[f] = ""
	}
	return r
}

// Clone returns an independent copy of the Record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Equal reports whether two Records hold identical values for every
// field present in either.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for k, v := range r {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// FieldChange describes one field whose value differs between two
// Records. Used by previews and change reports.
type FieldChange struct {
	Field  Field
	Before string
	After  string
}

// Diff returns the fields whose values changed between r (before) and
// after, in canonical field order. Fields unknown to the enumeration
// are appended last in lexical order so nothing is silently dropped.
func (r Record) Diff(after Record) []FieldChange {
	var changes []FieldChange
	for _, f := range fieldOrder {
		if r[f] != after[f] {
			changes = append(changes, FieldChange{Field: f, Before: r[f], After: after[f]})
		}
	}

	var extra []Field
	for k := range after {
		if !fieldSet[k] && r[k] != after[k] {
			extra = append(extra, k)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, f := range extra {
		changes = append(changes, FieldChange{Field: f, Before: r[f], After: after[f]})
	}

	return changes
}
