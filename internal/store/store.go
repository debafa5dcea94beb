package store

import "github.com/handiism/bulktag/internal/model"

// TagStore reads and writes the tag Record of an audio file.
//
// Implementations own the on-disk encoding; the rest of the
// application only ever sees Records. Load must return a Record with
// every recognized field present (empty string for absent tags), and
// Save must treat an empty value as "remove this tag from the file".
type TagStore interface {
	// Load reads the tag record of the file at path.
	Load(path string) (model.Record, error)

	// Save writes the tag record back to the file at path.
	Save(path string, record model.Record) error
}
