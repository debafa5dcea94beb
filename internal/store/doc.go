// Package store persists tag records to audio files.
//
// # TagStore
//
// TagStore is the contract the rest of the application depends on:
// Load a Record, Save a Record, nothing else. The batch runner, the
// scanner and the UIs are all written against the interface.
//
// # ID3Store
//
// ID3Store implements TagStore for MP3 files using ID3v2 frames:
//
//	st := store.NewID3Store(false)
//	record, _ := st.Load(path)
//	record[model.FieldGenre] = "Techno"
//	_ = st.Save(path, record)
//
// Only mapped frames are rewritten; everything else in the file's tag
// (pictures, unknown frames) passes through a save untouched.
//
// # MemStore
//
// MemStore keeps records in memory with the same copy semantics and
// primed-failure hooks for tests.
package store
