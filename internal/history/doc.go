// Package history keeps the bounded undo/redo record of batch tag
// actions.
//
// Every batch action records one Entry holding, per touched item, a
// copy of the tag values before and after the action. Undo hands the
// before-snapshots back to the caller for restoring; redo hands back
// the after-snapshots. Recording a new action while the position is
// not at the head discards the undone future.
//
// History lives in memory for the duration of a session and is not
// persisted.
package history
