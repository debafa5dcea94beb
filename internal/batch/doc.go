// Package batch orchestrates tag edits across sets of items.
//
// # Runner
//
// The Runner ties the pipeline, the tag store and the undo history
// together:
//
//  1. Capture each item's pre-image
//  2. Apply the pipeline configuration
//  3. Save through the TagStore (per-item failures isolate)
//  4. Record one history entry for the items that saved
//
// Progress is reported through a leveled callback, rendered by the
// CLI and TUI in their own styles:
//
//	runner := batch.NewRunner(st, hist, func(ev batch.ProgressEvent) {
//	    fmt.Println(ev.Message)
//	})
//
// # Quick actions
//
// RenameCommentTags and CleanCommentTags edit the decoded composite
// comment value directly, for the common migration chores that don't
// warrant a full pipeline configuration.
//
// # Preview
//
// Preview runs the pipeline without saving or mutating anything;
// PreviewReport renders the would-be changes.
package batch
