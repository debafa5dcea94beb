// Package ops implements the tag transformation pipeline: seven
// parameterized text operations applied to a Record in a fixed order.
//
// # Operations
//
// Replace, Trim, Copy, Recase, Affix, Remove and Split each transform
// zero or more fields of a Record. Every operation follows the same
// "skip, don't fail" policy: a missing field or empty required
// parameter yields a skipped Result instead of an error, and an
// invalid regex pattern skips just that operation for that record.
//
// # Pipeline
//
// Config holds at most one descriptor per kind; Apply runs the enabled
// ones in the fixed kind order on a private copy of the input:
//
//	cfg := ops.Config{
//	    Replace: &ops.Replace{Field: model.FieldTitle, Find: "Live", With: ""},
//	    Trim:    &ops.Trim{Field: ops.AllFields, Leading: true, Trailing: true},
//	}
//	out, results := cfg.Apply(record)
//
// Later operations observe the effects of earlier ones within the same
// run, so a Replace can rewrite a value that Copy then duplicates.
package ops
