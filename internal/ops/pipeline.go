package ops

import "github.com/handiism/bulktag/internal/model"

// Config is an immutable pipeline configuration: one optional
// descriptor per operation kind. A nil descriptor means the kind is
// disabled for this run.
//
// The configuration is a plain value handed to Apply; transformation
// logic never reads shared state.
//
// Example:
//
//	cfg := ops.Config{
//	    Trim:   &ops.Trim{Field: model.FieldTitle, Leading: true, Trailing: true},
//	    Recase: &ops.Recase{Field: model.FieldTitle, Mode: ops.CaseTitle},
//	}
//	result, results := cfg.Apply(record)
type Config struct {
	Replace *Replace
	Trim    *Trim
	Copy    *Copy
	Recase  *Recase
	Affix   *Affix
	Remove  *Remove
	Split   *Split
}

// Enabled returns the number of enabled operations.
func (c Config) Enabled() int {
	n := 0
	if c.Replace != nil {
		n++
	}
	if c.Trim != nil {
		n++
	}
	if c.Copy != nil {
		n++
	}
	if c.Recase != nil {
		n++
	}
	if c.Affix != nil {
		n++
	}
	if c.Remove != nil {
		n++
	}
	if c.Split != nil {
		n++
	}
	return n
}

// Apply runs the enabled operations against a private copy of record
// and returns the transformed copy together with one Result per
// enabled operation.
//
// Operations always run in the fixed kind order Replace, Trim, Copy,
// Recase, Affix, Remove, Split; each sees the cumulative effect of the
// ones before it. The input record is never mutated, which is what
// makes preview mode safe: run Apply and discard the result.
func (c Config) Apply(record model.Record) (model.Record, []Result) {
	out := record.Clone()
	var results []Result

	if c.Replace != nil {
		results = append(results, c.Replace.apply(out))
	}
	if c.Trim != nil {
		results = append(results, c.Trim.apply(out))
	}
	if c.Copy != nil {
		results = append(results, c.Copy.apply(out))
	}
	if c.Recase != nil {
		results = append(results, c.Recase.apply(out))
	}
	if c.Affix != nil {
		results = append(results, c.Affix.apply(out))
	}
	if c.Remove != nil {
		results = append(results, c.Remove.apply(out))
	}
	if c.Split != nil {
		results = append(results, c.Split.apply(out))
	}

	return out, results
}

// Skips filters results down to the skipped ones. Handy for surfacing
// skip reasons as warnings after a batch.
func Skips(results []Result) []Result {
	var out []Result
	for _, res := range results {
		if res.Status == StatusSkipped {
			out = append(out, res)
		}
	}
	return out
}
