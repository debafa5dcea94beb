package ops

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/handiism/bulktag/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies one operation kind. The declaration order is the
// fixed order in which enabled operations run within a pipeline,
// independent of the order in which the user enabled them.
type Kind int

const (
	KindReplace Kind = iota
	KindTrim
	KindCopy
	KindRecase
	KindAffix
	KindRemove
	KindSplit
)

// String returns the kind's name as used in preset documents.
func (k Kind) String() string {
	switch k {
	case KindReplace:
		return "replace"
	case KindTrim:
		return "trim"
	case KindCopy:
		return "copy"
	case KindRecase:
		return "case"
	case KindAffix:
		return "add"
	case KindRemove:
		return "remove"
	case KindSplit:
		return "split"
	}
	return "unknown"
}

// AllFields is the field selector that makes Trim apply to every
// recognized field instead of a single one.
const AllFields = model.Field("ALL FIELDS")

// Status reports how an operation fared for one record.
type Status int

const (
	// StatusApplied means the operation ran. It may still have left
	// the record unchanged (e.g. no match found).
	StatusApplied Status = iota

	// StatusSkipped means the operation did not run for this record:
	// a referenced field was absent, a required parameter was empty,
	// or a regex pattern failed to compile. Skips are deliberate and
	// never abort the pipeline.
	StatusSkipped
)

// Result describes the outcome of one operation on one record.
type Result struct {
	Kind   Kind
	Status Status

	// Reason explains a skip; empty for applied operations.
	Reason string
}

func applied(k Kind) Result {
	return Result{Kind: k, Status: StatusApplied}
}

func skipped(k Kind, reason string) Result {
	return Result{Kind: k, Status: StatusSkipped, Reason: reason}
}

// has reports whether the record carries field f.
func has(r model.Record, f model.Field) bool {
	_, ok := r[f]
	return ok
}

// Replace substitutes text within one field.
//
// With Regex set, Find is compiled as a regular expression and every
// match is replaced (case-insensitively unless CaseSensitive is set).
// Otherwise Find is treated literally; the case-insensitive literal
// mode escapes the text and matches ignoring case.
type Replace struct {
	Field         model.Field
	Find          string
	With          string
	CaseSensitive bool
	Regex         bool
}

func (o Replace) apply(r model.Record) Result {
	if !has(r, o.Field) {
		return skipped(KindReplace, "field not present: "+string(o.Field))
	}
	if o.Find == "" {
		return skipped(KindReplace, "empty find text")
	}

	value := r[o.Field]

	if o.Regex {
		pattern := o.Find
		if !o.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return skipped(KindReplace, "invalid pattern: "+err.Error())
		}
		r[o.Field] = re.ReplaceAllString(value, o.With)
		return applied(KindReplace)
	}

	if o.CaseSensitive {
		r[o.Field] = strings.ReplaceAll(value, o.Find, o.With)
		return applied(KindReplace)
	}

	// Escaped literal, so this compile cannot fail.
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(o.Find))
	r[o.Field] = re.ReplaceAllLiteralString(value, o.With)
	return applied(KindReplace)
}

// Trim strips leading and/or trailing whitespace from one field, or
// from every field when Field is AllFields.
type Trim struct {
	Field    model.Field
	Leading  bool
	Trailing bool
}

func (o Trim) apply(r model.Record) Result {
	var fields []model.Field
	if o.Field == AllFields {
		for f := range r {
			fields = append(fields, f)
		}
	} else {
		if !has(r, o.Field) {
			return skipped(KindTrim, "field not present: "+string(o.Field))
		}
		fields = []model.Field{o.Field}
	}

	for _, f := range fields {
		value := r[f]
		if o.Leading {
			value = strings.TrimLeftFunc(value, unicode.IsSpace)
		}
		if o.Trailing {
			value = strings.TrimRightFunc(value, unicode.IsSpace)
		}
		r[f] = value
	}
	return applied(KindTrim)
}

// Copy duplicates the value of one field into another.
//
// With Append set and a non-empty destination, the source value is
// appended after a single space; otherwise the destination is
// overwritten. Overwrite semantics apply even when the source value is
// empty.
type Copy struct {
	From   model.Field
	To     model.Field
	Append bool
}

func (o Copy) apply(r model.Record) Result {
	if !has(r, o.From) {
		return skipped(KindCopy, "source field not present: "+string(o.From))
	}
	if !has(r, o.To) {
		return skipped(KindCopy, "destination field not present: "+string(o.To))
	}

	source := r[o.From]
	if o.Append && r[o.To] != "" {
		r[o.To] = r[o.To] + " " + source
	} else {
		r[o.To] = source
	}
	return applied(KindCopy)
}

// CaseMode selects the Recase transformation.
type CaseMode string

const (
	// CaseTitle capitalizes the first letter of every word.
	CaseTitle CaseMode = "title"

	// CaseUpper folds the whole value to upper case.
	CaseUpper CaseMode = "upper"

	// CaseLower folds the whole value to lower case.
	CaseLower CaseMode = "lower"

	// CaseSentence capitalizes only the first character of the whole
	// value, lowering nothing else.
	CaseSentence CaseMode = "sentence"
)

// Recase changes the letter case of one field.
type Recase struct {
	Field model.Field
	Mode  CaseMode
}

func (o Recase) apply(r model.Record) Result {
	if !has(r, o.Field) {
		return skipped(KindRecase, "field not present: "+string(o.Field))
	}

	value := r[o.Field]
	switch o.Mode {
	case CaseUpper:
		r[o.Field] = strings.ToUpper(value)
	case CaseLower:
		r[o.Field] = strings.ToLower(value)
	case CaseTitle:
		r[o.Field] = cases.Title(language.Und).String(value)
	case CaseSentence:
		r[o.Field] = sentenceCase(value)
	default:
		return skipped(KindRecase, "unknown case mode: "+string(o.Mode))
	}
	return applied(KindRecase)
}

// sentenceCase upper-cases the first rune and leaves the rest alone.
func sentenceCase(s string) string {
	for i, r := range s {
		return s[:i] + string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

// Affix wraps one field's value in a prefix and/or suffix. No length
// validation is performed on the result.
type Affix struct {
	Field  model.Field
	Prefix string
	Suffix string
}

func (o Affix) apply(r model.Record) Result {
	if !has(r, o.Field) {
		return skipped(KindAffix, "field not present: "+string(o.Field))
	}
	r[o.Field] = o.Prefix + r[o.Field] + o.Suffix
	return applied(KindAffix)
}

// Remove deletes every occurrence of a literal text from one field.
type Remove struct {
	Field model.Field
	Text  string
}

func (o Remove) apply(r model.Record) Result {
	if !has(r, o.Field) {
		return skipped(KindRemove, "field not present: "+string(o.Field))
	}
	if o.Text == "" {
		return skipped(KindRemove, "empty remove text")
	}
	r[o.Field] = strings.ReplaceAll(r[o.Field], o.Text, "")
	return applied(KindRemove)
}

// Split divides a source field on the first occurrence of Separator.
//
// When the separator is found, the trimmed left part goes to
// LeftField and the trimmed right part to RightField. When it is not
// found, the trimmed whole value goes to LeftField and RightField is
// left untouched.
type Split struct {
	Source     model.Field
	Separator  string
	LeftField  model.Field
	RightField model.Field
}

func (o Split) apply(r model.Record) Result {
	if o.Separator == "" {
		return skipped(KindSplit, "empty separator")
	}
	if !has(r, o.Source) {
		return skipped(KindSplit, "source field not present: "+string(o.Source))
	}
	if !has(r, o.LeftField) {
		return skipped(KindSplit, "left field not present: "+string(o.LeftField))
	}
	if !has(r, o.RightField) {
		return skipped(KindSplit, "right field not present: "+string(o.RightField))
	}

	parts := strings.SplitN(r[o.Source], o.Separator, 2)
	if len(parts) == 2 {
		r[o.LeftField] = strings.TrimSpace(parts[0])
		r[o.RightField] = strings.TrimSpace(parts[1])
	} else {
		r[o.LeftField] = strings.TrimSpace(parts[0])
	}
	return applied(KindSplit)
}
