package ops

import (
	"testing"

	"github.com/handiism/bulktag/internal/model"
)

func TestConfig_Apply_EmptyConfigIsIdentity(t *testing.T) {
	r := record(map[model.Field]string{model.FieldTitle: "Song"})

	out, results := Config{}.Apply(r)
	if !out.Equal(r) {
		t.Errorf("empty config changed record: %v", out)
	}
	if len(results) != 0 {
		t.Errorf("results = %v, want none", results)
	}
}

func TestConfig_Apply_DoesNotMutateInput(t *testing.T) {
	r := record(map[model.Field]string{model.FieldTitle: "  my Song "})
	cfg := Config{
		Trim:   &Trim{Field: model.FieldTitle, Leading: true, Trailing: true},
		Recase: &Recase{Field: model.FieldTitle, Mode: CaseTitle},
	}

	out, _ := cfg.Apply(r)

	if r[model.FieldTitle] != "  my Song " {
		t.Errorf("input mutated: %q", r[model.FieldTitle])
	}
	if out[model.FieldTitle] != "My Song" {
		t.Errorf("output = %q, want %q", out[model.FieldTitle], "My Song")
	}
}

// Trim runs before Recase regardless of struct literal order, so the
// leading junk never reaches the case transform.
func TestConfig_Apply_FixedOrder(t *testing.T) {
	r := record(map[model.Field]string{
		model.FieldTitle:  "live at the venue",
		model.FieldArtist: "",
	})

	// Replace runs before Copy: the copy must see the replaced title.
	cfg := Config{
		Copy:    &Copy{From: model.FieldTitle, To: model.FieldArtist},
		Replace: &Replace{Field: model.FieldTitle, Find: "live at the venue", With: "Studio Take"},
	}

	out, results := cfg.Apply(r)
	if out[model.FieldArtist] != "Studio Take" {
		t.Errorf("artist = %q, want the post-replace title", out[model.FieldArtist])
	}

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Kind != KindReplace || results[1].Kind != KindCopy {
		t.Errorf("result order = %v, %v; want replace then copy", results[0].Kind, results[1].Kind)
	}
}

func TestConfig_Apply_SkipsDoNotAbort(t *testing.T) {
	r := record(map[model.Field]string{model.FieldTitle: "song"})
	cfg := Config{
		Replace: &Replace{Field: model.FieldTitle, Find: "[bad", Regex: true},
		Recase:  &Recase{Field: model.FieldTitle, Mode: CaseUpper},
	}

	out, results := cfg.Apply(r)
	if out[model.FieldTitle] != "SONG" {
		t.Errorf("title = %q, want %q", out[model.FieldTitle], "SONG")
	}

	skips := Skips(results)
	if len(skips) != 1 || skips[0].Kind != KindReplace {
		t.Errorf("skips = %v, want one replace skip", skips)
	}
}

func TestConfig_Enabled(t *testing.T) {
	if got := (Config{}).Enabled(); got != 0 {
		t.Errorf("Enabled() = %d, want 0", got)
	}

	cfg := Config{
		Trim:  &Trim{Field: AllFields, Leading: true, Trailing: true},
		Affix: &Affix{Field: model.FieldTitle, Suffix: "!"},
	}
	if got := cfg.Enabled(); got != 2 {
		t.Errorf("Enabled() = %d, want 2", got)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindReplace, "replace"},
		{KindTrim, "trim"},
		{KindCopy, "copy"},
		{KindRecase, "case"},
		{KindAffix, "add"},
		{KindRemove, "remove"},
		{KindSplit, "split"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
