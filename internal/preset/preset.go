package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	ioutils "github.com/handiism/bulktag/internal/io"
	"github.com/handiism/bulktag/internal/model"
	"github.com/handiism/bulktag/internal/ops"
)

// Preset is a named, serializable pipeline configuration.
//
// The JSON document shape is one top-level entry per enabled operation
// kind, with the historical key names kept intact so preset files
// written by earlier versions of the utility keep loading:
//
//	{
//	  "name": "cleanup",
//	  "operations": {
//	    "trim": {"field": "ALL FIELDS", "leading": true, "trailing": true},
//	    "case": {"field": "title", "mode": "title"}
//	  }
//	}
type Preset struct {
	Name       string     `json:"name"`
	Operations Operations `json:"operations"`
}

// Operations mirrors the preset document's operations object. A nil
// entry means the kind is disabled.
type Operations struct {
	Replace *ReplaceSpec `json:"replace,omitempty"`
	Trim    *TrimSpec    `json:"trim,omitempty"`
	Copy    *CopySpec    `json:"copy,omitempty"`
	Case    *CaseSpec    `json:"case,omitempty"`
	Add     *AddSpec     `json:"add,omitempty"`
	Remove  *RemoveSpec  `json:"remove,omitempty"`
	Split   *SplitSpec   `json:"split,omitempty"`
}

// ReplaceSpec configures the replace operation.
type ReplaceSpec struct {
	Field         string `json:"field"`
	Find          string `json:"find"`
	With          string `json:"with"`
	CaseSensitive bool   `json:"case_sensitive"`
	UseRegex      bool   `json:"use_regex"`
}

// TrimSpec configures the trim operation. Field may be "ALL FIELDS".
type TrimSpec struct {
	Field    string `json:"field"`
	Leading  bool   `json:"leading"`
	Trailing bool   `json:"trailing"`
}

// CopySpec configures the copy operation.
type CopySpec struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Append bool   `json:"append"`
}

// CaseSpec configures the change-case operation.
type CaseSpec struct {
	Field string `json:"field"`
	Mode  string `json:"mode"`
}

// AddSpec configures the prefix/suffix operation.
type AddSpec struct {
	Field  string `json:"field"`
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// RemoveSpec configures the remove-text operation.
type RemoveSpec struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

// SplitSpec configures the split operation.
type SplitSpec struct {
	Source     string `json:"source"`
	Separator  string `json:"separator"`
	LeftField  string `json:"left_field"`
	RightField string `json:"right_field"`
}

// Config builds the pipeline configuration described by the preset.
func (p Preset) Config() ops.Config {
	var cfg ops.Config

	if r := p.Operations.Replace; r != nil {
		cfg.Replace = &ops.Replace{
			Field:         model.Field(r.Field),
			Find:          r.Find,
			With:          r.With,
			CaseSensitive: r.CaseSensitive,
			Regex:         r.UseRegex,
		}
	}
	if t := p.Operations.Trim; t != nil {
		cfg.Trim = &ops.Trim{
			Field:    model.Field(t.Field),
			Leading:  t.Leading,
			Trailing: t.Trailing,
		}
	}
	if c := p.Operations.Copy; c != nil {
		cfg.Copy = &ops.Copy{
			From:   model.Field(c.From),
			To:     model.Field(c.To),
			Append: c.Append,
		}
	}
	if c := p.Operations.Case; c != nil {
		cfg.Recase = &ops.Recase{
			Field: model.Field(c.Field),
			Mode:  ops.CaseMode(c.Mode),
		}
	}
	if a := p.Operations.Add; a != nil {
		cfg.Affix = &ops.Affix{
			Field:  model.Field(a.Field),
			Prefix: a.Prefix,
			Suffix: a.Suffix,
		}
	}
	if r := p.Operations.Remove; r != nil {
		cfg.Remove = &ops.Remove{
			Field: model.Field(r.Field),
			Text:  r.Text,
		}
	}
	if s := p.Operations.Split; s != nil {
		cfg.Split = &ops.Split{
			Source:     model.Field(s.Source),
			Separator:  s.Separator,
			LeftField:  model.Field(s.LeftField),
			RightField: model.Field(s.RightField),
		}
	}

	return cfg
}

// Load reads a preset list from a JSON file. A missing file yields an
// empty list, so first runs need no setup.
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	return presets, nil
}

// Save writes the preset list to a JSON file, creating parent
// directories as needed.
func Save(path string, presets []Preset) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Find returns the preset with the given name from the list.
func Find(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
