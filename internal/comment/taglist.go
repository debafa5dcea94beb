package comment

import "strings"

// Rename replaces tags according to mapping, matching whole tags
// case-insensitively. Order is preserved and unmatched tags pass
// through unchanged.
//
// Example:
//
//	comment.Rename([]string{"mazn", "slomz"}, map[string]string{
//	    "mazn":  "Nasty",
//	    "slomz": "Dark",
//	})
//	// []string{"Nasty", "Dark"}
func Rename(tags []string, mapping map[string]string) []string {
	if len(tags) == 0 || len(mapping) == 0 {
		return tags
	}

	lower := make(map[string]string, len(mapping))
	for old, new := range mapping {
		lower[strings.ToLower(old)] = new
	}

	out := make([]string, len(tags))
	for i, tag := range tags {
		if replacement, ok := lower[strings.ToLower(tag)]; ok {
			out[i] = replacement
		} else {
			out[i] = tag
		}
	}
	return out
}

// Clean trims surrounding whitespace from every tag and drops tags
// that are empty afterwards.
func Clean(tags []string) []string {
	var out []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Dedupe removes duplicate tags, comparing case-insensitively and
// keeping the first occurrence of each.
//
// Example:
//
//	comment.Dedupe([]string{"Dark", "dark", "Cosmic"})
//	// []string{"Dark", "Cosmic"}
func Dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}
