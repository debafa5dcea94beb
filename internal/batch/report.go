package batch

import (
	"fmt"
	"strings"

	"github.com/handiism/bulktag/internal/model"
)

// PreviewReport renders a human-readable before/after report for a
// preview run: which fields of the sample item would change, plus how
// many items are selected for the real run.
//
// Example output:
//
//	Preview for: 01 track.mp3
//	Selected files: 12
//
//	TITLE:
//	  Before: '  my Song '
//	  After:  'My Song'
func PreviewReport(item *model.Item, after model.Record, selectedCount int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Preview for: %s\n", item.Filename))
	sb.WriteString(fmt.Sprintf("Selected files: %d\n\n", selectedCount))

	changes := item.Tags.Diff(after)
	if len(changes) == 0 {
		sb.WriteString("No changes detected!\n")
		return sb.String()
	}

	for _, ch := range changes {
		sb.WriteString(strings.ToUpper(string(ch.Field)) + ":\n")
		sb.WriteString(fmt.Sprintf("  Before: '%s'\n", ch.Before))
		sb.WriteString(fmt.Sprintf("  After:  '%s'\n\n", ch.After))
	}

	return sb.String()
}
