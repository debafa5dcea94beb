package comment

import (
	"strconv"
	"strings"
)

// Separator is the literal delimiter between the key, rating and tag
// segments of a composite comment value.
const Separator = " - "

// Composite is the decoded form of a comment field value.
//
// Comment values follow a MixedInKey-style convention packing up to
// three sub-values into one string:
//
//	"8A - 7 - Dark, Cosmic"
//	 key  rating  tag list
//
// Key and Rating are optional as a pair: a value either carries both
// (HasRating true, Key non-empty) or neither. Tags preserves input
// order and may be empty.
type Composite struct {
	// Key is the harmonic key ("5A", "12B", ...). Empty when the
	// comment is a plain tag list.
	Key string

	// Rating is the numeric rating segment. Only meaningful when
	// HasRating is true.
	Rating int

	// HasRating reports whether the value carried a rating segment.
	HasRating bool

	// Tags is the ordered free-text tag list.
	Tags []string
}

// IsComposite reports whether the value carries the key/rating pair.
func (c Composite) IsComposite() bool {
	return c.Key != "" && c.HasRating
}

// Decode parses a raw comment value.
//
// The recognized composite form is exactly three Separator-delimited
// parts whose middle part is entirely decimal digits; anything else
// falls back to a plain comma-separated tag list with no key or
// rating. An empty input decodes to an empty tag list.
//
// Example:
//
//	comment.Decode("5A - 5 - mazn, slomz")
//	// Composite{Key: "5A", Rating: 5, HasRating: true, Tags: []string{"mazn", "slomz"}}
//
//	comment.Decode("just, some, tags")
//	// Composite{Tags: []string{"just", "some", "tags"}}
func Decode(raw string) Composite {
	if strings.TrimSpace(raw) == "" {
		return Composite{}
	}

	parts := strings.Split(raw, Separator)
	if len(parts) == 3 && isDigits(parts[1]) {
		rating, err := strconv.Atoi(parts[1])
		if err == nil {
			return Composite{
				Key:       parts[0],
				Rating:    rating,
				HasRating: true,
				Tags:      splitTags(parts[2]),
			}
		}
	}

	return Composite{Tags: splitTags(raw)}
}

// Encode renders the Composite back into a comment value.
//
// With both key and rating present the result is
// "<key> - <rating> - <tags>"; the trailing tag segment is omitted
// entirely when the tag list is empty. Without the key/rating pair the
// tags are joined with ", ".
//
// Decode(c.Encode()) reproduces c for any non-empty key, non-negative
// rating and tag elements free of commas and the Separator; inputs
// violating that precondition are out of contract.
func (c Composite) Encode() string {
	joined := strings.Join(c.Tags, ", ")
	if !c.IsComposite() {
		return joined
	}
	if len(c.Tags) == 0 {
		return c.Key + Separator + strconv.Itoa(c.Rating)
	}
	return c.Key + Separator + strconv.Itoa(c.Rating) + Separator + joined
}

// isDigits reports whether s is non-empty and entirely ASCII decimal
// digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// splitTags splits a tag segment on commas, trimming surrounding
// whitespace and dropping pieces that end up empty.
func splitTags(s string) []string {
	var tags []string
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			tags = append(tags, piece)
		}
	}
	return tags
}
