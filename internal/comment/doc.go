// Package comment encodes and decodes the composite comment field
// convention used by DJ tagging tools.
//
// # Composite values
//
// A comment value can pack a harmonic key, a numeric rating and a
// free-text tag list into one string:
//
//	c := comment.Decode("5A - 5 - Dark, Upper")
//	// c.Key == "5A", c.Rating == 5, c.Tags == ["Dark", "Upper"]
//
//	c.Tags = comment.Rename(c.Tags, mapping)
//	value := c.Encode()
//
// Values that do not match the three-part numeric-rating shape decode
// as a plain tag list; that fallback is by definition not an error.
//
// # Tag list helpers
//
// Rename, Clean and Dedupe operate on the decoded tag list and are the
// building blocks of the comment quick actions in the batch package.
package comment
