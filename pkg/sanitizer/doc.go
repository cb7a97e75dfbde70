// Package sanitizer provides small string transforms meant to run before
// input is validated.
//
// Every exported func(string) string can be handed to the validator's Raw
// rule as a transform; Compose and Apply chain them:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NFC,
//	    sanitizer.RemoveExtraWhitespace,
//	)
//
//	name, err := v.Raw("name", 1, 64, clean).Require(in)
//
// Unicode normalisation (NFC, NFKC) and case folding are backed by
// golang.org/x/text. The package does not escape output; that belongs to
// whatever renders the value.
package sanitizer
