package validator

import (
	"unicode/utf8"

	"github.com/soterkit/soter/pkg/sanitizer"
)

// MaxStringLength is the conventional upper bound for free text fields
// (8 MiB worth of characters).
const MaxStringLength = 8 << 20

// Transform rewrites a string before its length is checked. Every
// func(string) string in the sanitizer package is a Transform.
type Transform func(string) string

// String requires a string field whose trimmed length, counted in
// characters, lies in [min, max). It returns the trimmed text.
func (v *Validator) String(field string, min, max int) Rule[string] {
	return v.Raw(field, min, max, sanitizer.Trim)
}

// Raw is String with an explicit transform pipeline. Transforms run in
// order and the length and encoding checks apply to their output; with no
// transforms the text is checked as submitted.
func (v *Validator) Raw(field string, min, max int, transforms ...Transform) Rule[string] {
	return newRule(v, field, func(in Input) (string, error) {
		return checkString(in, field, min, max, transforms)
	})
}

func checkString(in Input, field string, min, max int, transforms []Transform) (string, error) {
	raw, ok := in.get(field)
	if !ok {
		return "", fail(CodeStringMissing)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fail(CodeStringNotString)
	}

	for _, transform := range transforms {
		s = transform(s)
	}

	n := utf8.RuneCountInString(s)
	if n < min {
		return "", failWith(CodeStringTooShort, min)
	}
	if n >= max {
		return "", failWith(CodeStringTooLong, max)
	}
	if !utf8.ValidString(s) {
		return "", fail(CodeStringEncoding)
	}
	return s, nil
}
