package validator

import (
	"errors"
	"fmt"
	"regexp"
)

// Regex requires the field to match pattern (RE2 syntax) and returns the
// whole match followed by the capture groups. The pattern is compiled once
// when the rule is built; a malformed pattern makes every Require call
// fail with ErrInvalidPattern.
func (v *Validator) Regex(field, pattern string) Rule[[]string] {
	re, compileErr := regexp.Compile(pattern)
	return newRule(v, field, func(in Input) ([]string, error) {
		raw, ok := in.get(field)
		if !ok {
			return nil, fail(CodePatternMissing)
		}
		if compileErr != nil {
			return nil, errors.Join(fmt.Errorf("%w: %q", ErrInvalidPattern, pattern), compileErr)
		}
		s, ok := scalarText(raw)
		if !ok {
			return nil, fail(CodePatternMismatch)
		}
		matches := re.FindStringSubmatch(s)
		if matches == nil {
			return nil, fail(CodePatternMismatch)
		}
		return matches, nil
	})
}
