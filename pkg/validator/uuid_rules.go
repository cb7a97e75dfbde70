package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUID requires a field holding a UUID in any of the textual forms
// accepted by uuid.Parse and returns it parsed. The nil UUID is rejected.
func (v *Validator) UUID(field string) Rule[uuid.UUID] {
	return newRule(v, field, func(in Input) (uuid.UUID, error) {
		raw, ok := in.get(field)
		if !ok {
			return uuid.Nil, fail(CodeUUIDMissing)
		}

		var id uuid.UUID
		switch x := raw.(type) {
		case uuid.UUID:
			id = x
		case string:
			parsed, err := uuid.Parse(strings.TrimSpace(x))
			if err != nil {
				return uuid.Nil, fail(CodeUUIDInvalid)
			}
			id = parsed
		default:
			return uuid.Nil, fail(CodeUUIDInvalid)
		}

		if id == uuid.Nil {
			return uuid.Nil, fail(CodeUUIDInvalid)
		}
		return id, nil
	})
}
