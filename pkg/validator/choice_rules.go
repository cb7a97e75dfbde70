package validator

// OneOfKeys requires the field to name one of the keys of values, e.g. an
// option of a select box whose labels are the map values. It returns the
// key.
func OneOfKeys[V any](v *Validator, field string, values map[string]V) Rule[string] {
	return newRule(v, field, func(in Input) (string, error) {
		raw, ok := in.get(field)
		if !ok {
			return "", fail(CodeKeyMissing)
		}
		key, ok := scalarText(raw)
		if !ok {
			return "", fail(CodeKeyUnknown)
		}
		if _, ok := values[key]; !ok {
			return "", fail(CodeKeyUnknown)
		}
		return key, nil
	})
}

// OneOf requires the field to equal one of values and returns the matching
// element. Numbers compare by value and other scalars by text, so the form
// value "3" matches the int 3.
func OneOf[T comparable](v *Validator, field string, values []T) Rule[T] {
	return newRule(v, field, func(in Input) (T, error) {
		var zero T
		raw, ok := in.get(field)
		if !ok {
			return zero, fail(CodeValueMissing)
		}
		for _, candidate := range values {
			if looseEqual(raw, candidate) {
				return candidate, nil
			}
		}
		return zero, fail(CodeValueUnknown)
	})
}
