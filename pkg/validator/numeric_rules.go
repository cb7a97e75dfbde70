package validator

// Int requires a numeric field whose value, truncated toward zero, lies in
// [min, max). Note the exclusive upper bound, unlike Float.
func (v *Validator) Int(field string, min, max int64) Rule[int64] {
	return newRule(v, field, func(in Input) (int64, error) {
		raw, ok := in.get(field)
		if !ok {
			return 0, fail(CodeIntMissing)
		}
		n, ok := toInt(raw)
		if !ok {
			return 0, fail(CodeIntNotNumeric)
		}
		if n < min {
			return 0, failWith(CodeIntTooSmall, min)
		}
		if n >= max {
			return 0, failWith(CodeIntTooLarge, max)
		}
		return n, nil
	})
}

// Float requires a numeric field whose value lies in [min, max]. Both
// bounds are inclusive, unlike Int.
func (v *Validator) Float(field string, min, max float64) Rule[float64] {
	return newRule(v, field, func(in Input) (float64, error) {
		raw, ok := in.get(field)
		if !ok {
			return 0, fail(CodeFloatMissing)
		}
		f, ok := toFloat(raw)
		if !ok {
			return 0, fail(CodeFloatNotNumeric)
		}
		if f < min {
			return 0, failWith(CodeFloatTooSmall, min)
		}
		if f > max {
			return 0, failWith(CodeFloatTooLarge, max)
		}
		return f, nil
	})
}
