package validator

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Decimal notation only: no hex, no underscores, no Inf or NaN.
	numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	integerRegex = regexp.MustCompile(`^[+-]?\d+$`)
)

// numericText returns the trimmed text of v when v is a string holding a
// decimal number.
func numericText(v any) (string, bool) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case json.Number:
		s = x.String()
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.String {
			return "", false
		}
		s = rv.String()
	}
	s = strings.TrimSpace(s)
	return s, numericRegex.MatchString(s)
}

// toFloat converts numbers and numeric strings to float64.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}

	s, ok := numericText(v)
	if !ok {
		return 0, false
	}
	return parseFloat(s)
}

// parseFloat accepts underflow to zero but not overflow to infinity.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInt converts numbers and numeric strings to int64, truncating toward
// zero and saturating at the int64 limits. Infinities are not numbers.
func toInt(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		return truncate(rv.Float())
	}

	s, ok := numericText(v)
	if !ok {
		return 0, false
	}
	if integerRegex.MatchString(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return n, true
		}
		if !isRangeErr(err) {
			return 0, false
		}
	}
	f, ok := parseFloat(s)
	if !ok {
		return 0, false
	}
	return truncate(f)
}

func truncate(f float64) (int64, bool) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0, false
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(math.Trunc(f)), true
}

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// scalarText renders strings, numbers and booleans as text. Composite
// values have no text form.
func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Bool:
		if rv.Bool() {
			return "1", true
		}
		return "", true
	}
	return "", false
}

// toSlice copies any slice or array except byte slices into []any.
func toSlice(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return append([]any(nil), items...), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// toRecord copies a map with string keys into map[string]any.
func toRecord(v any) (map[string]any, bool) {
	if rec, ok := v.(map[string]any); ok {
		return rec, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	rec := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		rec[iter.Key().String()] = iter.Value().Interface()
	}
	return rec, true
}

// looseEqual compares an input value with a candidate the way form input
// is usually compared: numbers by value, everything else by text.
func looseEqual(raw, candidate any) bool {
	if a, ok := toFloat(raw); ok {
		if b, ok := toFloat(candidate); ok {
			return a == b
		}
	}
	a, okA := scalarText(raw)
	b, okB := scalarText(candidate)
	if okA && okB {
		return a == b
	}
	return reflect.DeepEqual(raw, candidate)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
