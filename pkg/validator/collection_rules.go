package validator

import "strings"

// List requires a slice or array field. A positive size demands exactly
// that many items. The returned slice is a copy.
func (v *Validator) List(field string, size int) Rule[[]any] {
	return newRule(v, field, func(in Input) ([]any, error) {
		return checkList(in, field, size)
	})
}

// Map requires every key to hold a list, all of the same length. A
// positive size fixes that length; otherwise the first non-empty list
// sets it for the others. Failures name the offending key as field.
func (v *Validator) Map(keys []string, size int) Rule[map[string][]any] {
	return newRule(v, strings.Join(keys, ","), func(in Input) (map[string][]any, error) {
		return checkParallel(in, keys, size)
	})
}

func checkList(in Input, field string, size int) ([]any, error) {
	raw, ok := in.get(field)
	if !ok {
		return nil, fail(CodeListMissing)
	}
	items, ok := toSlice(raw)
	if !ok {
		return nil, fail(CodeListNotList)
	}
	if size > 0 && len(items) != size {
		return nil, failWith(CodeListSize, size)
	}
	return items, nil
}

func checkParallel(in Input, keys []string, size int) (map[string][]any, error) {
	lists := make(map[string][]any, len(keys))
	for _, key := range keys {
		items, err := checkList(in, key, 0)
		if err != nil {
			return nil, atField(err, key)
		}
		switch {
		case size <= 0:
			size = len(items)
		case len(items) != size:
			return nil, atField(failWith(CodeListSize, size), key)
		}
		lists[key] = items
	}
	return lists, nil
}
