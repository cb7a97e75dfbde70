package validator

import (
	"context"
	"errors"
	"fmt"
)

// Lookup resolves an identifier of a given kind of object, e.g. a row of
// a table. It returns (nil, nil) or an error matching ErrNotFound when
// there is no such object.
type Lookup interface {
	Resolve(ctx context.Context, kind, id string) (any, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, kind, id string) (any, error)

func (f LookupFunc) Resolve(ctx context.Context, kind, id string) (any, error) {
	return f(ctx, kind, id)
}

// Object requires the field to hold the identifier of an existing object
// of the given kind and returns the object. It needs a validator built
// WithLookup; without one Require fails with ErrLookupNotConfigured.
// Lookup errors other than ErrNotFound surface as ErrLookupFailed.
//
// ctx is passed to the Lookup. A rule kept across requests should be
// rebound with WithContext:
//
//	owner := v.Object(context.Background(), "owner", "user")
//	...
//	obj, err := owner.WithContext(r.Context()).Require(in)
func (v *Validator) Object(ctx context.Context, field, kind string) Rule[any] {
	return newContextRule(v, field, ctx, func(ctx context.Context, in Input) (any, error) {
		if v.lookup == nil {
			return nil, ErrLookupNotConfigured
		}
		raw, ok := in.get(field)
		if !ok {
			return nil, fail(CodeObjectMissing)
		}
		id, ok := scalarText(raw)
		if !ok || id == "" {
			return nil, fail(CodeObjectNotFound)
		}

		obj, err := v.lookup.Resolve(ctx, kind, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fail(CodeObjectNotFound)
			}
			return nil, errors.Join(fmt.Errorf("%w: %s %q", ErrLookupFailed, kind, id), err)
		}
		if isNil(obj) {
			return nil, fail(CodeObjectNotFound)
		}
		return obj, nil
	})
}
