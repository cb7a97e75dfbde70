// Package soter validates request fields against declarative rules and
// reports failures as structured JSON.
//
// The rules live in pkg/validator, request decoding in binder and object
// resolution backends in pkg/lookup. This package ties them together for
// HTTP handlers:
//
//	v := validator.New(validator.WithLookup(store))
//
//	r.Post("/users/{id}", soter.Handle(func(ctx context.Context, in validator.Input) (any, error) {
//	    var errs validator.ValidationErrors
//	    name, err := v.String("name", 3, 64).Require(in)
//	    if err := errs.Collect(err); err != nil {
//	        return nil, err
//	    }
//	    ...
//	    return user, errs.Err()
//	}))
//
// Validation failures are written as 422 with one message list per field;
// malformed bodies as 400 or 415; anything else as 500.
package soter
