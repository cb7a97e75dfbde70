package binder

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soterkit/soter/pkg/validator"
)

// Path copies the named path parameters using extractor. Empty values
// are skipped.
//
// Example with the standard library mux:
//
//	binder.Path(func(r *http.Request, name string) string {
//	    return r.PathValue(name)
//	}, "id")
func Path(extractor func(r *http.Request, name string) string, names ...string) Binder {
	return func(r *http.Request, in validator.Input) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}
		for _, name := range names {
			if value := extractor(r, name); value != "" {
				in[name] = value
			}
		}
		return nil
	}
}

// Chi copies every URL parameter of the matched chi route. Wildcard
// segments are stored under "*". Outside a chi router it does nothing.
func Chi() Binder {
	return func(r *http.Request, in validator.Input) error {
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return nil
		}
		for i, key := range rctx.URLParams.Keys {
			if i < len(rctx.URLParams.Values) && rctx.URLParams.Values[i] != "" {
				in[key] = rctx.URLParams.Values[i]
			}
		}
		return nil
	}
}
