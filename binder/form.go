package binder

import (
	"fmt"
	"net/http"

	"github.com/soterkit/soter/pkg/validator"
)

// Form copies an application/x-www-form-urlencoded body. Query
// parameters are not included, use Query for those.
func Form() Binder {
	return func(r *http.Request, in validator.Input) error {
		if mt := mediaType(r.Header.Get("Content-Type")); mt != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %q, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mt)
		}
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		setValues(in, r.PostForm)
		return nil
	}
}
