package binder

import (
	"net/http"

	"github.com/soterkit/soter/pkg/validator"
)

// Query copies URL query parameters.
//
//	/search?q=go&page=2&tags[]=web
//
// yields {"q": "go", "page": "2", "tags": []any{"web"}}.
func Query() Binder {
	return func(r *http.Request, in validator.Input) error {
		setValues(in, r.URL.Query())
		return nil
	}
}
