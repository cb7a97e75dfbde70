package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/soterkit/soter/pkg/validator"
)

// MaxJSONBodySize caps the body read by JSON.
const MaxJSONBodySize = 10 << 20

// JSON copies the members of a JSON object body. Numbers are kept as
// json.Number so large integers survive; nested objects and arrays keep
// their decoded map[string]any and []any shapes.
func JSON() Binder {
	return func(r *http.Request, in validator.Input) error {
		if mt := mediaType(r.Header.Get("Content-Type")); mt != "application/json" {
			return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, mt)
		}

		decoder := json.NewDecoder(io.LimitReader(r.Body, MaxJSONBodySize))
		decoder.UseNumber()

		var body map[string]any
		if err := decoder.Decode(&body); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		for key, value := range body {
			in[key] = value
		}
		return nil
	}
}
