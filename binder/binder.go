package binder

import (
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/soterkit/soter/pkg/validator"
)

// Binder copies values from r into in.
type Binder func(r *http.Request, in validator.Input) error

// Request builds an Input from r. Without binders it applies Query, Body
// and Chi, in that order.
func Request(r *http.Request, binders ...Binder) (validator.Input, error) {
	if len(binders) == 0 {
		binders = []Binder{Query(), Body(), Chi()}
	}
	in := validator.Input{}
	for _, bind := range binders {
		if err := bind(r, in); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// Body picks the binder matching the request content type. Requests
// without a body or content type are left alone.
func Body() Binder {
	return func(r *http.Request, in validator.Input) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" || r.Body == nil || r.Body == http.NoBody {
			return nil
		}

		switch mediaType(contentType) {
		case "application/json":
			return JSON()(r, in)
		case "application/x-www-form-urlencoded":
			return Form()(r, in)
		case "multipart/form-data":
			return Multipart(DefaultMaxMemory)(r, in)
		default:
			return ErrUnsupportedMediaType
		}
	}
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		if idx := strings.Index(contentType, ";"); idx != -1 {
			contentType = contentType[:idx]
		}
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}

// setValues stores single values as strings and repeated or bracketed
// keys as lists.
func setValues(in validator.Input, values url.Values) {
	for key, vals := range values {
		name, isList := strings.CutSuffix(key, "[]")
		if !isList && len(vals) == 1 {
			in[name] = vals[0]
			continue
		}
		list := make([]any, len(vals))
		for i, v := range vals {
			list[i] = v
		}
		in[name] = list
	}
}
