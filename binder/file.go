package binder

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/soterkit/soter/pkg/validator"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Multipart copies the values and files of a multipart/form-data body.
// A single file becomes a validator.Upload; several files under one name,
// or a name ending in "[]", become []validator.Upload.
func Multipart(maxMemory int64) Binder {
	return func(r *http.Request, in validator.Input) error {
		if mt := mediaType(r.Header.Get("Content-Type")); mt != "multipart/form-data" {
			return fmt.Errorf("%w: got %q, expected multipart/form-data", ErrUnsupportedMediaType, mt)
		}
		if r.MultipartForm == nil {
			if err := r.ParseMultipartForm(maxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		}
		if r.MultipartForm == nil {
			return nil
		}

		setValues(in, r.MultipartForm.Value)
		for key, headers := range r.MultipartForm.File {
			name, isList := strings.CutSuffix(key, "[]")
			if !isList && len(headers) == 1 {
				in[name] = upload(headers[0])
				continue
			}
			uploads := make([]validator.Upload, len(headers))
			for i, fh := range headers {
				uploads[i] = upload(fh)
			}
			in[name] = uploads
		}
		return nil
	}
}

func upload(fh *multipart.FileHeader) validator.Upload {
	return validator.Upload{
		Name:   filepath.Base(fh.Filename),
		Type:   contentType(fh),
		Error:  validator.UploadOK,
		Size:   fh.Size,
		Header: fh,
	}
}

// contentType prefers the part header and falls back to the extension.
func contentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			return mt
		}
	}
	return mime.TypeByExtension(filepath.Ext(fh.Filename))
}
