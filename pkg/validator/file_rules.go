package validator

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"slices"
)

const (
	// UploadOK is the error value of a successful upload.
	UploadOK = 0

	// MaxFileSize is the conventional upper size bound for uploads (8 MiB).
	MaxFileSize = 8 << 20
)

// Upload describes one uploaded file as handed over by the request layer.
type Upload struct {
	Name    string `json:"name"`
	TmpPath string `json:"tmp_name"`
	Type    string `json:"type"`
	Error   int    `json:"error"`
	Size    int64  `json:"size"`

	// Header is set for uploads bound from a multipart request.
	Header *multipart.FileHeader `json:"-"`
}

// Open returns the uploaded content, read through Header when present
// and from TmpPath otherwise.
func (u Upload) Open() (io.ReadCloser, error) {
	if u.Header != nil {
		return u.Header.Open()
	}
	if u.TmpPath == "" {
		return nil, ErrNoUploadContent
	}
	return os.Open(u.TmpPath)
}

// uploadAxes are the parallel lists of a multi-file field, in the order
// they are checked.
var uploadAxes = []string{"name", "type", "tmp_name", "error", "size"}

// File requires an upload descriptor of size in [min, max) reported as
// UploadOK. The field may hold an Upload, a *Upload, or a map with the
// keys name, tmp_name, type, error and size.
func (v *Validator) File(field string, min, max int64) Rule[Upload] {
	return newRule(v, field, func(in Input) (Upload, error) {
		raw, ok := in.get(field)
		if !ok {
			return Upload{}, fail(CodeFileMissing)
		}
		return checkUpload(raw, min, max)
	})
}

// Files requires several uploads under one field, each valid for File.
// The field holds either []Upload or a map of the five parallel lists
// name, type, tmp_name, error and size, which are transposed into one
// Upload per index. Failures of a single upload name it as field[i].
func (v *Validator) Files(field string, min, max int64) Rule[[]Upload] {
	return newRule(v, field, func(in Input) ([]Upload, error) {
		raw, ok := in.get(field)
		if !ok {
			return nil, fail(CodeListMissing)
		}

		if uploads, ok := raw.([]Upload); ok {
			out := make([]Upload, len(uploads))
			for i, up := range uploads {
				checked, err := checkUpload(up, min, max)
				if err != nil {
					return nil, atField(err, indexed(field, i))
				}
				out[i] = checked
			}
			return out, nil
		}

		axes, ok := toRecord(raw)
		if !ok {
			return nil, fail(CodeListNotList)
		}
		if len(axes) != len(uploadAxes) {
			return nil, failWith(CodeListSize, len(uploadAxes))
		}
		for axis, list := range axes {
			if !slices.Contains(uploadAxes, axis) {
				return nil, fail(CodeFileMissing)
			}
			if _, ok := toSlice(list); !ok {
				return nil, fail(CodeFileMissing)
			}
		}

		lists, err := checkParallel(Input(axes), uploadAxes, 0)
		if err != nil {
			if f, ok := err.(*failure); ok {
				f.field = field + "." + f.field
			}
			return nil, err
		}

		// Leading empty axes set no length; every axis still needs one
		// entry per upload.
		count := len(lists[uploadAxes[len(uploadAxes)-1]])
		for _, axis := range uploadAxes {
			if len(lists[axis]) != count {
				return nil, atField(failWith(CodeListSize, count), field+"."+axis)
			}
		}

		out := make([]Upload, count)
		for i := range out {
			record := make(map[string]any, len(uploadAxes))
			for _, axis := range uploadAxes {
				record[axis] = lists[axis][i]
			}
			up, err := checkUpload(record, min, max)
			if err != nil {
				return nil, atField(err, indexed(field, i))
			}
			out[i] = up
		}
		return out, nil
	})
}

func checkUpload(raw any, min, max int64) (Upload, error) {
	var (
		up       Upload
		hasError bool
		hasSize  bool
	)
	switch x := raw.(type) {
	case Upload:
		up, hasError, hasSize = x, true, true
	case *Upload:
		if x == nil {
			return Upload{}, fail(CodeFileNone)
		}
		up, hasError, hasSize = *x, true, true
	default:
		record, ok := toRecord(raw)
		if !ok {
			return Upload{}, fail(CodeFileNone)
		}
		up, hasError, hasSize = uploadFromRecord(record)
	}

	if !hasError {
		return Upload{}, fail(CodeFileNoError)
	}
	if !hasSize || up.Size < min {
		return Upload{}, failWith(CodeFileTooSmall, min)
	}
	if up.Size >= max {
		return Upload{}, failWith(CodeFileTooLarge, max)
	}
	if up.Error != UploadOK {
		return Upload{}, failWith(CodeFileUploadError, up.Error)
	}
	return up, nil
}

func uploadFromRecord(record map[string]any) (up Upload, hasError, hasSize bool) {
	text := func(key string) string {
		s, _ := scalarText(record[key])
		return s
	}
	up.Name = text("name")
	up.TmpPath = text("tmp_name")
	up.Type = text("type")

	if raw := record["error"]; raw != nil {
		if code, ok := toInt(raw); ok {
			up.Error, hasError = int(code), true
		}
	}
	if raw := record["size"]; raw != nil {
		if size, ok := toInt(raw); ok {
			up.Size, hasSize = size, true
		}
	}
	return up, hasError, hasSize
}

func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
