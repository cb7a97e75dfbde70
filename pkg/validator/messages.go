package validator

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Messages maps failure codes to message templates. Templates of codes
// that carry a bound contain exactly one fmt verb for it.
type Messages map[Code]string

var defaultMessages = Messages{
	CodeIntMissing:    "not found",
	CodeIntNotNumeric: "non-numeric",
	CodeIntTooSmall:   "less than %d",
	CodeIntTooLarge:   "more than %d",

	CodeFloatMissing:    "not found",
	CodeFloatNotNumeric: "non-numeric",
	CodeFloatTooSmall:   "less than %0.1f",
	CodeFloatTooLarge:   "more than %0.1f",

	CodeKeyMissing: "not found",
	CodeKeyUnknown: "unexpected value",

	CodeValueMissing: "not found",
	CodeValueUnknown: "unexpected value",

	CodeStringMissing:   "not found",
	CodeStringNotString: "not a string",
	CodeStringTooShort:  "less than %d characters long",
	CodeStringTooLong:   "longer than %d characters",
	CodeStringEncoding:  "invalid encoding",

	CodeObjectMissing:  "not found",
	CodeObjectNotFound: "invalid ID",

	CodeListMissing: "missing list",
	CodeListNotList: "not a list",
	CodeListSize:    "invalid size, expected %d",

	CodeDateMissing:  "not found",
	CodeDateInvalid:  "not a date",
	CodeDateTooEarly: "earlier than %s",
	CodeDateTooLate:  "later than %s",

	CodeFileMissing:     "not found",
	CodeFileNone:        "none submitted",
	CodeFileNoError:     "unknown error",
	CodeFileTooSmall:    "smaller than %d bytes",
	CodeFileTooLarge:    "larger than %d bytes",
	CodeFileUploadError: "server upload error %d",

	CodePatternMissing:  "not found",
	CodePatternNone:     "no pattern",
	CodePatternMismatch: "does not match pattern",

	CodeEmailMissing: "not found",
	CodeEmailInvalid: "invalid email",

	CodeURLMissing: "not found",
	CodeURLInvalid: "invalid URL",

	CodeDomainMissing:    "not found",
	CodeDomainInvalid:    "invalid domain name",
	CodeDomainSize:       "invalid domain name size",
	CodeDomainLabel:      "invalid subdomain",
	CodeDomainCharacters: "invalid characters not allowed",

	CodeUUIDMissing: "not found",
	CodeUUIDInvalid: "invalid UUID",

	CodeJSON: "invalid JSON",
}

// DefaultMessages returns a copy of the built-in message catalog.
func DefaultMessages() Messages {
	return maps.Clone(defaultMessages)
}

// Template returns the template for code, falling back to the built-in
// catalog and finally to the code key.
func (m Messages) Template(code Code) string {
	if tmpl, ok := m[code]; ok {
		return tmpl
	}
	if tmpl, ok := defaultMessages[code]; ok {
		return tmpl
	}
	return code.String()
}

func (m Messages) render(code Code, arg any) string {
	tmpl := m.Template(code)
	if arg == nil || !strings.Contains(tmpl, "%") {
		return tmpl
	}
	return fmt.Sprintf(tmpl, arg)
}

// LoadMessages reads a YAML document mapping code keys to templates:
//
//	int.too_small: "must be at least %d"
//	email.invalid: "is not an email address"
//
// Keys may also carry the "validation." prefix used by TranslationKey.
func LoadMessages(r io.Reader) (Messages, error) {
	raw := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Messages{}, nil
		}
		return nil, errors.Join(ErrFailedToParseMessages, err)
	}

	msgs := make(Messages, len(raw))
	for key, tmpl := range raw {
		code, ok := codeByKey(strings.TrimPrefix(key, "validation."))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMessageKey, key)
		}
		msgs[code] = tmpl
	}
	return msgs, nil
}

// LoadMessagesFile is LoadMessages for a file on disk.
func LoadMessagesFile(path string) (Messages, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseMessages, err)
	}
	defer f.Close()

	return LoadMessages(f)
}
