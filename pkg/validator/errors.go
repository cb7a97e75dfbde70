package validator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidationFailed matches every *ValidationError via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotFound is returned by a Lookup when no object has the given id.
	ErrNotFound = errors.New("object not found")

	// Configuration errors. They point at a bug in the caller, not at bad
	// input, and are never absorbed by Include, Has or Into.
	ErrLookupNotConfigured = errors.New("validator: object rule used without a lookup")
	ErrInvalidPattern      = errors.New("validator: invalid regular expression")
	ErrUnknownKind         = errors.New("validator: unknown object kind")

	// ErrLookupFailed wraps every error of a Lookup other than ErrNotFound.
	// Unless it also matches ErrUnknownKind it is a runtime failure: Require
	// returns it, Include, Has and Into treat it as a failed check.
	ErrLookupFailed = errors.New("validator: object lookup failed")

	ErrFailedToParseMessages = errors.New("validator: failed to parse messages")
	ErrUnknownMessageKey     = errors.New("validator: unknown message key")
	ErrInvalidTimezone       = errors.New("validator: invalid timezone")
	ErrNoUploadContent       = errors.New("validator: upload has no readable content")
)

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field             string
	Code              Code
	Message           string
	TranslationKey    string
	TranslationValues map[string]any

	cause error
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes every ValidationError match ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Unwrap returns the delegated parser error for CodeJSON failures.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// ValidationErrors collects failures from several rules so a handler can
// report every bad field at once.
type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes a non-empty collection match ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && len(ve) > 0
}

func (ve *ValidationErrors) Add(err *ValidationError) {
	if err != nil {
		*ve = append(*ve, err)
	}
}

// Collect records err when it is a validation failure. Any other non-nil
// error is returned unchanged so the caller can abort.
func (ve *ValidationErrors) Collect(err error) error {
	if err == nil {
		return nil
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		ve.Add(verr)
		return nil
	}
	return err
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Err returns nil for an empty collection and the collection otherwise.
func (ve ValidationErrors) Err() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// IsConfigurationError reports whether err points at a caller bug: an
// object rule without a lookup or for an unregistered kind, or an invalid
// pattern.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrLookupNotConfigured) ||
		errors.Is(err, ErrInvalidPattern) ||
		errors.Is(err, ErrUnknownKind)
}

// IsValidationError reports whether err is, or wraps, a validation failure.
func IsValidationError(err error) bool {
	return err != nil && errors.Is(err, ErrValidationFailed)
}

// AsValidationError extracts the first *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	var verrs ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0], true
	}
	return nil, false
}

// failure is what rule checks return internally; Require turns it into a
// *ValidationError once the message format is known.
type failure struct {
	code  Code
	arg   any
	field string
	cause error
}

func (f *failure) Error() string {
	if f.cause != nil {
		return f.cause.Error()
	}
	return f.code.String()
}

func fail(code Code) error {
	return &failure{code: code}
}

func failWith(code Code, arg any) error {
	return &failure{code: code, arg: arg}
}

// atField pins a failure to a more specific field than the rule's own.
func atField(err error, field string) error {
	var f *failure
	if errors.As(err, &f) && f.field == "" {
		f.field = field
	}
	return err
}
