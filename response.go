package soter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/soterkit/soter/binder"
	"github.com/soterkit/soter/pkg/validator"
)

// Response is the JSON envelope written by Handle and WriteError.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information. Details maps each rejected field
// to its messages, Codes to the matching translation keys.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
	Codes   map[string][]string `json:"codes,omitempty"`
}

// WriteJSON writes v as the data member of a Response.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	return write(w, status, Response{Data: v})
}

// WriteError classifies err and writes it as the error member of a
// Response. It returns the status that was written.
func WriteError(w http.ResponseWriter, err error) int {
	status, detail := classifyError(err)
	_ = write(w, status, Response{Error: detail})
	return status
}

func write(w http.ResponseWriter, status int, body Response) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func classifyError(err error) (int, *ErrorDetail) {
	if validator.IsValidationError(err) {
		return http.StatusUnprocessableEntity, validationDetail(err)
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{
			Code:    "unsupported_media_type",
			Message: http.StatusText(http.StatusUnsupportedMediaType),
		}
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidPath):
		return http.StatusBadRequest, &ErrorDetail{
			Code:    "bad_request",
			Message: err.Error(),
		}
	}

	// Internal details stay in the log.
	return http.StatusInternalServerError, &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

func validationDetail(err error) *ErrorDetail {
	var list validator.ValidationErrors
	if !errors.As(err, &list) {
		if verr, ok := validator.AsValidationError(err); ok {
			list = validator.ValidationErrors{verr}
		}
	}

	detail := &ErrorDetail{
		Code:    "validation_error",
		Message: "validation failed",
	}
	if len(list) == 0 {
		return detail
	}

	detail.Details = make(map[string][]string, len(list))
	detail.Codes = make(map[string][]string, len(list))
	for _, verr := range list {
		detail.Details[verr.Field] = append(detail.Details[verr.Field], verr.Message)
		detail.Codes[verr.Field] = append(detail.Codes[verr.Field], verr.TranslationKey)
	}
	return detail
}

// logLevel maps a written status to the level it is logged at.
func logLevel(status int) slog.Level {
	switch {
	case status == http.StatusUnprocessableEntity:
		return slog.LevelDebug
	case status < http.StatusInternalServerError:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
