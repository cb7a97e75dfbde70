package soter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/soterkit/soter/binder"
	"github.com/soterkit/soter/pkg/logger"
	"github.com/soterkit/soter/pkg/validator"
)

// HandlerFunc validates the bound input and returns the response data.
// A nil result with a nil error is written as 204 No Content.
type HandlerFunc func(ctx context.Context, in validator.Input) (any, error)

// HandlerOption configures Handle.
type HandlerOption func(*handlerOptions)

type handlerOptions struct {
	binders []binder.Binder
	logger  *slog.Logger
	status  int
}

// WithBinders replaces the default binders (query, body, chi path params).
func WithBinders(binders ...binder.Binder) HandlerOption {
	return func(o *handlerOptions) {
		o.binders = binders
	}
}

// WithHandlerLogger logs every error response.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSuccessStatus sets the status used for a non-nil result. Default 200.
func WithSuccessStatus(status int) HandlerOption {
	return func(o *handlerOptions) {
		o.status = status
	}
}

// Handle adapts fn to an http.HandlerFunc: the request is bound into a
// validator.Input, fn is called with it and the outcome is written as JSON.
func Handle(fn HandlerFunc, opts ...HandlerOption) http.HandlerFunc {
	o := &handlerOptions{
		logger: logger.Nop(),
		status: http.StatusOK,
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if fn == nil {
			respondError(w, r, o.logger, ErrNilHandler)
			return
		}

		in, err := binder.Request(r, o.binders...)
		if err != nil {
			respondError(w, r, o.logger, err)
			return
		}

		data, err := call(r.Context(), fn, in)
		if err != nil {
			respondError(w, r, o.logger, err)
			return
		}

		if data == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := WriteJSON(w, o.status, data); err != nil {
			o.logger.ErrorContext(r.Context(), "failed to write response",
				logger.Component("http"),
				logger.Error(err),
			)
		}
	}
}

// call runs fn and turns a panic into an error wrapping ErrHandlerPanic.
func call(ctx context.Context, fn HandlerFunc, in validator.Input) (data any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if recErr, ok := rec.(error); ok {
				err = fmt.Errorf("%w: %w", ErrHandlerPanic, recErr)
			} else {
				err = fmt.Errorf("%w: %v", ErrHandlerPanic, rec)
			}
			data = nil
		}
	}()
	return fn(ctx, in)
}

func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := WriteError(w, err)
	log.Log(r.Context(), logLevel(status), "request failed",
		logger.Component("http"),
		logger.Error(err),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
	)
}
