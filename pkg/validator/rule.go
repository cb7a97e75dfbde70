package validator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/soterkit/soter/pkg/logger"
)

// Rule is a single field constraint bound to a Validator. Rules are plain
// values: build them once and apply them to any number of inputs. Rules
// that reach a Lookup run with the rule's context; rebind it per request
// with WithContext.
type Rule[T any] struct {
	v      *Validator
	field  string
	format string
	ctx    context.Context
	check  func(ctx context.Context, in Input) (T, error)
}

func newRule[T any](v *Validator, field string, check func(Input) (T, error)) Rule[T] {
	return newContextRule(v, field, context.Background(), func(_ context.Context, in Input) (T, error) {
		return check(in)
	})
}

func newContextRule[T any](v *Validator, field string, ctx context.Context, check func(context.Context, Input) (T, error)) Rule[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	return Rule[T]{v: v, field: field, format: v.format, ctx: ctx, check: check}
}

// Field returns the name of the checked field.
func (r Rule[T]) Field() string {
	return r.field
}

// Message returns a copy of the rule whose failures are rendered into
// format instead of the validator's default, e.g. "Age: %s".
func (r Rule[T]) Message(format string) Rule[T] {
	r.format = format
	return r
}

// WithContext returns a copy of the rule that runs with ctx. Nil is
// ignored.
func (r Rule[T]) WithContext(ctx context.Context) Rule[T] {
	if ctx != nil {
		r.ctx = ctx
	}
	return r
}

// Require returns the validated value. Invalid input yields a
// *ValidationError; misuse of the validator yields one of the
// configuration errors and a failing Lookup yields ErrLookupFailed.
func (r Rule[T]) Require(in Input) (T, error) {
	val, err := r.check(r.ctx, in)
	if err == nil {
		return val, nil
	}

	var zero T
	var f *failure
	if errors.As(err, &f) {
		verr := r.v.newError(r.field, r.format, f)
		r.v.logger.Debug("validation failed",
			slog.String("field", verr.Field),
			logger.Code(verr.Code.String()),
		)
		return zero, verr
	}

	msg := "object lookup failed"
	if IsConfigurationError(err) {
		msg = "validator misconfigured"
	}
	r.v.logger.ErrorContext(r.ctx, msg,
		slog.String("field", r.field),
		logger.Error(err),
	)
	return zero, err
}

// Include returns the validated value, or def when the input is invalid
// or the Lookup fails. Configuration errors are not absorbed: Include
// panics with them.
func (r Rule[T]) Include(in Input, def T) T {
	val, err := r.Require(in)
	if err != nil {
		absorb(err)
		return def
	}
	return val
}

// Has returns the validated value and true, or the zero value and false
// when the input is invalid or the Lookup fails. Configuration errors
// panic.
func (r Rule[T]) Has(in Input) (T, bool) {
	val, err := r.Require(in)
	if err != nil {
		absorb(err)
		return val, false
	}
	return val, true
}

// Into stores the validated value in dst and reports true. On invalid
// input dst is left untouched and Into reports false. Configuration
// errors panic.
func (r Rule[T]) Into(in Input, dst *T) bool {
	val, ok := r.Has(in)
	if ok {
		*dst = val
	}
	return ok
}

// absorb lets validation failures and runtime lookup failures through and
// re-raises everything else.
func absorb(err error) {
	if IsConfigurationError(err) {
		panic(err)
	}
	if !IsValidationError(err) && !errors.Is(err, ErrLookupFailed) {
		panic(err)
	}
}
