package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/soterkit/soter/pkg/logger"
)

// DefaultMessageFormat passes the rendered template through unchanged.
const DefaultMessageFormat = "%s"

// Input is the untyped field collection rules read from, e.g. parsed form
// values. Rules never modify it.
type Input map[string]any

// get mirrors "isset": a key mapped to nil counts as absent.
func (in Input) get(field string) (any, bool) {
	v, ok := in[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Validator builds rules. The zero value is not usable, call New.
type Validator struct {
	lookup   Lookup
	messages Messages
	format   string
	location *time.Location
	logger   *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLookup attaches the collaborator used by Object rules.
func WithLookup(l Lookup) Option {
	return func(v *Validator) { v.lookup = l }
}

// WithMessages overrides templates of the built-in catalog. Codes absent
// from m keep their default template.
func WithMessages(m Messages) Option {
	return func(v *Validator) {
		maps.Copy(v.messages, m)
	}
}

// WithMessageFormat sets the outer format every rendered template is
// substituted into, e.g. "invalid input: %s". Empty formats are ignored.
func WithMessageFormat(format string) Option {
	return func(v *Validator) {
		if format != "" {
			v.format = format
		}
	}
}

// WithLocation sets the location used to interpret dates without an
// explicit zone. Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.location = loc
		}
	}
}

// WithLogger sets the logger. Failures are logged at debug level,
// configuration errors at error level. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l.With(logger.Component("validator"))
		}
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		messages: DefaultMessages(),
		format:   DefaultMessageFormat,
		location: time.UTC,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Config holds the environment driven settings of a Validator.
type Config struct {
	MessageFormat string `env:"VALIDATOR_MESSAGE_FORMAT" envDefault:"%s"`  // MessageFormat wraps every rendered message.
	MessagesFile  string `env:"VALIDATOR_MESSAGES_FILE"`                   // MessagesFile is an optional YAML catalog overriding templates.
	Timezone      string `env:"VALIDATOR_TIMEZONE" envDefault:"UTC"`       // Timezone is used for dates without an explicit zone.
}

// NewFromConfig builds a Validator from cfg. Options are applied after the
// config, so they win.
func NewFromConfig(cfg Config, opts ...Option) (*Validator, error) {
	base := []Option{WithMessageFormat(cfg.MessageFormat)}

	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, errors.Join(ErrInvalidTimezone, err)
		}
		base = append(base, WithLocation(loc))
	}

	if cfg.MessagesFile != "" {
		msgs, err := LoadMessagesFile(cfg.MessagesFile)
		if err != nil {
			return nil, err
		}
		base = append(base, WithMessages(msgs))
	}

	return New(append(base, opts...)...), nil
}

func (v *Validator) newError(field, format string, f *failure) *ValidationError {
	if f.field != "" {
		field = f.field
	}

	var detail string
	if f.cause != nil {
		detail = f.cause.Error()
	} else {
		detail = v.messages.render(f.code, f.arg)
	}

	values := map[string]any{"field": field}
	if f.arg != nil {
		values["arg"] = f.arg
	}

	return &ValidationError{
		Field:             field,
		Code:              f.code,
		Message:           formatMessage(format, detail),
		TranslationKey:    f.code.TranslationKey(),
		TranslationValues: values,
		cause:             f.cause,
	}
}

// formatMessage substitutes detail into format. A format without verbs is
// a fixed message; only its %% escapes are rendered.
func formatMessage(format, detail string) string {
	if !strings.Contains(strings.ReplaceAll(format, "%%", ""), "%") {
		return strings.ReplaceAll(format, "%%", "%")
	}
	return fmt.Sprintf(format, detail)
}
