package soter

import "errors"

var (
	// ErrNilHandler is reported when Handle is called without a handler func.
	ErrNilHandler = errors.New("soter: nil handler func")

	// ErrHandlerPanic wraps a value recovered from a panicking handler func,
	// e.g. a rule misconfiguration raised by Include or Has.
	ErrHandlerPanic = errors.New("soter: handler panicked")
)
