// Package validator extracts named fields from untyped request input,
// checks them against a type, range or shape constraint and returns the
// coerced value or a typed *ValidationError.
//
// Input is a plain map (see Input) such as the one produced by the binder
// package from form fields, query parameters, JSON bodies or multipart
// uploads. The package never mutates it.
//
// # Architecture
//
// A Validator holds the few pieces of state the rules need: an optional
// object Lookup, the message catalog, the default message format and a
// logger. Rule constructors on the Validator (Int, Float, String, Date,
// File, Regex, JSON, FQDN, ...) return a Rule[T]; generic constructors
// that cannot be methods (OneOf, OneOfKeys) are package functions taking
// the Validator as first argument.
//
// Every Rule[T] offers the same calling conventions:
//
//   - Require returns the value or an error
//   - Include returns the value or a caller supplied default
//   - Has returns the value and a presence flag
//   - Into writes the value to a destination only on success
//
// Each rule family lives in its own file (numeric_rules.go,
// string_rules.go, collection_rules.go, date_rules.go, file_rules.go,
// format_rules.go, pattern_rules.go, object_rules.go, uuid_rules.go).
//
// # Usage
//
//	v := validator.New(validator.WithLookup(store))
//
//	age, err := v.Int("age", 18, 130).Require(in)
//	if err != nil {
//	    // err is a *ValidationError, or a configuration error
//	}
//
//	page := v.Int("page", 1, 1000).Include(in, 1)
//
//	if email, ok := v.Email("email").Has(in); ok {
//	    // use email
//	}
//
// # Error Handling
//
// Failures come in two tiers. Validation failures are *ValidationError
// values carrying a stable Code, the field name and a rendered message;
// they match ErrValidationFailed with errors.Is. Configuration errors
// (ErrLookupNotConfigured, ErrInvalidPattern, ErrUnknownKind) mean the
// caller misused the validator; see IsConfigurationError. A Lookup that
// fails at run time, e.g. on a cancelled context or a lost connection,
// yields ErrLookupFailed. Require returns all of them. Include, Has and
// Into treat validation and lookup failures as a failed check and panic
// on configuration errors; use Require when a lookup outage must be told
// apart from bad input.
//
// Messages are built in two steps: the per-code template ("less than %d")
// is rendered with the violated bound, then substituted into the rule's
// message format ("%s" by default, see WithMessageFormat and
// Rule.Message). Templates can be overridden with WithMessages or loaded
// from YAML with LoadMessages.
//
// # Concurrency
//
// A Validator is immutable once built and safe for concurrent use as long
// as the attached Lookup is.
package validator
