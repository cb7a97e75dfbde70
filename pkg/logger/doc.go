// Package logger builds *slog.Logger instances from functional options and
// keeps attribute naming consistent across packages.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler depending on the
// configured Format and applies the level and static attributes. Nop
// returns a logger that discards everything; libraries use it as their
// default so that logging stays opt-in.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "signup")),
//	)
//
//	v := validator.New(validator.WithLogger(log))
//
// Attribute helpers (Error, Errors, Group, Component, Code, Kind) return
// slog.Attr values with fixed keys.
package logger
