package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option customises Load.
type Option func(*options)

type options struct {
	files    []string
	optional bool
	prefix   string
}

// WithEnvFiles loads the given dotenv files before parsing. Variables
// already present in the environment win. Missing files are an error.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
		o.optional = false
	}
}

// WithPrefix only reads variables starting with prefix, e.g. "APP_" maps
// APP_PG_CONN_URL onto a field tagged `env:"PG_CONN_URL"`.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load parses environment variables into a new T based on its env tags.
// Unless WithEnvFiles is given, a .env file in the working directory is
// loaded when present.
//
// Example:
//
//	type DatabaseConfig struct {
//		ConnectionString string `env:"PG_CONN_URL,required"`
//		MaxOpenConns     int32  `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//	}
//
//	cfg, err := config.Load[DatabaseConfig]()
func Load[T any](opts ...Option) (T, error) {
	o := &options{files: []string{".env"}, optional: true}
	for _, opt := range opts {
		opt(o)
	}

	var zero T
	if err := godotenv.Load(o.files...); err != nil {
		if !o.optional || !errors.Is(err, fs.ErrNotExist) {
			return zero, errors.Join(ErrLoadingEnvFile, err)
		}
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{Prefix: o.prefix})
	if err != nil {
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Meant for configuration the application cannot start without.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
