// Package config loads environment driven configuration structs.
//
// Fields are bound with github.com/caarlos0/env tags; a dotenv file is
// read first through github.com/joho/godotenv so local development can
// keep settings in .env. Every package with tunables exposes a Config
// struct (validator.Config, pg.Config, mongo.Config, lookup.RedisConfig,
// logger.Config) meant to be loaded here:
//
//	cfg, err := config.Load[validator.Config]()
//	if err != nil {
//	    return err
//	}
//	v, err := validator.NewFromConfig(cfg)
package config
