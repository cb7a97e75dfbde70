package lookup

import "time"

// RedisConfig configures the shared lookup cache.
type RedisConfig struct {
	ConnectionURL  string        `env:"LOOKUP_REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL should be in the format "redis://:password@localhost:6379/0"
	KeyPrefix      string        `env:"LOOKUP_REDIS_PREFIX" envDefault:"soter:lookup:"`
	TTL            time.Duration `env:"LOOKUP_CACHE_TTL" envDefault:"5m"`
	RetryAttempts  int           `env:"LOOKUP_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"LOOKUP_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"LOOKUP_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// MemoryConfig configures the in-process lookup cache.
type MemoryConfig struct {
	Capacity int           `env:"LOOKUP_CACHE_CAPACITY" envDefault:"1024"`
	TTL      time.Duration `env:"LOOKUP_CACHE_TTL" envDefault:"5m"`
}

// NewMemoryCacheFromConfig creates a MemoryCache configured by cfg.
func NewMemoryCacheFromConfig(cfg MemoryConfig) *MemoryCache {
	return NewMemoryCache(cfg.Capacity, cfg.TTL)
}
