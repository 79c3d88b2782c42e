package config

import "time"

const (
	DefaultTokenIssuer      = "self"
	DefaultTokenDuration    = time.Hour
	DefaultPasswordHasher   = "bcrypt"
	DefaultPasswordHashCost = 12

	DefaultRateLimitCapacity       = 100
	DefaultRateLimitRefillTokens   = 100
	DefaultRateLimitRefillInterval = time.Minute

	DefaultDBDriver     = "pgx"
	DefaultMaxOpenConns = 10

	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "debug"

	DefaultAdapterAddress = "http://localhost:8080"
	DefaultAdapterTimeout = 15 * time.Second
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHasher:   DefaultPasswordHasher,
			PasswordHashCost: DefaultPasswordHashCost,
		},
		RateLimit: RateLimit{
			Capacity:       DefaultRateLimitCapacity,
			RefillTokens:   DefaultRateLimitRefillTokens,
			RefillInterval: DefaultRateLimitRefillInterval,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DefaultDBDriver,
				MaxOpenConns: DefaultMaxOpenConns,
			},
		},
		Server: Server{
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
