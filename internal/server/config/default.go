package config

import "time"

// Default configuration values.
const (
	DefaultAddr            = "127.0.0.1:8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 15 * time.Second

	DefaultRateLimitRPS   = 50.0
	DefaultRateLimitBurst = 100

	DefaultTokenTTL       = 24 * time.Hour
	DefaultPasswordScheme = "plaintext"

	DefaultStorageDriver = "memory"
	DefaultSQLiteDSN     = "file:fleetdesk.db?_pragma=busy_timeout(5000)"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
//
// The token signing key deliberately has no default: it must come from
// the environment or a config file.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			Addr:            DefaultAddr,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     DefaultRateLimitRPS,
				Burst:   DefaultRateLimitBurst,
			},
		},
		Auth: AuthSection{
			TokenTTL:       DefaultTokenTTL,
			PasswordScheme: DefaultPasswordScheme,
		},
		Storage: StorageSection{
			Driver: DefaultStorageDriver,
			DSN:    DefaultSQLiteDSN,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
