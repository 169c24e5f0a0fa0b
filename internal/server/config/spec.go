package config

import "time"

// ServerConfig is the root configuration for fleetdesk-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Auth    AuthSection    `koanf:"auth"`
	Storage StorageSection `koanf:"storage"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures the HTTP server.
type ServerSection struct {
	// Addr is the listen address (host:port).
	Addr string `koanf:"addr"`

	// ReadTimeout bounds reading the request including the body.
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout bounds the graceful shutdown drain.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimit configures per-client request throttling.
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig configures the per-IP token bucket.
type RateLimitConfig struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps"`
	Burst   int     `koanf:"burst"`
}

// AuthSection configures authentication and token issuance.
type AuthSection struct {
	// SecretKey signs issued tokens. Required: the server refuses to
	// start without it.
	SecretKey string `koanf:"secret_key"`

	// TokenTTL is the issued token lifetime.
	TokenTTL time.Duration `koanf:"token_ttl"`

	// PasswordScheme selects how stored credentials are compared
	// (plaintext or bcrypt).
	PasswordScheme string `koanf:"password_scheme"`
}

// StorageSection configures the persistence backend.
type StorageSection struct {
	// Driver selects the backend (memory or sqlite).
	Driver string `koanf:"driver"`

	// DSN is the database connection string (sqlite file path).
	DSN string `koanf:"dsn"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
