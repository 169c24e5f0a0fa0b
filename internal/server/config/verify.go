package config

import (
	"errors"
	"fmt"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
)

// Verify validates the configuration. A missing signing key is fatal:
// it returns ErrMissingSigningKey so the caller can refuse to start.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyAuth(&cfg.Auth); err != nil {
		return err
	}
	return verifyStorage(&cfg.Storage)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.Addr == "" {
		return errors.New("server.addr is required")
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RPS <= 0 {
			return errors.New("server.rate_limit.rps must be positive")
		}
		if cfg.RateLimit.Burst < 1 {
			return errors.New("server.rate_limit.burst must be at least 1")
		}
	}
	return nil
}

func verifyAuth(cfg *AuthSection) error {
	if cfg.SecretKey == "" {
		return domain.ErrMissingSigningKey
	}
	if cfg.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	switch cfg.PasswordScheme {
	case "plaintext", "bcrypt":
	default:
		return fmt.Errorf("auth.password_scheme %q is not supported (plaintext, bcrypt)", cfg.PasswordScheme)
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	switch cfg.Driver {
	case "memory":
	case "sqlite":
		if cfg.DSN == "" {
			return errors.New("storage.dsn is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("storage.driver %q is not supported (memory, sqlite)", cfg.Driver)
	}
	return nil
}
