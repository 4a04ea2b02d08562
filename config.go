package credhash

import (
	"fmt"
	"log/slog"

	"github.com/aloks98/credhash/password"
)

// Default configuration values. These define the stored credential format:
// base64(salt[16] || PBKDF2-HMAC-SHA-256(password, salt, 100000)[32]).
const (
	DefaultIterations = password.DefaultPBKDF2Iterations
	DefaultSaltLength = password.DefaultPBKDF2SaltLength
	DefaultKeyLength  = password.DefaultPBKDF2KeyLength

	// MinIterations is the lowest work factor accepted without AllowWeakParameters.
	MinIterations = DefaultIterations

	// MinSaltLength is the minimum salt length in bytes.
	MinSaltLength = 16

	// MinKeyLength is the minimum derived key length in bytes.
	MinKeyLength = 32
)

// Config holds all configuration for a Credentials instance.
type Config struct {
	// Iterations is the PBKDF2 work factor.
	Iterations int

	// SaltLength is the length of the random salt in bytes.
	SaltLength int

	// KeyLength is the length of the derived key in bytes.
	KeyLength int

	// AllowWeakParameters permits Iterations below MinIterations.
	// Only meant for tests.
	AllowWeakParameters bool

	// Logger receives operational events. Passwords and credential
	// records are never logged. Nil discards everything.
	Logger *slog.Logger
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Iterations: DefaultIterations,
		SaltLength: DefaultSaltLength,
		KeyLength:  DefaultKeyLength,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive", ErrConfigInvalid)
	}
	if c.Iterations < MinIterations && !c.AllowWeakParameters {
		return fmt.Errorf("%w: iterations must be at least %d", ErrConfigInvalid, MinIterations)
	}
	if c.SaltLength < MinSaltLength {
		return fmt.Errorf("%w: salt length must be at least %d bytes", ErrConfigInvalid, MinSaltLength)
	}
	if c.KeyLength < MinKeyLength {
		return fmt.Errorf("%w: key length must be at least %d bytes", ErrConfigInvalid, MinKeyLength)
	}
	return nil
}

// IsDefaultFormat returns true if the configuration produces records in the
// default stored format.
func (c *Config) IsDefaultFormat() bool {
	return c.Iterations == DefaultIterations &&
		c.SaltLength == DefaultSaltLength &&
		c.KeyLength == DefaultKeyLength
}

func (c *Config) pbkdf2Config() *password.PBKDF2Config {
	return &password.PBKDF2Config{
		Iterations: c.Iterations,
		SaltLength: c.SaltLength,
		KeyLength:  c.KeyLength,
	}
}
