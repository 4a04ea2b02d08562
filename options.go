package credhash

import (
	"log/slog"
)

// Option is a function that modifies the configuration.
type Option func(*Config)

// WithLogger sets the logger for operational events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithIterations sets the PBKDF2 work factor.
// Records hashed with one value cannot be verified with another.
func WithIterations(n int) Option {
	return func(c *Config) {
		c.Iterations = n
	}
}

// WithSaltLength sets the salt length in bytes.
func WithSaltLength(n int) Option {
	return func(c *Config) {
		c.SaltLength = n
	}
}

// WithKeyLength sets the derived key length in bytes.
func WithKeyLength(n int) Option {
	return func(c *Config) {
		c.KeyLength = n
	}
}

// WithWeakParameters allows iteration counts below MinIterations.
// Use it in tests only.
func WithWeakParameters() Option {
	return func(c *Config) {
		c.AllowWeakParameters = true
	}
}
