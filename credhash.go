// Package credhash derives and verifies stored password credentials.
//
// A credential is the standard base64 encoding of a 16-byte random salt
// followed by a 32-byte PBKDF2-HMAC-SHA-256 key (100,000 iterations). The
// package never stores anything; callers persist the returned string as an
// opaque value and hand it back for verification.
//
// Basic usage:
//
//	creds, err := credhash.New()
//	encoded, err := creds.Hash("correct horse battery staple")
//	ok := creds.Verify("correct horse battery staple", encoded)
//
// Login handlers should go through Authenticate so that a missing account
// costs the same as a wrong password:
//
//	user, found := users.Lookup(name)
//	ok, err := creds.Authenticate(ctx, pw, user.PasswordHash, found)
package credhash

import (
	"context"
	"log/slog"

	"github.com/aloks98/credhash/password"
)

// Credentials is the main entry point for credential hashing.
// It holds only immutable configuration and is safe for concurrent use.
type Credentials struct {
	config *Config
	hasher *password.PBKDF2Hasher
	logger *slog.Logger
}

// New creates a new Credentials instance with the given options.
func New(opts ...Option) (*Credentials, error) {
	// Start with default config
	cfg := NewConfig()

	// Apply all options to config
	for _, opt := range opts {
		opt(cfg)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "credhash")

	if !cfg.IsDefaultFormat() {
		logger.Warn("non-default credential parameters; records are not interchangeable with the default format",
			"iterations", cfg.Iterations,
			"salt_length", cfg.SaltLength,
			"key_length", cfg.KeyLength,
		)
	}

	return &Credentials{
		config: cfg,
		hasher: password.NewPBKDF2Hasher(cfg.pbkdf2Config(), password.WithLogger(logger)),
		logger: logger,
	}, nil
}

// Config returns the current configuration.
// The returned config should not be modified.
func (c *Credentials) Config() *Config {
	return c.config
}

// Hasher returns the underlying password hasher.
func (c *Credentials) Hasher() password.Hasher {
	return c.hasher
}

// Hash derives an encoded credential from a plaintext password.
// The only error is ErrCryptoUnavailable.
func (c *Credentials) Hash(plaintext string) (string, error) {
	encoded, err := c.hasher.Hash(plaintext)
	if err != nil {
		c.logger.Error("password hashing failed", "error", err)
		return "", WrapError(CodeCryptoUnavailable, err, "failed to hash password")
	}
	return encoded, nil
}

// Verify reports whether plaintext matches encoded. Malformed records
// report false.
func (c *Credentials) Verify(plaintext, encoded string) bool {
	return c.hasher.Verify(plaintext, encoded)
}

// DecoyHash returns a credential for a random throwaway password, built with
// the same parameters as Hash.
func (c *Credentials) DecoyHash() (string, error) {
	encoded, err := c.hasher.DecoyHash()
	if err != nil {
		c.logger.Error("decoy hashing failed", "error", err)
		return "", WrapError(CodeCryptoUnavailable, err, "failed to generate decoy credential")
	}
	return encoded, nil
}

// NeedsRehash reports whether encoded cannot be verified with the current
// configuration and should be replaced on the next password change.
func (c *Credentials) NeedsRehash(encoded string) bool {
	return c.hasher.NeedsRehash(encoded)
}

// CheckRecord validates the structure of an encoded credential without
// verifying any password. Use it for import or migration tooling; login
// paths should rely on Verify, which folds malformed records into false.
func (c *Credentials) CheckRecord(encoded string) error {
	if _, _, err := password.Parse(encoded, c.config.SaltLength, c.config.KeyLength); err != nil {
		return WrapError(CodeMalformedCredential, err, "credential record cannot be decoded")
	}
	return nil
}

// VerifyContext is Verify bounded by ctx. The derivation runs on its own
// goroutine and is never interrupted; if ctx ends first, VerifyContext
// returns ctx.Err() and the eventual result is discarded.
func (c *Credentials) VerifyContext(ctx context.Context, plaintext, encoded string) (bool, error) {
	return c.await(ctx, func() (bool, error) {
		return c.hasher.Verify(plaintext, encoded), nil
	})
}

// Authenticate checks plaintext against the stored credential of an account.
// found reports whether the caller's lookup located the account; when it is
// false, encoded is ignored and the password is run through an equally
// expensive decoy verification, and the result is always false.
//
// Errors are limited to ErrCryptoUnavailable and ctx errors. Wrong passwords,
// missing accounts and malformed records all come back as (false, nil).
func (c *Credentials) Authenticate(ctx context.Context, plaintext, encoded string, found bool) (bool, error) {
	if !found {
		_, err := c.await(ctx, func() (bool, error) {
			return c.hasher.VerifyDecoy(plaintext)
		})
		if err != nil && IsCryptoUnavailable(err) {
			c.logger.Error("decoy verification failed", "error", err)
			return false, WrapError(CodeCryptoUnavailable, err, "failed to run decoy verification")
		}
		return false, err
	}
	return c.VerifyContext(ctx, plaintext, encoded)
}

type verifyResult struct {
	ok  bool
	err error
}

func (c *Credentials) await(ctx context.Context, fn func() (bool, error)) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// Buffered so the worker can always deliver and exit after an abandoned wait.
	done := make(chan verifyResult, 1)
	go func() {
		ok, err := fn()
		done <- verifyResult{ok: ok, err: err}
	}()

	select {
	case r := <-done:
		return r.ok, r.err
	case <-ctx.Done():
		c.logger.Debug("verification abandoned", "error", ctx.Err())
		return false, ctx.Err()
	}
}
