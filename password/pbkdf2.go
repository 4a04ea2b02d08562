package password

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/crypto/pbkdf2"

	"github.com/aloks98/credhash/internal/crypto"
	"github.com/aloks98/credhash/internal/hash"
)

// Defaults for PBKDF2 hashing. Stored credentials depend on these values;
// changing them makes existing records unverifiable.
const (
	DefaultPBKDF2Iterations = 100000
	DefaultPBKDF2SaltLength = 16
	DefaultPBKDF2KeyLength  = 32

	// DecoyPasswordLength is the length of the throwaway plaintext behind a decoy credential.
	DecoyPasswordLength = 12
)

// PBKDF2Config holds the configuration for PBKDF2-HMAC-SHA-256 hashing.
type PBKDF2Config struct {
	// Iterations is the PBKDF2 work factor.
	Iterations int

	// SaltLength is the length of the random salt in bytes.
	SaltLength int

	// KeyLength is the length of the derived key in bytes.
	KeyLength int
}

// DefaultPBKDF2Config returns the parameters of the stored credential format.
func DefaultPBKDF2Config() *PBKDF2Config {
	return &PBKDF2Config{
		Iterations: DefaultPBKDF2Iterations,
		SaltLength: DefaultPBKDF2SaltLength,
		KeyLength:  DefaultPBKDF2KeyLength,
	}
}

// HasherOption configures a PBKDF2Hasher.
type HasherOption func(*PBKDF2Hasher)

// WithLogger sets the logger used to report rejected credential records.
// Records, salts and passwords are never logged.
func WithLogger(logger *slog.Logger) HasherOption {
	return func(h *PBKDF2Hasher) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// PBKDF2Hasher implements the Hasher interface using PBKDF2-HMAC-SHA-256.
// It holds no mutable state and is safe for concurrent use.
type PBKDF2Hasher struct {
	config *PBKDF2Config
	logger *slog.Logger

	// random is the entropy source for salts and decoys. nil means crypto/rand.
	random io.Reader
}

// NewPBKDF2Hasher creates a new PBKDF2 hasher with the given configuration.
// If config is nil, DefaultPBKDF2Config is used. Non-positive fields fall
// back to their defaults.
func NewPBKDF2Hasher(config *PBKDF2Config, opts ...HasherOption) *PBKDF2Hasher {
	cfg := DefaultPBKDF2Config()
	if config != nil {
		if config.Iterations > 0 {
			cfg.Iterations = config.Iterations
		}
		if config.SaltLength > 0 {
			cfg.SaltLength = config.SaltLength
		}
		if config.KeyLength > 0 {
			cfg.KeyLength = config.KeyLength
		}
	}

	h := &PBKDF2Hasher{
		config: cfg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Config returns a copy of the hasher's parameters.
func (h *PBKDF2Hasher) Config() PBKDF2Config {
	return *h.config
}

// Hash derives a key from password under a fresh random salt and returns the
// encoded credential. Two calls with the same password produce different
// results. The only failure is an unavailable random source.
func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt, err := crypto.GenerateRandomBytes(h.random, h.config.SaltLength)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCryptoUnavailable, err)
	}

	key := h.derive(password, salt)
	encoded := Encode(salt, key)
	clear(key)
	return encoded, nil
}

// Verify checks if a password matches an encoded credential.
// Undecodable records and records of the wrong length report false after
// running a throwaway derivation.
func (h *PBKDF2Hasher) Verify(password, encoded string) bool {
	salt, stored, err := Parse(encoded, h.config.SaltLength, h.config.KeyLength)
	if err != nil {
		h.logger.Debug("rejected credential record", "error", err)
		// Same derivation cost as a well-formed record.
		clear(h.derive(password, make([]byte, h.config.SaltLength)))
		return false
	}

	derived := h.derive(password, salt)
	defer clear(derived)

	// Constant-time comparison to prevent timing attacks
	return hash.ConstantTimeCompareBytes(derived, stored)
}

// NeedsRehash reports whether encoded cannot be verified under this hasher's
// configuration.
func (h *PBKDF2Hasher) NeedsRehash(encoded string) bool {
	_, _, err := Parse(encoded, h.config.SaltLength, h.config.KeyLength)
	return err != nil
}

// DecoyHash hashes a random throwaway password. Verifying against the result
// costs exactly as much as verifying against a real credential, which lets
// callers mask whether an account exists. No password matches it in practice.
func (h *PBKDF2Hasher) DecoyHash() (string, error) {
	plain, err := crypto.GenerateRandomID(h.random, DecoyPasswordLength)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCryptoUnavailable, err)
	}
	return h.Hash(plain)
}

// VerifyDecoy runs one derivation and one comparison against a freshly drawn
// random record, which is the same work Verify does on a well-formed record.
// It reports false barring a negligible coincidence. Use it when the account
// being authenticated does not exist.
func (h *PBKDF2Hasher) VerifyDecoy(password string) (bool, error) {
	record, err := crypto.GenerateRandomBytes(h.random, h.config.SaltLength+h.config.KeyLength)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCryptoUnavailable, err)
	}
	salt, stored := record[:h.config.SaltLength], record[h.config.SaltLength:]

	derived := h.derive(password, salt)
	defer clear(derived)

	return hash.ConstantTimeCompareBytes(derived, stored), nil
}

func (h *PBKDF2Hasher) derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, h.config.Iterations, h.config.KeyLength, sha256.New)
}

// Ensure PBKDF2Hasher implements Hasher.
var _ Hasher = (*PBKDF2Hasher)(nil)
