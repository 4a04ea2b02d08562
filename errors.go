package credhash

import (
	"errors"
	"fmt"

	"github.com/aloks98/credhash/password"
)

// Error codes for categorizing errors.
const (
	CodeCryptoUnavailable   = "CRYPTO_UNAVAILABLE"
	CodeMalformedCredential = "MALFORMED_CREDENTIAL"
	CodeConfigInvalid       = "CONFIG_INVALID"
)

// Sentinel errors for use with errors.Is().
var (
	// Crypto errors
	ErrCryptoUnavailable = password.ErrCryptoUnavailable

	// Credential record errors. Verification never returns this; it only
	// comes back from CheckRecord.
	ErrMalformedCredential = password.ErrMalformedCredential

	// Config errors
	ErrConfigInvalid = errors.New("configuration is invalid")
)

// CredentialError is a structured error type that includes an error code and optional wrapped error.
type CredentialError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *CredentialError) Unwrap() error {
	return e.Err
}

// NewCredentialError creates a new CredentialError with the given code, message, and optional wrapped error.
func NewCredentialError(code, message string, err error) *CredentialError {
	return &CredentialError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WrapError wraps a sentinel error with additional context.
func WrapError(code string, err error, message string) *CredentialError {
	return &CredentialError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCryptoUnavailable returns true if the error means the platform could not
// supply secure randomness.
func IsCryptoUnavailable(err error) bool {
	return errors.Is(err, ErrCryptoUnavailable)
}

// IsMalformedCredential returns true if the error reports an unreadable credential record.
func IsMalformedCredential(err error) bool {
	return errors.Is(err, ErrMalformedCredential)
}

// IsConfigError returns true if the error is a configuration-related error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigInvalid)
}
