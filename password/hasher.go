// Package password provides password hashing and verification.
//
// The stored credential is the standard base64 encoding of a random salt
// followed by a PBKDF2-HMAC-SHA-256 derived key. With the default
// configuration that is a 16-byte salt, a 32-byte key and 100,000 iterations,
// giving a 64-character string. The format carries no version tag, so a hasher
// can only verify records produced under the same configuration.
package password

// Hasher defines the interface for password hashing algorithms.
type Hasher interface {
	// Hash creates an encoded credential from a password.
	Hash(password string) (string, error)

	// Verify reports whether a password matches an encoded credential.
	// Malformed credentials never match.
	Verify(password, encoded string) bool

	// NeedsRehash checks if a credential needs to be regenerated.
	// Returns true if the credential cannot be verified by this hasher.
	NeedsRehash(encoded string) bool
}
