package password

import "errors"

var (
	// ErrCryptoUnavailable is returned when the random source cannot supply
	// the bytes needed for a salt or decoy.
	ErrCryptoUnavailable = errors.New("secure random source is unavailable")

	// ErrMalformedCredential is returned by Parse when an encoded credential
	// is not valid base64 or does not decode to the expected length.
	ErrMalformedCredential = errors.New("credential record is malformed")
)
