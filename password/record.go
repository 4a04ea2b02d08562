package password

import (
	"encoding/base64"
	"fmt"
)

// Encode joins salt and key, salt first, and returns the standard base64
// encoding of the result.
func Encode(salt, key []byte) string {
	buf := make([]byte, 0, len(salt)+len(key))
	buf = append(buf, salt...)
	buf = append(buf, key...)
	return base64.StdEncoding.EncodeToString(buf)
}

// Parse decodes an encoded credential and splits it at saltLen.
// The decoded length must be exactly saltLen+keyLen.
func Parse(encoded string, saltLen, keyLen int) (salt, key []byte, err error) {
	if saltLen < 0 || keyLen < 0 {
		return nil, nil, fmt.Errorf("%w: negative layout %d/%d", ErrMalformedCredential, saltLen, keyLen)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}
	if len(raw) != saltLen+keyLen {
		return nil, nil, fmt.Errorf("%w: decoded length %d, want %d",
			ErrMalformedCredential, len(raw), saltLen+keyLen)
	}
	return raw[:saltLen:saltLen], raw[saltLen:], nil
}
