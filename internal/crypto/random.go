// Package crypto provides cryptographic utilities.
package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// idAlphabet is the character set used by GenerateRandomID.
const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// maxUnbiased is the largest byte value accepted by GenerateRandomID.
// 248 is the greatest multiple of len(idAlphabet) that fits in a byte.
const maxUnbiased = 256 - 256%len(idAlphabet)

// GenerateRandomBytes reads n bytes from r.
// A nil r uses crypto/rand.
func GenerateRandomBytes(r io.Reader, n int) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// GenerateRandomID generates an n-character alphanumeric identifier.
// Every character is drawn uniformly from [0-9A-Za-z]; bytes that would bias
// the distribution are rejected and redrawn.
func GenerateRandomID(r io.Reader, n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		b, err := GenerateRandomBytes(r, len(buf))
		if err != nil {
			return "", err
		}
		for _, c := range b {
			if int(c) >= maxUnbiased {
				continue
			}
			out = append(out, idAlphabet[int(c)%len(idAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
