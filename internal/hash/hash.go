// Package hash provides comparison helpers for derived key material.
package hash

import (
	"crypto/subtle"
)

// ConstantTimeCompareBytes reports whether a and b are equal.
// The running time depends only on the lengths of the inputs, never on
// where they first differ.
func ConstantTimeCompareBytes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
