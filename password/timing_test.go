package password

import (
	"encoding/base64"
	"slices"
	"testing"
	"time"
)

// TestPBKDF2Hasher_VerifyTimingIndependentOfMismatchPosition measures Verify
// against records whose stored key differs from the derived key only in the
// first or only in the last byte. The medians of the two populations must
// stay close.
func TestPBKDF2Hasher_VerifyTimingIndependentOfMismatchPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical timing test skipped in short mode")
	}

	h := NewPBKDF2Hasher(fastConfig())
	encoded, err := h.Hash("password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, _ := base64.StdEncoding.DecodeString(encoded)

	early := append([]byte{}, raw...)
	early[16] ^= 0xFF
	late := append([]byte{}, raw...)
	late[len(late)-1] ^= 0xFF
	earlyRecord := base64.StdEncoding.EncodeToString(early)
	lateRecord := base64.StdEncoding.EncodeToString(late)

	const samples = 4000
	earlyTimes := make([]time.Duration, 0, samples)
	lateTimes := make([]time.Duration, 0, samples)

	// Interleave the two populations so drift affects both equally.
	for i := 0; i < samples; i++ {
		start := time.Now()
		if h.Verify("password", earlyRecord) {
			t.Fatal("tampered record verified")
		}
		earlyTimes = append(earlyTimes, time.Since(start))

		start = time.Now()
		if h.Verify("password", lateRecord) {
			t.Fatal("tampered record verified")
		}
		lateTimes = append(lateTimes, time.Since(start))
	}

	em, lm := median(earlyTimes), median(lateTimes)
	ratio := float64(em) / float64(lm)
	t.Logf("median early=%v late=%v ratio=%.3f", em, lm, ratio)
	if ratio < 0.67 || ratio > 1.5 {
		t.Errorf("verify timing depends on mismatch position: early=%v late=%v", em, lm)
	}
}

func median(d []time.Duration) time.Duration {
	s := slices.Clone(d)
	slices.Sort(s)
	return s[len(s)/2]
}

func BenchmarkPBKDF2Hasher_Hash(b *testing.B) {
	h := NewPBKDF2Hasher(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Hash("bench-password")
	}
}

func BenchmarkPBKDF2Hasher_Verify(b *testing.B) {
	h := NewPBKDF2Hasher(nil)
	encoded, _ := h.Hash("bench-password")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Verify("bench-password", encoded)
	}
}

func BenchmarkPBKDF2Hasher_VerifyDecoy(b *testing.B) {
	h := NewPBKDF2Hasher(nil)
	decoy, _ := h.DecoyHash()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Verify("bench-password", decoy)
	}
}
