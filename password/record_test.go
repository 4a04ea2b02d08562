package password

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	salt := []byte("saltsaltsaltsalt")
	key := bytes.Repeat([]byte{0xFF}, 32)

	got := Encode(salt, key)
	if len(got) != 64 {
		t.Errorf("len = %d, want 64", len(got))
	}
	if got[:20] != "c2FsdHNhbHRzYWx0c2Fs" {
		t.Errorf("encoded prefix = %q, salt should come first", got[:20])
	}
}

func TestParse(t *testing.T) {
	salt := []byte("saltsaltsaltsalt")
	key := bytes.Repeat([]byte{7}, 32)

	gotSalt, gotKey, err := Parse(Encode(salt, key), 16, 32)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !bytes.Equal(gotSalt, salt) {
		t.Errorf("salt = %x, want %x", gotSalt, salt)
	}
	if !bytes.Equal(gotKey, key) {
		t.Errorf("key = %x, want %x", gotKey, key)
	}
}

func TestParse_SaltDoesNotAliasKey(t *testing.T) {
	salt, key, err := Parse(Encode(make([]byte, 16), make([]byte, 32)), 16, 32)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	salt = append(salt, 0xEE)
	if key[0] != 0 {
		t.Error("appending to salt must not overwrite the key")
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"invalid characters", "%%%%"},
		{"missing padding", "c2FsdA"},
		{"too short", Encode(make([]byte, 16), make([]byte, 31))},
		{"too long", Encode(make([]byte, 16), make([]byte, 33))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.encoded, 16, 32)
			if !errors.Is(err, ErrMalformedCredential) {
				t.Errorf("expected ErrMalformedCredential, got %v", err)
			}
		})
	}
}
