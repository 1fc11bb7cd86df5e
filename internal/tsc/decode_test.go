package tsc

import (
	"bytes"
	"testing"
)

// encrypt mirrors Decrypt's own rule (XOR every byte but the middle one
// against the middle byte), so applying it twice round-trips: the middle
// byte carries the key and is never itself touched.
func encrypt(plain []byte) []byte {
	out := make([]byte, len(plain))
	copy(out, plain)
	mid := len(out) / 2
	key := out[mid]
	for i := range out {
		if i != mid {
			out[i] ^= key
		}
	}
	return out
}

func TestDecryptRoundTrip(t *testing.T) {
	plain := []byte("#0100\n<MSGHello<END\n")
	cipher := encrypt(plain)

	got, err := Decrypt(cipher)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("got %q, want %q", got, plain)
	}
}

func TestDecryptEmptyReturnsError(t *testing.T) {
	if _, err := Decrypt(nil); err != ErrEmptyScript {
		t.Fatalf("expected ErrEmptyScript, got %v", err)
	}
}

func TestDecryptShortBufferUnchanged(t *testing.T) {
	got, err := Decrypt([]byte{0x42})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x42}) {
		t.Fatalf("expected single-byte buffer unchanged, got %v", got)
	}
}
