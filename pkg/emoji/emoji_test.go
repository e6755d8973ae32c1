package emoji

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	decoded, err := Decode(Encode(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Error("round trip did not preserve data")
	}
}

func TestEncode_Empty(t *testing.T) {
	if got := Encode(nil); got != "" {
		t.Errorf("Encode(nil) = %q, want empty", got)
	}
}

func TestDecode_RejectsForeignRunes(t *testing.T) {
	tests := []string{
		"hello",
		"0b0b0b",
		"🐀x",   // alphabet rune followed by ASCII
		"❤", // heart emoji outside the alphabet block
	}
	for _, s := range tests {
		if _, err := Decode(s); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", s)
		}
	}
}

func TestDecode_Empty(t *testing.T) {
	decoded, err := Decode("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("Decode(\"\") = %v, want empty", decoded)
	}
}
