package core

import (
	"strings"
	"testing"
)

func TestMicroTari_String(t *testing.T) {
	if got := MicroTari(100).String(); got != "100 µT" {
		t.Errorf("String() = %q, want %q", got, "100 µT")
	}
	if got := MicroTari(0).String(); got != "0 µT" {
		t.Errorf("String() = %q, want %q", got, "0 µT")
	}
}

func TestBalance_String(t *testing.T) {
	b := Balance{Available: 500, PendingIncoming: 10, PendingOutgoing: 2}
	want := "Available balance: 500 µT\nPending incoming balance: 10 µT\nPending outgoing balance: 2 µT"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func testKey(fill byte) PublicKey {
	var pk PublicKey
	for i := range pk {
		pk[i] = fill
	}
	return pk
}

func TestPublicKey_HexRoundTrip(t *testing.T) {
	pk := testKey(0x7f)
	parsed, err := PublicKeyFromHex(pk.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != pk {
		t.Error("hex round trip did not preserve the key")
	}
}

func TestPublicKey_EmojiRoundTrip(t *testing.T) {
	pk := testKey(0x42)
	parsed, err := PublicKeyFromEmoji(pk.Emoji())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != pk {
		t.Error("emoji round trip did not preserve the key")
	}
}

func TestPublicKeyFromString(t *testing.T) {
	pk := testKey(0x11)

	fromHex, err := PublicKeyFromString(pk.Hex())
	if err != nil || fromHex != pk {
		t.Errorf("hex form not accepted: %v", err)
	}

	fromEmoji, err := PublicKeyFromString(pk.Emoji())
	if err != nil || fromEmoji != pk {
		t.Errorf("emoji fallback not accepted: %v", err)
	}

	invalid := []string{
		"",
		"zzzz",
		strings.Repeat("ab", 16), // valid hex, wrong length
		pk.Hex() + "00",          // too long
	}
	for _, s := range invalid {
		if _, err := PublicKeyFromString(s); err == nil {
			t.Errorf("PublicKeyFromString(%q) succeeded, want error", s)
		}
	}
}

func TestChainMetadata_StringWithoutHeight(t *testing.T) {
	m := ChainMetadata{}
	if !strings.Contains(m.String(), "Height of longest chain: None") {
		t.Errorf("String() = %q", m.String())
	}
}

func TestNodeIdentity_String(t *testing.T) {
	n := NodeIdentity{PublicKey: testKey(0x01), NodeID: "abc123", PublicAddress: "/ip4/1.2.3.4/tcp/18189"}
	out := n.String()
	for _, want := range []string{"Public Key: ", "Node ID: abc123", "Public Address: /ip4/1.2.3.4/tcp/18189"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() = %q, missing %q", out, want)
		}
	}
}
