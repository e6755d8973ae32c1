package console

import (
	"testing"
)

func TestCommand_ParseRenderRoundTrip(t *testing.T) {
	for cmd := Command(0); cmd < numCommands; cmd++ {
		parsed, err := ParseCommand(cmd.String())
		if err != nil {
			t.Fatalf("ParseCommand(%q) returned error: %v", cmd.String(), err)
		}
		if parsed != cmd {
			t.Errorf("ParseCommand(%q) = %v, want %v", cmd.String(), parsed, cmd)
		}
	}
}

func TestParseCommand_EmptyDefaultsToHelp(t *testing.T) {
	cmd, err := ParseCommand("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != Help {
		t.Errorf("ParseCommand(\"\") = %v, want Help", cmd)
	}
}

func TestParseCommand_Unknown(t *testing.T) {
	tests := []string{
		"not-a-command",
		"HELP",
		"get-balanc",
		"get-balance ",
		"send_tari",
	}
	for _, token := range tests {
		if _, err := ParseCommand(token); err == nil {
			t.Errorf("ParseCommand(%q) succeeded, want error", token)
		}
	}
}

func TestTokens_DeclarationOrder(t *testing.T) {
	want := []string{
		"help",
		"get-balance",
		"send-tari",
		"get-chain-metadata",
		"list-peers",
		"list-connections",
		"list-headers",
		"whoami",
		"toggle-mining",
		"quit",
		"exit",
	}
	got := Tokens()
	if len(got) != len(want) {
		t.Fatalf("Tokens() returned %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokens()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokens_ReturnsCopy(t *testing.T) {
	tokens := Tokens()
	tokens[0] = "mangled"
	if Tokens()[0] != "help" {
		t.Error("mutating the returned slice changed the vocabulary")
	}
}
