// Package console implements the operator console core: the command
// vocabulary, line parsing, completion, and dispatch to per-command
// handlers. Backend work is handed off to a task runner so the input loop
// is never blocked on a service call.
package console

import "fmt"

// Command is one of the fixed console commands.
type Command int

const (
	Help Command = iota
	GetBalance
	SendTari
	GetChainMetadata
	ListPeers
	ListConnections
	ListHeaders
	Whoami
	ToggleMining
	Quit
	Exit

	numCommands
)

// commandTokens maps each command to its canonical token. The table is the
// contract: parsing and rendering both go through it, so they stay mutual
// inverses.
var commandTokens = [numCommands]string{
	Help:             "help",
	GetBalance:       "get-balance",
	SendTari:         "send-tari",
	GetChainMetadata: "get-chain-metadata",
	ListPeers:        "list-peers",
	ListConnections:  "list-connections",
	ListHeaders:      "list-headers",
	Whoami:           "whoami",
	ToggleMining:     "toggle-mining",
	Quit:             "quit",
	Exit:             "exit",
}

func (c Command) String() string {
	if c < 0 || c >= numCommands {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandTokens[c]
}

// Tokens returns every canonical token in declaration order.
func Tokens() []string {
	tokens := make([]string, numCommands)
	copy(tokens, commandTokens[:])
	return tokens
}

// ParseCommand resolves a token to its command. Matching is exact; there is
// no fuzzy matching or abbreviation. The empty token resolves to Help.
func ParseCommand(token string) (Command, error) {
	if token == "" {
		return Help, nil
	}
	for cmd, t := range commandTokens {
		if t == token {
			return Command(cmd), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", token)
}
