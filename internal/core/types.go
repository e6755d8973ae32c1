package core

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/tarictl/pkg/emoji"
)

// MicroTari is an amount of Tari denominated in micro-units.
type MicroTari uint64

func (m MicroTari) String() string {
	return fmt.Sprintf("%d µT", uint64(m))
}

// Balance is a snapshot of the wallet output manager's view of funds.
type Balance struct {
	Available       MicroTari
	PendingIncoming MicroTari
	PendingOutgoing MicroTari
}

func (b Balance) String() string {
	return fmt.Sprintf(
		"Available balance: %s\nPending incoming balance: %s\nPending outgoing balance: %s",
		b.Available, b.PendingIncoming, b.PendingOutgoing,
	)
}

// PublicKeySize is the byte length of a node or wallet public key.
const PublicKeySize = 32

type PublicKey [PublicKeySize]byte

func (pk PublicKey) Hex() string {
	return hex.EncodeToString(pk[:])
}

func (pk PublicKey) String() string {
	return pk.Hex()
}

// Emoji returns the emoji-encoded form of the key.
func (pk PublicKey) Emoji() string {
	return emoji.Encode(pk[:])
}

func PublicKeyFromHex(s string) (PublicKey, error) {
	var pk PublicKey
	raw, err := hex.DecodeString(s)
	if err != nil {
		return pk, fmt.Errorf("invalid hex public key: %w", err)
	}
	if len(raw) != PublicKeySize {
		return pk, fmt.Errorf("invalid public key length: got %d bytes, want %d", len(raw), PublicKeySize)
	}
	copy(pk[:], raw)
	return pk, nil
}

func PublicKeyFromEmoji(s string) (PublicKey, error) {
	var pk PublicKey
	raw, err := emoji.Decode(s)
	if err != nil {
		return pk, err
	}
	if len(raw) != PublicKeySize {
		return pk, fmt.Errorf("invalid public key length: got %d bytes, want %d", len(raw), PublicKeySize)
	}
	copy(pk[:], raw)
	return pk, nil
}

// PublicKeyFromString parses a key from its hex form, falling back to the
// emoji encoding when hex decoding fails.
func PublicKeyFromString(s string) (PublicKey, error) {
	pk, err := PublicKeyFromHex(s)
	if err == nil {
		return pk, nil
	}
	return PublicKeyFromEmoji(s)
}

// NodeIdentity describes this node to its peers. It is immutable for the
// lifetime of a session.
type NodeIdentity struct {
	PublicKey     PublicKey
	NodeID        string
	PublicAddress string
}

func (n NodeIdentity) String() string {
	return fmt.Sprintf(
		"Public Key: %s\nNode ID: %s\nPublic Address: %s",
		n.PublicKey, n.NodeID, n.PublicAddress,
	)
}

// ChainMetadata is the chain-query service's summary of the local chain
// state. Height is nil when the node has no blocks at all.
type ChainMetadata struct {
	Height                *uint64
	BestBlock             string
	AccumulatedDifficulty uint64
}

func (m ChainMetadata) String() string {
	height := "None"
	if m.Height != nil {
		height = fmt.Sprintf("%d", *m.Height)
	}
	return fmt.Sprintf(
		"Height of longest chain: %s\nBest block: %s\nAccumulated difficulty: %d",
		height, m.BestBlock, m.AccumulatedDifficulty,
	)
}

type BlockHeader struct {
	Height    uint64
	Hash      string
	PrevHash  string
	Timestamp time.Time
}

func (h BlockHeader) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Height: %d\n", h.Height)
	fmt.Fprintf(&sb, "Hash: %s\n", h.Hash)
	fmt.Fprintf(&sb, "Prev hash: %s\n", h.PrevHash)
	fmt.Fprintf(&sb, "Timestamp: %s", h.Timestamp.UTC().Format(time.RFC1123))
	return sb.String()
}

type Peer struct {
	PublicKey PublicKey
	Address   string
	LastSeen  time.Time
}

func (p Peer) String() string {
	return fmt.Sprintf("%s @ %s (last seen %s)", p.PublicKey, p.Address, p.LastSeen.UTC().Format(time.RFC1123))
}

type ConnectionDirection string

const (
	Inbound  ConnectionDirection = "inbound"
	Outbound ConnectionDirection = "outbound"
)

type Connection struct {
	PeerPublicKey PublicKey
	Address       string
	Direction     ConnectionDirection
}

func (c Connection) String() string {
	return fmt.Sprintf("%s via %s (%s)", c.PeerPublicKey, c.Address, c.Direction)
}
