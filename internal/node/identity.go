package node

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/sandevgo/tarictl/internal/core"
)

// nodeIDBytes is how much of the hashed public key forms the node id.
const nodeIDBytes = 13

// NewIdentity builds the node identity from a configured hex public key, or
// generates a fresh random one when none is configured. The node id is
// always derived from the public key when not set explicitly.
func NewIdentity(publicKeyHex, nodeID, publicAddress string) (core.NodeIdentity, error) {
	var pk core.PublicKey
	if publicKeyHex == "" {
		if _, err := rand.Read(pk[:]); err != nil {
			return core.NodeIdentity{}, fmt.Errorf("failed to generate public key: %w", err)
		}
	} else {
		var err error
		pk, err = core.PublicKeyFromHex(publicKeyHex)
		if err != nil {
			return core.NodeIdentity{}, err
		}
	}

	if nodeID == "" {
		nodeID = DeriveNodeID(pk)
	}

	return core.NodeIdentity{
		PublicKey:     pk,
		NodeID:        nodeID,
		PublicAddress: publicAddress,
	}, nil
}

func DeriveNodeID(pk core.PublicKey) string {
	sum := sha256.Sum256(pk[:])
	return hex.EncodeToString(sum[:nodeIDBytes])
}
