package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/tarictl/internal/core"
)

// PeerStore persists the peer directory.
type PeerStore struct {
	db *sql.DB
}

func NewPeerStore(db *sql.DB) *PeerStore {
	return &PeerStore{db: db}
}

func (s *PeerStore) Peers(ctx context.Context) ([]core.Peer, error) {
	query := `SELECT public_key, address, last_seen FROM peers ORDER BY last_seen DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query peers: %w", err)
	}
	defer rows.Close()

	var peers []core.Peer
	for rows.Next() {
		var rawKey string
		var lastSeen int64
		var peer core.Peer
		if err := rows.Scan(&rawKey, &peer.Address, &lastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan peer: %w", err)
		}
		peer.PublicKey, err = core.PublicKeyFromHex(rawKey)
		if err != nil {
			return nil, fmt.Errorf("corrupt peer row: %w", err)
		}
		peer.LastSeen = time.Unix(lastSeen, 0)
		peers = append(peers, peer)
	}
	return peers, rows.Err()
}

func (s *PeerStore) Upsert(ctx context.Context, peer core.Peer) error {
	query := `INSERT OR REPLACE INTO peers (public_key, address, last_seen) VALUES (?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, peer.PublicKey.Hex(), peer.Address, peer.LastSeen.Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert peer: %w", err)
	}
	return nil
}
