package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/tarictl/internal/core"
)

// ChainStore persists block headers. The chain tip is derived from the
// highest stored height.
type ChainStore struct {
	db *sql.DB
}

func NewChainStore(db *sql.DB) *ChainStore {
	return &ChainStore{db: db}
}

// Metadata reports the current chain tip. Height is nil when no headers are
// stored at all.
func (s *ChainStore) Metadata(ctx context.Context) (core.ChainMetadata, error) {
	query := `SELECT height, hash FROM headers ORDER BY height DESC LIMIT 1`

	var height uint64
	var hash string
	err := s.db.QueryRowContext(ctx, query).Scan(&height, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return core.ChainMetadata{}, nil
	}
	if err != nil {
		return core.ChainMetadata{}, fmt.Errorf("failed to query chain tip: %w", err)
	}

	return core.ChainMetadata{
		Height:                &height,
		BestBlock:             hash,
		AccumulatedDifficulty: height + 1,
	}, nil
}

// Headers fetches the stored headers for the requested heights. Heights
// with no stored header are skipped, not errors.
func (s *ChainStore) Headers(ctx context.Context, heights []uint64) ([]core.BlockHeader, error) {
	query := `SELECT height, hash, prev_hash, timestamp FROM headers WHERE height = ?`

	headers := make([]core.BlockHeader, 0, len(heights))
	for _, h := range heights {
		var header core.BlockHeader
		var ts int64
		err := s.db.QueryRowContext(ctx, query, h).Scan(&header.Height, &header.Hash, &header.PrevHash, &ts)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query header at height %d: %w", h, err)
		}
		header.Timestamp = time.Unix(ts, 0)
		headers = append(headers, header)
	}
	return headers, nil
}

func (s *ChainStore) InsertHeader(ctx context.Context, header core.BlockHeader) error {
	query := `INSERT OR REPLACE INTO headers (height, hash, prev_hash, timestamp) VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, header.Height, header.Hash, header.PrevHash, header.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert header: %w", err)
	}
	return nil
}

// EnsureGenesis inserts the height-0 header when the store is empty so a
// fresh node always has a chain tip.
func (s *ChainStore) EnsureGenesis(ctx context.Context) error {
	meta, err := s.Metadata(ctx)
	if err != nil {
		return err
	}
	if meta.Height != nil {
		return nil
	}
	sum := sha256.Sum256([]byte("tarictl genesis"))
	return s.InsertHeader(ctx, core.BlockHeader{
		Height:    0,
		Hash:      hex.EncodeToString(sum[:]),
		PrevHash:  hex.EncodeToString(make([]byte, sha256.Size)),
		Timestamp: time.Unix(0, 0),
	})
}
