package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sandevgo/tarictl/internal/core"
)

func newTestDB(t *testing.T) *ChainStore {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "chain.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewChainStore(db)
}

func TestChainStore_EmptyMetadata(t *testing.T) {
	store := newTestDB(t)

	meta, err := store.Metadata(context.Background())
	require.NoError(t, err)
	require.Nil(t, meta.Height)
}

func TestChainStore_HeaderRoundTrip(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	for h := uint64(0); h <= 10; h++ {
		err := store.InsertHeader(ctx, core.BlockHeader{
			Height:    h,
			Hash:      "hash",
			PrevHash:  "prev",
			Timestamp: time.Unix(int64(h)*600, 0),
		})
		require.NoError(t, err)
	}

	meta, err := store.Metadata(ctx)
	require.NoError(t, err)
	require.NotNil(t, meta.Height)
	require.Equal(t, uint64(10), *meta.Height)

	headers, err := store.Headers(ctx, []uint64{10, 9, 8})
	require.NoError(t, err)
	require.Len(t, headers, 3)
	require.Equal(t, uint64(10), headers[0].Height)

	// Missing heights are skipped, not errors.
	headers, err = store.Headers(ctx, []uint64{10, 99})
	require.NoError(t, err)
	require.Len(t, headers, 1)
}

func TestChainStore_EnsureGenesis(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.EnsureGenesis(ctx))

	meta, err := store.Metadata(ctx)
	require.NoError(t, err)
	require.NotNil(t, meta.Height)
	require.Equal(t, uint64(0), *meta.Height)
	genesisHash := meta.BestBlock

	// A second call must not replace the existing chain.
	require.NoError(t, store.EnsureGenesis(ctx))
	meta, err = store.Metadata(ctx)
	require.NoError(t, err)
	require.Equal(t, genesisHash, meta.BestBlock)
}
