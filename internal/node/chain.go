package node

import (
	"context"

	"github.com/sandevgo/tarictl/internal/core"
	"github.com/sandevgo/tarictl/internal/storage/sqlite"
)

// Chain answers chain queries from the sqlite chain store.
type Chain struct {
	store *sqlite.ChainStore
}

func NewChain(store *sqlite.ChainStore) *Chain {
	return &Chain{store: store}
}

func (c *Chain) GetMetadata(ctx context.Context) (core.ChainMetadata, error) {
	return c.store.Metadata(ctx)
}

func (c *Chain) GetHeaders(ctx context.Context, heights []uint64) ([]core.BlockHeader, error) {
	return c.store.Headers(ctx, heights)
}
