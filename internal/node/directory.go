package node

import (
	"context"

	"github.com/sandevgo/tarictl/internal/core"
	"github.com/sandevgo/tarictl/internal/storage/sqlite"
)

// Directory is the peer directory backed by the sqlite peer store.
type Directory struct {
	store *sqlite.PeerStore
}

func NewDirectory(store *sqlite.PeerStore) *Directory {
	return &Directory{store: store}
}

func (d *Directory) Peers(ctx context.Context) ([]core.Peer, error) {
	return d.store.Peers(ctx)
}

func (d *Directory) AddPeer(ctx context.Context, peer core.Peer) error {
	return d.store.Upsert(ctx, peer)
}
