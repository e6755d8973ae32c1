package node

import (
	"context"
	"sync"

	"github.com/sandevgo/tarictl/internal/core"
)

// Registry is an in-memory connection registry. Transports register live
// connections; the console only reads them.
type Registry struct {
	mu    sync.Mutex
	conns map[core.PublicKey]core.Connection
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[core.PublicKey]core.Connection)}
}

func (r *Registry) ActiveConnections(ctx context.Context) ([]core.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Connection, 0, len(r.conns))
	for _, c := range r.conns {
		out = append(out, c)
	}
	return out, nil
}

func (r *Registry) Register(conn core.Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[conn.PeerPublicKey] = conn
}

func (r *Registry) Unregister(peer core.PublicKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, peer)
}
