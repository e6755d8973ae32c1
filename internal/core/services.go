package core

import "context"

// The console never owns a backend; it is handed these capability handles at
// construction. Implementations must be safe for concurrent use since
// detached tasks call into them from executor workers.

// OutputManagerService answers wallet balance queries.
type OutputManagerService interface {
	GetBalance(ctx context.Context) (Balance, error)
}

// NodeService answers chain-state queries.
type NodeService interface {
	GetMetadata(ctx context.Context) (ChainMetadata, error)
	GetHeaders(ctx context.Context, heights []uint64) ([]BlockHeader, error)
}

// TransactionService constructs and submits outbound transactions.
type TransactionService interface {
	SendTransaction(ctx context.Context, dest PublicKey, amount, feePerGram MicroTari, message string) (string, error)
}

// PeerDirectory lists the peers this node knows about.
type PeerDirectory interface {
	Peers(ctx context.Context) ([]Peer, error)
}

// ConnectionRegistry lists the live peer connections held by this node.
type ConnectionRegistry interface {
	ActiveConnections(ctx context.Context) ([]Connection, error)
}
