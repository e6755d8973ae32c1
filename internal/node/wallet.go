// Package node provides local reference implementations of the console's
// backend capabilities so the binary runs stand-alone. A production
// deployment swaps in comms-backed handles instead.
package node

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/tarictl/internal/core"
)

// Wallet is an in-memory output manager and transaction service.
type Wallet struct {
	mu      sync.Mutex
	balance core.Balance
	sent    []SentTransaction
}

type SentTransaction struct {
	ID          string
	Destination core.PublicKey
	Amount      core.MicroTari
	FeePerGram  core.MicroTari
	Message     string
	At          time.Time
}

func NewWallet(initial core.Balance) *Wallet {
	return &Wallet{balance: initial}
}

func (w *Wallet) GetBalance(ctx context.Context) (core.Balance, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance, nil
}

func (w *Wallet) SendTransaction(
	ctx context.Context,
	dest core.PublicKey,
	amount, feePerGram core.MicroTari,
	message string,
) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount > w.balance.Available {
		return "", fmt.Errorf("insufficient funds: available %s, requested %s", w.balance.Available, amount)
	}

	w.balance.Available -= amount
	w.balance.PendingOutgoing += amount

	tx := SentTransaction{
		ID:          uuid.NewString(),
		Destination: dest,
		Amount:      amount,
		FeePerGram:  feePerGram,
		Message:     message,
		At:          time.Now(),
	}
	w.sent = append(w.sent, tx)
	return tx.ID, nil
}

// Sent returns a copy of the recorded outbound transactions.
func (w *Wallet) Sent() []SentTransaction {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]SentTransaction, len(w.sent))
	copy(out, w.sent)
	return out
}
