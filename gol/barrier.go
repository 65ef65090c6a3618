package gol

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBarrierBroken is returned by Barrier.Wait once any party has called Break.
var ErrBarrierBroken = errors.New("barrier broken")

// Barrier is a reusable rendezvous for a fixed number of goroutines. Each call
// to Wait blocks until all parties have arrived, then releases them together
// and resets for the next round.
type Barrier struct {
	parties int
	count   int    // Parties arrived in the current round
	round   uint64 // Incremented every time all parties are released
	broken  error  // Non-nil once Break is called
	cond    *sync.Cond
}

// NewBarrier creates a barrier for parties goroutines.
func NewBarrier(parties int) *Barrier {
	if parties <= 0 {
		panic("barrier size must be positive")
	}
	return &Barrier{
		parties: parties,
		cond:    sync.NewCond(new(sync.Mutex)),
	}
}

// Wait blocks until every party has called Wait for the current round.
// It returns an error wrapping ErrBarrierBroken if the barrier was broken
// before the round completed.
func (b *Barrier) Wait() error {
	b.cond.L.Lock()
	defer b.cond.L.Unlock()
	if b.broken != nil {
		return b.broken
	}
	round := b.round
	b.count++
	if b.count == b.parties {
		// Last arrival releases the round
		b.count = 0
		b.round++
		b.cond.Broadcast()
		return nil
	}
	// Loop guards against spurious wake-ups
	for round == b.round && b.broken == nil {
		b.cond.Wait()
	}
	if round != b.round {
		return nil
	}
	return b.broken
}

// Break wakes every waiting party with an error carrying cause. Subsequent
// calls to Wait fail immediately. Only the first cause is kept.
func (b *Barrier) Break(cause error) {
	b.cond.L.Lock()
	if b.broken == nil {
		b.broken = fmt.Errorf("%w: %w", ErrBarrierBroken, cause)
	}
	b.cond.Broadcast()
	b.cond.L.Unlock()
}
