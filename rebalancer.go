// Copyright 2026 The searchtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package searchtree

// A Rebalancer is a single-slot task handle that runs a Tree's
// Rebalance pass on a background goroutine. The intended pattern is a
// frame or update loop that starts a rebalance after its mutations
// for the cycle are done and joins it at the top of the next cycle,
// before touching the tree again:
//
//	reb.Wait()          // join last cycle's rebalance
//	...                 // mutate and query the tree freely
//	_ = reb.Start()     // rebalance while the rest of the cycle runs
//
// The slot holds at most one in-flight rebalance: Start fails with
// ErrRebalanceInFlight until the previous one is joined. A started
// rebalance always runs to completion; there is no cancellation.
//
// A Rebalancer is meant to be driven from the single goroutine that
// owns the tree and is not itself safe for concurrent use. While a
// rebalance is in flight, no mutation or query may touch the tree —
// that is the tree's documented caller contract, and Wait is how the
// owner honors it.
type Rebalancer[V comparable, R any] struct {
	tree *Tree[V, R]
	done chan struct{}
}

// NewRebalancer creates a Rebalancer for the given tree. Panics if
// tree is nil.
func NewRebalancer[V comparable, R any](tree *Tree[V, R]) *Rebalancer[V, R] {
	if tree == nil {
		textPanic("nil tree")
	}
	return &Rebalancer[V, R]{tree: tree}
}

// Start dispatches tree.Rebalance on a new goroutine. It returns
// ErrRebalanceInFlight if a previously started rebalance has not yet
// been joined with Wait.
func (r *Rebalancer[V, R]) Start() error {
	if r.done != nil {
		return ErrRebalanceInFlight
	}
	done := make(chan struct{})
	r.done = done
	go func() {
		defer close(done)
		r.tree.Rebalance()
	}()
	return nil
}

// Wait joins the in-flight rebalance, blocking until it completes and
// freeing the slot for the next Start. Wait is a no-op when no
// rebalance is outstanding.
func (r *Rebalancer[V, R]) Wait() {
	if r.done == nil {
		return
	}
	<-r.done
	r.done = nil
}

// Busy reports whether a started rebalance has not yet been joined
// with Wait.
func (r *Rebalancer[V, R]) Busy() bool {
	return r.done != nil
}
