// Copyright 2026 The searchtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package searchtree

// MinLeafSize is the leaf collapse threshold. A node covering at most
// this many values after a rebalance holds them directly as a leaf
// instead of keeping children.
const MinLeafSize = 3

// A Tree is a two-dimensional quadrant search tree. It indexes a set
// of comparable value identities by the caller-supplied geometry of a
// Policy and answers NearbyValues queries against an arbitrary probe
// region.
//
// The zero value, and New with a nil policy, is a valid empty tree on
// which every mutating operation is a silent no-op until SetPolicy
// supplies a policy; queries on it return an empty set.
//
// A Tree defines no internal synchronization. The intended deployment
// runs all mutations and queries on one logical goroutine and
// dispatches Rebalance, the expensive traversal, through a Rebalancer
// between update cycles. No query or mutation may run concurrently
// with an in-flight Rebalance on the same tree; join it first.
type Tree[V comparable, R any] struct {
	policy Policy[V, R]
	root   *node[V, R]
}

// New creates a tree using the given policy. The policy may be nil,
// in which case the tree stays inert until SetPolicy provides one.
// The tree borrows the policy for its whole lifetime and never
// assumes ownership of it.
func New[V comparable, R any](p Policy[V, R]) *Tree[V, R] {
	return &Tree[V, R]{policy: p}
}

// SetPolicy replaces the policy used by the tree and all of its
// nodes. Node regions computed under the previous policy stay in
// place until the next Rebalance; replacing one policy with a
// geometrically incompatible one therefore makes interim query
// results meaningless, and is the caller's responsibility to avoid.
func (t *Tree[V, R]) SetPolicy(p Policy[V, R]) {
	t.policy = p
}

// Insert adds a value to the tree. The value is offered to every
// existing node region that contains it; a value no region covers is
// retained at the nearest enclosing node as an orphan. Insert never
// subdivides, so it may leave the tree unbalanced until the next
// Rebalance. Without a policy, Insert is a no-op.
func (t *Tree[V, R]) Insert(v V) {
	if t.policy == nil {
		return
	}
	if t.root == nil {
		root := newNode[V, R](t.policy)
		t.root = &root
	}
	t.root.insert(t.policy, v)
}

// Remove deletes a value from the tree, wherever it is recorded.
func (t *Tree[V, R]) Remove(v V) {
	if t.root != nil {
		t.root.remove(v)
	}
}

// Clear empties the tree, discarding all values and all nodes below
// the root.
func (t *Tree[V, R]) Clear() {
	if t.root != nil {
		t.root.clear()
	}
}

// NearbyValues returns the deduplicated union of the values held by
// every node whose region overlaps query, per the policy's Overlaps.
// The result includes orphans held at internal nodes whose own region
// overlaps the query. An empty or policy-less tree yields an empty,
// non-nil set. The caller owns the returned set.
func (t *Tree[V, R]) NearbyValues(query R) Set[V] {
	out := make(Set[V])
	if t.root != nil && t.policy != nil {
		t.root.nearby(t.policy, query, out)
	}
	return out
}

// Rebalance rebuilds the tree for the current value set. It refreshes
// the root region from the full membership — the only point where the
// tree's extent tracks values that have moved — then recursively
// re-subdivides, collapsing any node covering at most MinLeafSize
// values into a leaf and dropping values that no longer satisfy the
// region that holds them. Rebalancing twice without an intervening
// mutation leaves the tree unchanged.
func (t *Tree[V, R]) Rebalance() {
	if t.root == nil || t.policy == nil {
		return
	}
	all := make(Set[V])
	t.root.allValues(all)
	t.root.region = t.policy.RootRegion(all)
	t.root.rebalance(t.policy)
}

// Clone returns a deep copy of the tree. The node graph is copied
// recursively; the policy is shared, which is safe because policies
// are pure. Neither tree observes subsequent mutations of the other.
func (t *Tree[V, R]) Clone() *Tree[V, R] {
	c := &Tree[V, R]{policy: t.policy}
	if t.root != nil {
		root := t.root.clone()
		c.root = &root
	}
	return c
}

// Len returns the number of distinct values in the tree.
func (t *Tree[V, R]) Len() int {
	if t.root == nil {
		return 0
	}
	all := make(Set[V])
	t.root.allValues(all)
	return all.Len()
}

// NumNodes returns the number of nodes in the tree, or zero for a
// tree that has never been inserted into.
func (t *Tree[V, R]) NumNodes() int {
	if t.root == nil {
		return 0
	}
	nodes, _ := t.root.stats()
	return nodes
}

// Depth returns the height of the tree in nodes, or zero for a tree
// that has never been inserted into.
func (t *Tree[V, R]) Depth() int {
	if t.root == nil {
		return 0
	}
	_, depth := t.root.stats()
	return depth
}
