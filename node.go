// Copyright 2026 The searchtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package searchtree

// A node is a single vertex of the quadrant tree. A node is a leaf
// when kids is nil and an internal node when kids points at its four
// children. The children live in one array allocation and are created
// and discarded as a unit, so a node can never hold a partial child
// set.
//
// At a leaf, data holds all of the node's values. At an internal
// node, data holds only orphans: values that satisfied none of the
// child regions when they were offered (an out-of-bounds insert at
// the root, or an inconsistent policy).
//
// Nodes do not hold a policy reference. The owning Tree threads its
// policy through every operation, so replacing the policy on the tree
// reaches all nodes at once.
type node[V comparable, R any] struct {
	region R
	kids   *[numQuadrants]node[V, R]
	data   Set[V]
}

func newNode[V comparable, R any](p Policy[V, R]) node[V, R] {
	return node[V, R]{
		region: p.NilRegion(),
		data:   make(Set[V]),
	}
}

// insert adds v to the subtree rooted at n. An internal node offers v
// to every child whose region contains it, so a value on a quadrant
// seam is recorded under each quadrant it satisfies. A value no child
// contains is kept locally as an orphan until the next rebalance can
// give the child regions a chance to cover it.
func (n *node[V, R]) insert(p Policy[V, R], v V) {
	if n.kids == nil {
		n.data.Add(v)
		return
	}
	added := false
	for i := range n.kids {
		if p.Contains(n.kids[i].region, v) {
			n.kids[i].insert(p, v)
			added = true
		}
	}
	if !added {
		n.data.Add(v)
	}
}

// remove deletes v from the subtree rooted at n. It recurses into
// every child unconditionally rather than testing child regions, so
// removal succeeds even where region membership has gone stale since
// the last rebalance.
func (n *node[V, R]) remove(v V) {
	if n.kids != nil {
		for i := range n.kids {
			n.kids[i].remove(v)
		}
	}
	n.data.Remove(v)
}

// clear discards the subtree below n and empties its data. The region
// keeps its last value; a later rebalance recomputes it.
func (n *node[V, R]) clear() {
	n.kids = nil
	clear(n.data)
}

// nearby accumulates into out every value held by a node whose region
// overlaps query. Children are always visited; each node then
// contributes its own data iff its own region overlaps the query.
// Orphans at an internal node are not represented by any child
// region, so the node's own region is what decides their visibility.
func (n *node[V, R]) nearby(p Policy[V, R], query R, out Set[V]) {
	if n.kids != nil {
		for i := range n.kids {
			n.kids[i].nearby(p, query, out)
		}
	}
	if p.Overlaps(n.region, query) {
		out.AddAll(n.data)
	}
}

// allValues accumulates into out every value held anywhere in the
// subtree rooted at n, orphans included.
func (n *node[V, R]) allValues(out Set[V]) {
	if n.kids != nil {
		for i := range n.kids {
			n.kids[i].allValues(out)
		}
	}
	out.AddAll(n.data)
}

// rebalance rebuilds the subtree rooted at n against n.region, which
// the caller has already refreshed. Values that no longer satisfy
// n.region leave the subtree; re-inserting them elsewhere is the
// caller's decision, not the tree's.
func (n *node[V, R]) rebalance(p Policy[V, R]) {
	all := make(Set[V])
	n.allValues(all)
	for v := range all {
		if !p.Contains(n.region, v) {
			all.Remove(v)
		}
	}

	clear(n.data)

	// Small enough to live in a single leaf.
	if all.Len() <= MinLeafSize {
		n.kids = nil
		n.data = all
		return
	}

	quads := p.Subdivide(n.region, all)
	if !shouldSubdivide(p, all, &quads) {
		// Every value satisfies all four candidate regions, so
		// children would add depth without discriminating.
		n.kids = nil
		n.data = all
		return
	}

	// Keep existing children where we have them so their subtrees can
	// be reused; only their regions change. A leaf grows a fresh,
	// empty child set.
	if n.kids == nil {
		kids := new([numQuadrants]node[V, R])
		for i := range kids {
			kids[i] = newNode[V, R](p)
		}
		n.kids = kids
	}
	for q := range n.kids {
		n.kids[q].region = quads[q]
	}

	// Redistribute through the normal insert path. Values no child
	// region covers land back in n.data as orphans.
	for v := range all {
		n.insert(p, v)
	}
	for q := range n.kids {
		n.kids[q].rebalance(p)
	}
}

// shouldSubdivide reports whether the candidate child regions would
// actually discriminate among the values. If every value satisfies
// all four regions, each child would hold the full set and the split
// is useless.
func shouldSubdivide[V comparable, R any](p Policy[V, R], values Set[V], quads *Quadrants[R]) bool {
	for v := range values {
		for q := range quads {
			if !p.Contains(quads[q], v) {
				return true
			}
		}
	}
	return false
}

// clone deep-copies the subtree rooted at n.
func (n *node[V, R]) clone() node[V, R] {
	c := node[V, R]{
		region: n.region,
		data:   n.data.Clone(),
	}
	if n.kids != nil {
		kids := new([numQuadrants]node[V, R])
		for i := range n.kids {
			kids[i] = n.kids[i].clone()
		}
		c.kids = kids
	}
	return c
}

// stats returns the node count and height of the subtree rooted at n.
func (n *node[V, R]) stats() (nodes, depth int) {
	nodes, depth = 1, 1
	if n.kids == nil {
		return
	}
	for i := range n.kids {
		kn, kd := n.kids[i].stats()
		nodes += kn
		if kd+1 > depth {
			depth = kd + 1
		}
	}
	return
}
