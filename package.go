// Copyright 2026 The searchtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package searchtree provides a generic two-dimensional quadrant
// search tree which indexes a changing set of values by a
// caller-supplied notion of 2D extent and answers nearby-value
// queries without rescanning the whole set.
//
// The tree has no built-in geometry. Every geometric decision —
// deriving a root region from the current values, subdividing a
// region into four quadrants, testing value-in-region membership and
// region-region overlap — is delegated to a Policy supplied by the
// caller, so the tree works with any region representation, from
// axis-aligned boxes to arbitrary search spaces.
//
// Mutations (Insert, Remove, Clear) are cheap and may leave the tree
// unbalanced; Rebalance recomputes the root region from the current
// membership and recursively re-subdivides. The Rebalancer type runs
// that pass on a background goroutine between update cycles.
package searchtree
