// Copyright 2026 The searchtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package searchtree

// A Quadrant identifies one of the four fixed child slots of an
// internal tree node. Quadrant values index into a Quadrants array.
type Quadrant int

const (
	// UpperLeft is the upper-left child quadrant.
	UpperLeft Quadrant = iota
	// UpperRight is the upper-right child quadrant.
	UpperRight
	// LowerLeft is the lower-left child quadrant.
	LowerLeft
	// LowerRight is the lower-right child quadrant.
	LowerRight

	// numQuadrants is the fixed child count of an internal node. A
	// node has either zero or numQuadrants children, never a partial
	// set.
	numQuadrants = 4
)

// Quadrants holds one region per child quadrant, indexed by Quadrant.
// It is the result type of Policy.Subdivide.
type Quadrants[R any] [numQuadrants]R

// A Policy supplies every geometric decision made by a Tree. The tree
// itself never inspects a region value: it only passes regions and
// values back to the policy that produced them, so the region type R
// and the meaning of containment and overlap are owned entirely by
// the policy implementation.
//
// All methods must behave as pure functions of their inputs. A policy
// must not mutate tree state from inside a method, and a stateless
// policy value may be shared between any number of trees.
//
// The tree holds a policy as a borrowed reference and never assumes
// ownership. Mixing two geometrically incompatible policies on one
// tree mid-lifetime leaves existing node regions meaningless until
// the next Rebalance; see Tree.SetPolicy.
type Policy[V comparable, R any] interface {
	// NilRegion returns the canonical empty region used to initialize
	// a node before any data is known.
	NilRegion() R

	// RootRegion computes the smallest enclosing region covering all
	// of the given values. It is called only for the root node, with
	// the full current value set, at the start of a Rebalance. When
	// values is empty it must return a region with NilRegion
	// semantics.
	RootRegion(values Set[V]) R

	// Subdivide computes the four child regions of parent given the
	// values currently assigned to it. The result must be a pure
	// function of (parent, values).
	Subdivide(parent R, values Set[V]) Quadrants[R]

	// Contains reports whether value belongs to region's search
	// space.
	Contains(region R, value V) bool

	// Overlaps reports whether the search spaces of a and b
	// intersect.
	Overlaps(a, b R) bool
}
