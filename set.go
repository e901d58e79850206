// Copyright 2026 The searchtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package searchtree

// A Set is an unordered collection of unique values. The tree uses
// sets both for per-node storage and as the query result type, which
// is what guarantees a value reachable through several overlapping
// quadrants appears in a result only once.
//
// A Set is an ordinary Go map under the hood: the zero value is nil
// and must not be added to, iteration order is undefined, and a Set
// is not safe for concurrent mutation.
type Set[V comparable] map[V]struct{}

// NewSet returns a Set containing the given values.
func NewSet[V comparable](values ...V) Set[V] {
	s := make(Set[V], len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v into the set.
func (s Set[V]) Add(v V) {
	s[v] = struct{}{}
}

// Remove deletes v from the set. Removing an absent value is a no-op.
func (s Set[V]) Remove(v V) {
	delete(s, v)
}

// Contains reports whether v is in the set.
func (s Set[V]) Contains(v V) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set[V]) Len() int {
	return len(s)
}

// AddAll inserts every value of other into s.
func (s Set[V]) AddAll(other Set[V]) {
	for v := range other {
		s.Add(v)
	}
}

// Clone returns a shallow copy of the set.
func (s Set[V]) Clone() Set[V] {
	c := make(Set[V], len(s))
	c.AddAll(s)
	return c
}
