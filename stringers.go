// Copyright 2026 The searchtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package searchtree

import "fmt"

// String returns a summary description of the tree.
func (t *Tree[V, R]) String() string {
	return fmt.Sprintf("Tree{Len:%d,Nodes:%d,Depth:%d}", t.Len(), t.NumNodes(), t.Depth())
}

// String returns the quadrant's name.
func (q Quadrant) String() string {
	switch q {
	case UpperLeft:
		return "UpperLeft"
	case UpperRight:
		return "UpperRight"
	case LowerLeft:
		return "LowerLeft"
	case LowerRight:
		return "LowerRight"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}
