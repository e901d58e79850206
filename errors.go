// Copyright 2026 The searchtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package searchtree

import "errors"

var (
	// ErrRebalanceInFlight is returned by Rebalancer.Start when the
	// rebalance dispatched by a previous Start has not yet been
	// joined with Wait.
	ErrRebalanceInFlight = textErr("rebalance already in flight")
)

const packageName = "searchtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func textPanic(text string) {
	panic(packageName + text)
}
