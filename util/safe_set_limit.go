package util

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SafeSetLimit sets the concurrency limit on an errgroup.Group. errgroup panics on a zero limit and treats
// negative limits as unbounded, so any limit <= 0 is replaced by the number of CPUs.
//
// Returns the limit that was applied.
func SafeSetLimit(g *errgroup.Group, limit int) int {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	g.SetLimit(limit)

	return limit
}
