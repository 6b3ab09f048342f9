//go:build !bvhdebug

package bvh

// checkLive is a no-op outside the bvhdebug build tag; see arena_debug.go.
func (a *arena[K, T]) checkLive(i int) {}
