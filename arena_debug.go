//go:build bvhdebug

package bvh

import "fmt"

// checkLive panics if i names a slot currently on the free list. It is
// compiled in only under the bvhdebug build tag; release builds leave
// stale-handle use as undefined behavior rather than pay for this check.
func (a *arena[K, T]) checkLive(i int) {
	if i < 0 || i >= len(a.nodes) {
		panic(fmt.Sprintf("bvh: handle %d out of range (capacity %d)", i, len(a.nodes)))
	}
	if a.free[i] {
		panic(fmt.Sprintf("bvh: handle %d refers to a freed slot", i))
	}
}
