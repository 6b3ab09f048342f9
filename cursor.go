package bvh

const cursorInitialStackCapacity = 256

type cursorState int

const (
	cursorBeforeFirst cursorState = iota
	cursorValid
	cursorExhausted
	cursorFailed
)

// Cursor is a lazy, finite, depth-first sequence over a Tree's nodes: the
// four query shapes of spec.md §4.7 (query by key, query all, debug nodes
// by key, debug all nodes) are all the same traversal, parameterized by
// whether an overlap filter is applied and whether branch keys are also
// emitted. A Cursor snapshots the tree's version at construction and fails
// with ErrConcurrentModification the moment it notices a mutation; it is
// restartable only by constructing a new one.
type Cursor[K Key[K, V], V any, T any] struct {
	tree *Tree[K, V, T]
	// stack is the explicit DFS index stack; it starts at
	// cursorInitialStackCapacity and grows on demand via append, per
	// spec.md §9 (no hard cap).
	stack []int

	filterKey    K
	hasFilter    bool
	emitBranches bool

	snapshot uint64
	state    cursorState
	err      error

	curItem T
	curKey  K
}

func newCursor[K Key[K, V], V any, T any](t *Tree[K, V, T], filterKey K, hasFilter, emitBranches bool) *Cursor[K, V, T] {
	c := &Cursor[K, V, T]{
		tree:         t,
		filterKey:    filterKey,
		hasFilter:    hasFilter,
		emitBranches: emitBranches,
		snapshot:     t.version,
		state:        cursorBeforeFirst,
		stack:        make([]int, 0, cursorInitialStackCapacity),
	}
	if t.root != NIL {
		c.stack = append(c.stack, t.root)
	}
	return c
}

// Query returns a Cursor over payloads whose stored key overlaps key, in
// DFS order.
func (t *Tree[K, V, T]) Query(key K) *Cursor[K, V, T] {
	return newCursor[K, V, T](t, key, true, false)
}

// QueryAll returns a Cursor over every payload in the tree, in DFS order.
func (t *Tree[K, V, T]) QueryAll() *Cursor[K, V, T] {
	var zero K
	return newCursor[K, V, T](t, zero, false, false)
}

// DebugNodes returns a Cursor over the stored key of every visited node
// (branches included) that overlaps key.
func (t *Tree[K, V, T]) DebugNodes(key K) *Cursor[K, V, T] {
	return newCursor[K, V, T](t, key, true, true)
}

// DebugAllNodes returns a Cursor over the stored key of every node in the
// tree, branches included.
func (t *Tree[K, V, T]) DebugAllNodes() *Cursor[K, V, T] {
	var zero K
	return newCursor[K, V, T](t, zero, false, true)
}

// Next advances the cursor and reports whether a new element is available.
// It returns false both when the sequence is exhausted and when a
// concurrent modification was detected; Err distinguishes the two.
func (c *Cursor[K, V, T]) Next() bool {
	if c.state == cursorFailed {
		return false
	}
	if c.tree.version != c.snapshot {
		c.state = cursorFailed
		c.err = ErrConcurrentModification
		return false
	}

	for len(c.stack) > 0 {
		i := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		if c.hasFilter && !c.tree.a.keys[i].Overlaps(c.filterKey) {
			continue
		}

		n := c.tree.a.nodes[i]
		leaf := n.isLeaf()
		if !leaf {
			// Push childA then childB: they pop in reverse, i.e. childB's
			// subtree is visited before childA's, per spec.md §5.
			c.stack = append(c.stack, n.childA, n.childB)
		}

		if leaf || c.emitBranches {
			c.curKey = c.tree.a.keys[i]
			if leaf {
				c.curItem = c.tree.a.payloads[i]
			} else {
				var zero T
				c.curItem = zero
			}
			c.state = cursorValid
			return true
		}
	}

	c.state = cursorExhausted
	return false
}

// Item returns the payload at the cursor's current position. It fails with
// ErrInvalidIteratorState before the first Next or after Next returns
// false.
func (c *Cursor[K, V, T]) Item() (T, error) {
	if c.state != cursorValid {
		var zero T
		return zero, ErrInvalidIteratorState
	}
	return c.curItem, nil
}

// Key returns the stored key at the cursor's current position. It fails
// with ErrInvalidIteratorState before the first Next or after Next returns
// false.
func (c *Cursor[K, V, T]) Key() (K, error) {
	if c.state != cursorValid {
		var zero K
		return zero, ErrInvalidIteratorState
	}
	return c.curKey, nil
}

// Err returns ErrConcurrentModification if the cursor stopped because the
// tree was mutated underneath it, and nil otherwise (including on a clean
// exhaustion).
func (c *Cursor[K, V, T]) Err() error {
	if c.state == cursorFailed {
		return c.err
	}
	return nil
}
