package bvh

import "github.com/sirupsen/logrus"

// Handle is a stable integer identifying a leaf's payload in a Tree. It
// remains valid across insertions, removals of other leaves, and any
// update/move that does not itself remove and reinsert the leaf.
type Handle int

// NilHandle is the handle value Remove treats as a no-op.
const NilHandle Handle = NIL

// Tree is the shared core of the AABB tree and the interval tree: an
// arena-backed binary tree keyed by K, rebalanced by height and chosen for
// sibling insertion by a branch-and-bound surface-area search.
//
// K is the key type (Rect or Interval); V is the type Move's offset is
// expressed in (Vec2 for Rect, float64 for Interval); T is the payload
// type.
type Tree[K Key[K, V], V any, T any] struct {
	a    *arena[K, T]
	root int

	expandConstant float64
	moveConstant   float64

	leafCount int
	version   uint64

	pq  siblingQueue
	log *logrus.Entry
}

// AABBTree is a dynamic BVH over 2-D rectangles.
type AABBTree[T any] = Tree[Rect, Vec2, T]

// IntervalTree is a dynamic BVH over 1-D intervals.
type IntervalTree[T any] = Tree[Interval, float64, T]

// NewAABBTree constructs an empty AABBTree.
func NewAABBTree[T any](opts ...Option) (*AABBTree[T], error) {
	return newTree[Rect, Vec2, T](opts)
}

// NewIntervalTree constructs an empty IntervalTree.
func NewIntervalTree[T any](opts ...Option) (*IntervalTree[T], error) {
	return newTree[Interval, float64, T](opts)
}

func newTree[K Key[K, V], V any, T any](opts []Option) (*Tree[K, V, T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Tree[K, V, T]{
		a:              newArena[K, T](cfg.InitialCapacity),
		root:           NIL,
		expandConstant: cfg.ExpandConstant,
		moveConstant:   cfg.MoveConstant,
		log:            cfg.Logger,
	}, nil
}

// Clear drops every entry and resets the arena. opts re-tunes the tree
// exactly as NewAABBTree/NewIntervalTree do; the expand constant, move
// constant and logger, when left unset by opts, keep their current values
// rather than reverting to the package defaults, while the new arena gets
// WithInitialCapacity's value or, when that is unset, the default of 64
// slots. An invalid opts combination leaves the tree untouched (logged, not
// applied), since Clear has no error return of its own.
func (t *Tree[K, V, T]) Clear(opts ...Option) {
	cfg := Config{
		InitialCapacity: defaultInitialCapacity,
		ExpandConstant:  t.expandConstant,
		MoveConstant:    t.moveConstant,
		Logger:          t.log,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		t.log.WithError(err).Warn("bvh: clear: rejected options, tree left unchanged")
		return
	}

	t.a = newArena[K, T](cfg.InitialCapacity)
	t.root = NIL
	t.expandConstant = cfg.ExpandConstant
	t.moveConstant = cfg.MoveConstant
	t.log = cfg.Logger
	t.leafCount = 0
	t.version++
	t.log.Debug("bvh: cleared")
}

// Add stores payload under key (expanded by expandConstant before storage)
// and returns a stable handle for it.
func (t *Tree[K, V, T]) Add(key K, payload T) Handle {
	h := t.addKey(key.Expand(t.expandConstant), payload)
	t.log.WithFields(logrus.Fields{"handle": h}).Debug("bvh: add")
	return h
}

// addKey inserts key as-is (already padded by the caller) and returns the
// new leaf's handle. It is shared by Add (which pads by expandConstant) and
// Move's reinsert path (which has already computed its own padding).
func (t *Tree[K, V, T]) addKey(key K, payload T) Handle {
	leaf := t.a.popFreelist(key, payload)
	t.leafCount++

	if t.root == NIL {
		t.root = leaf
		t.version++
		return Handle(leaf)
	}

	sibling := t.findSibling(key)
	parentOfSibling := t.a.nodes[sibling].parent

	var zeroPayload T
	branchKey := key.Union(t.a.keys[sibling])
	branch := t.a.popFreelist(branchKey, zeroPayload)

	t.a.nodes[branch].childA = sibling
	t.a.nodes[branch].childB = leaf
	t.a.nodes[branch].parent = parentOfSibling
	t.a.nodes[branch].height = t.a.nodes[sibling].height + 1
	t.a.nodes[sibling].parent = branch
	t.a.nodes[leaf].parent = branch

	if parentOfSibling == NIL {
		t.root = branch
	} else {
		p := &t.a.nodes[parentOfSibling]
		if p.childA == sibling {
			p.childA = branch
		} else {
			p.childB = branch
		}
	}

	t.refitHierarchy(parentOfSibling)
	t.version++
	return Handle(leaf)
}

// Remove removes the leaf identified by h. Removing NilHandle is a defined
// no-op.
func (t *Tree[K, V, T]) Remove(h Handle) {
	if h == NilHandle {
		return
	}
	l := int(h)
	t.a.checkLive(l)

	if l == t.root {
		t.root = NIL
		t.a.pushFreelist(l)
		t.leafCount--
		t.version++
		t.log.WithFields(logrus.Fields{"handle": h}).Debug("bvh: remove root")
		return
	}

	p := t.a.nodes[l].parent
	g := t.a.nodes[p].parent

	var sibling int
	if t.a.nodes[p].childA == l {
		sibling = t.a.nodes[p].childB
	} else {
		sibling = t.a.nodes[p].childA
	}

	if p == t.root {
		t.root = sibling
		t.a.nodes[sibling].parent = NIL
	} else {
		pg := &t.a.nodes[g]
		if pg.childA == p {
			pg.childA = sibling
		} else {
			pg.childB = sibling
		}
		t.a.nodes[sibling].parent = g
		t.refitHierarchy(g)
	}

	t.a.pushFreelist(p)
	t.a.pushFreelist(l)
	t.leafCount--
	t.version++
	t.log.WithFields(logrus.Fields{"handle": h}).Debug("bvh: remove")
}

// Update stores newKey for h in place when it still fits inside h's stored
// (padded) key, returning false. Otherwise it removes and reinserts h with
// the unexpanded newKey (which is padded by expandConstant on the way back
// in), returning true. Because Remove frees h's slot immediately before the
// following Add reclaims it, h stays valid across a reinsert: the free list
// is LIFO and nothing else allocates in between.
func (t *Tree[K, V, T]) Update(h Handle, newKey K) bool {
	l := int(h)
	t.a.checkLive(l)
	if t.a.keys[l].Contains(newKey) {
		t.a.keys[l] = newKey
		// Keep every ancestor's key equal to the union of its children.
		for p := t.a.nodes[l].parent; p != NIL; p = t.a.nodes[p].parent {
			t.recompute(p)
		}
		return false
	}
	payload := t.a.payloads[l]
	t.Remove(h)
	t.Add(newKey, payload)
	return true
}

// Move is Update's motion-predictive sibling: it pads newKey by
// expandConstant and then skews that padding toward offset*moveConstant,
// so a leaf moving in a consistent direction tends to avoid restructuring
// even as it travels. If the stored key still (generously) brackets the
// new padded key, it is overwritten in place and Move returns false;
// otherwise h is removed and reinserted with the padded key directly (no
// further expansion), returning true. See the same handle-stability note
// as Update.
func (t *Tree[K, V, T]) Move(h Handle, newKey K, offset V) bool {
	l := int(h)
	t.a.checkLive(l)
	padded := newKey.Expand(t.expandConstant).ExpandDirectional(offset, t.moveConstant)
	old := t.a.keys[l]

	if old.Contains(padded) && padded.Expand(t.moveConstant).Contains(old) {
		t.a.keys[l] = padded
		// Keep every ancestor's key equal to the union of its children.
		for p := t.a.nodes[l].parent; p != NIL; p = t.a.nodes[p].parent {
			t.recompute(p)
		}
		return false
	}
	payload := t.a.payloads[l]
	t.Remove(h)
	t.addKey(padded, payload)
	t.log.WithFields(logrus.Fields{"handle": h}).Debug("bvh: move reinsert")
	return true
}

// GetKey returns the stored (padded) key for h, never the unexpanded key
// originally passed to Add.
func (t *Tree[K, V, T]) GetKey(h Handle) K {
	t.a.checkLive(int(h))
	return t.a.keys[int(h)]
}

// GetItem returns the payload stored under h.
func (t *Tree[K, V, T]) GetItem(h Handle) T {
	t.a.checkLive(int(h))
	return t.a.payloads[int(h)]
}

// Count returns the number of live arena slots, branches and leaves alike.
func (t *Tree[K, V, T]) Count() int {
	return t.a.nodeCount
}

// ItemCount returns the number of live leaf slots (external items), never
// counting internal branch nodes.
func (t *Tree[K, V, T]) ItemCount() int {
	return t.leafCount
}

// Bounds returns the root's key and true, or the zero key and false when
// the tree is empty.
func (t *Tree[K, V, T]) Bounds() (K, bool) {
	if t.root == NIL {
		var zero K
		return zero, false
	}
	return t.a.keys[t.root], true
}
