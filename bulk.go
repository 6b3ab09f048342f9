package bvh

import "sort"

// BulkItem is one (key, payload) pair to bulk load.
type BulkItem[K any, T any] struct {
	Key     K
	Payload T
}

// BulkLoadAABB builds an AABBTree from items in O(n log² n) by recursively
// splitting on the longest axis of the running bounding box and recursing
// on each half — the same longest-axis median-split recursion as the
// teacher's bulk loader, adapted to write directly into the shared binary
// arena (its two-way split already matches a strictly-binary tree, so no
// further change to the algorithm itself was needed). Every stored key is
// still padded by expandConstant, exactly as Add pads it.
func BulkLoadAABB[T any](items []BulkItem[Rect, T], opts ...Option) (*AABBTree[T], error) {
	t, err := newTree[Rect, Vec2, T](opts)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return t, nil
	}

	padded := make([]BulkItem[Rect, T], len(items))
	for i, it := range items {
		padded[i] = BulkItem[Rect, T]{Key: it.Key.Expand(t.expandConstant), Payload: it.Payload}
	}

	t.root = bulkInsertAABB(t, padded)
	t.leafCount = len(items)
	t.version++
	return t, nil
}

func bulkInsertAABB[T any](t *AABBTree[T], items []BulkItem[Rect, T]) int {
	if len(items) == 1 {
		return t.a.popFreelist(items[0].Key, items[0].Payload)
	}

	bbox := items[0].Key
	for _, it := range items[1:] {
		bbox = bbox.Union(it.Key)
	}

	if bbox.W > bbox.H {
		sort.Slice(items, func(i, j int) bool {
			return items[i].Key.X+items[i].Key.W < items[j].Key.X+items[j].Key.W
		})
	} else {
		sort.Slice(items, func(i, j int) bool {
			return items[i].Key.Y+items[i].Key.H < items[j].Key.Y+items[j].Key.H
		})
	}

	split := len(items) / 2
	childA := bulkInsertAABB(t, items[:split])
	childB := bulkInsertAABB(t, items[split:])
	return t.joinBulkBranch(childA, childB)
}

// BulkLoadInterval is BulkLoadAABB's 1-D counterpart: there is only one
// axis to split on, so each recursion sorts by interval high end (X+L) and
// splits at the median.
func BulkLoadInterval[T any](items []BulkItem[Interval, T], opts ...Option) (*IntervalTree[T], error) {
	t, err := newTree[Interval, float64, T](opts)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return t, nil
	}

	padded := make([]BulkItem[Interval, T], len(items))
	for i, it := range items {
		padded[i] = BulkItem[Interval, T]{Key: it.Key.Expand(t.expandConstant), Payload: it.Payload}
	}

	t.root = bulkInsertInterval(t, padded)
	t.leafCount = len(items)
	t.version++
	return t, nil
}

func bulkInsertInterval[T any](t *IntervalTree[T], items []BulkItem[Interval, T]) int {
	if len(items) == 1 {
		return t.a.popFreelist(items[0].Key, items[0].Payload)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Key.X+items[i].Key.L < items[j].Key.X+items[j].Key.L
	})

	split := len(items) / 2
	childA := bulkInsertInterval(t, items[:split])
	childB := bulkInsertInterval(t, items[split:])
	return t.joinBulkBranch(childA, childB)
}

// joinBulkBranch allocates a branch over childA and childB, wiring parent
// pointers and the height/key invariants directly rather than going
// through refitHierarchy: a bulk build's two children are already
// finished subtrees, so there is nothing above childA/childB left to fix
// up once the branch itself is computed.
func (t *Tree[K, V, T]) joinBulkBranch(childA, childB int) int {
	var zeroPayload T
	key := t.a.keys[childA].Union(t.a.keys[childB])
	branch := t.a.popFreelist(key, zeroPayload)
	t.a.nodes[branch].childA = childA
	t.a.nodes[branch].childB = childB
	t.a.nodes[branch].height = 1 + maxInt(t.a.nodes[childA].height, t.a.nodes[childB].height)
	t.a.nodes[childA].parent = branch
	t.a.nodes[childB].parent = branch
	return branch
}
