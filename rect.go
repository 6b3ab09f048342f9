package bvh

import "math"

// Vec2 is a 2-D motion vector, used by Rect.ExpandDirectional.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box: an origin and positive extents.
// It is the key type of an AABBTree.
type Rect struct {
	X, Y, W, H float64
}

// NewRect builds a Rect from an origin and positive extents.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// NewPoint builds a zero-extent Rect anchored at (x, y), suitable for a
// point query.
func NewPoint(x, y float64) Rect {
	return Rect{X: x, Y: y}
}

func (r Rect) minX() float64 { return r.X }
func (r Rect) minY() float64 { return r.Y }
func (r Rect) maxX() float64 { return r.X + r.W }
func (r Rect) maxY() float64 { return r.Y + r.H }

// Union returns the tightest Rect enclosing r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.minX(), other.minX())
	minY := math.Min(r.minY(), other.minY())
	maxX := math.Max(r.maxX(), other.maxX())
	maxY := math.Max(r.maxY(), other.maxY())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether other lies entirely inside r, closed on both
// ends.
func (r Rect) Contains(other Rect) bool {
	return other.minX() >= r.minX() && other.maxX() <= r.maxX() &&
		other.minY() >= r.minY() && other.maxY() <= r.maxY()
}

// Overlaps reports whether r and other share at least one point, inclusive
// of their boundaries.
func (r Rect) Overlaps(other Rect) bool {
	return r.minX() <= other.maxX() && r.maxX() >= other.minX() &&
		r.minY() <= other.maxY() && r.maxY() >= other.minY()
}

// Expand grows r outward by v on each side, in both dimensions, so the
// stored extent grows by 2v per axis. This is the "correct" symmetric
// reading of the source's expand heuristic; see SPEC_FULL.md §REDESIGN
// FLAGS.
func (r Rect) Expand(v float64) Rect {
	return Rect{X: r.X - v, Y: r.Y - v, W: r.W + 2*v, H: r.H + 2*v}
}

// ExpandDirectional grows r asymmetrically toward the direction of offset
// scaled by moveConstant, per a single axis at a time: a negative delta
// pushes the low edge out (growing the extent by -delta), a non-negative
// delta grows the high edge (leaving the low edge fixed).
func (r Rect) ExpandDirectional(offset Vec2, moveConstant float64) Rect {
	out := r
	dx := offset.X * moveConstant
	if dx < 0 {
		out.X += dx
		out.W -= dx
	} else {
		out.W += dx
	}
	dy := offset.Y * moveConstant
	if dy < 0 {
		out.Y += dy
		out.H -= dy
	} else {
		out.H += dy
	}
	return out
}

// SurfaceArea returns w*h.
func (r Rect) SurfaceArea() float64 {
	return r.W * r.H
}
