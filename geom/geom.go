// Package geom holds the vector and box math shared by every simulated object.
package geom

import "github.com/jakecoffman/cp"

// Vector is chipmunk's 2D vector. Methods return new values, so a Vector can be
// treated as immutable.
type Vector = cp.Vector

func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Box returns the bounding box of an extent of size centered at pos+center.
func Box(pos, center, size Vector) cp.BB {
	return cp.NewBBForExtents(pos.Add(center), size.X/2, size.Y/2)
}

// RectBB converts a top-left/size rectangle into a bounding box.
func RectBB(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// Overlap reports whether a and b touch. The far edge of a is inclusive and the
// far edge of b is exclusive, so an object standing exactly on a tile boundary
// belongs to the tile it rests on.
func Overlap(a, b cp.BB) bool {
	return a.R >= b.L && a.L < b.R &&
		a.T >= b.B && a.B < b.T
}

// BoxOverlap tests the box described by pos/center/size against the rectangle
// (x, y, w, h).
func BoxOverlap(pos, center, size Vector, x, y, w, h float64) bool {
	return Overlap(Box(pos, center, size), RectBB(x, y, w, h))
}

// Grow pads every side of bb by r.
func Grow(bb cp.BB, r float64) cp.BB {
	return cp.BB{L: bb.L - r, B: bb.B - r, R: bb.R + r, T: bb.T + r}
}
