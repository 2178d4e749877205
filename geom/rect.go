package geom

// Rect is stored as two point pairs, (X, Y) and (W, H). For door connections the
// pairs are the two room coordinates a door links.
type Rect struct {
	X, Y float64
	W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Equal(o Rect) bool {
	return r.X == o.X && r.Y == o.Y && r.W == o.W && r.H == o.H
}

// EqualOpposite reports whether o describes r from the other end.
func (r Rect) EqualOpposite(o Rect) bool {
	return r.X == o.W && r.Y == o.H && r.W == o.X && r.H == o.Y
}

// Same is order-independent equality.
func (r Rect) Same(o Rect) bool {
	return r.Equal(o) || r.EqualOpposite(o)
}
