package common

import "math"

const (
	TileSize = 16

	ScreenWidth  = 160
	ScreenHeight = 144

	// Rooms are ScreenWidth x ScreenHeight, i.e. 10 x 9 tiles.
	RoomTilesX = ScreenWidth / TileSize
	RoomTilesY = ScreenHeight / TileSize
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NegMod is a modulo whose result always has the sign of m.
func NegMod(v, m float64) float64 {
	if m == 0 {
		return v
	}
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

func NegModInt(v, m int) int {
	if m == 0 {
		return v
	}
	return ((v % m) + m) % m
}

func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Approach moves v toward target by at most delta and never overshoots.
func Approach(v, target, delta float64) float64 {
	if v < target {
		return math.Min(v+delta, target)
	}
	if v > target {
		return math.Max(v-delta, target)
	}
	return v
}
