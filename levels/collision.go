package levels

import (
	"math"

	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/object"
)

// Narrow-phase queries. The stage offers candidate tiles and the mover decides
// whether they apply; each returns true when it did.
type (
	LadderCollider interface {
		LadderCollision(x, y, w, h float64, top bool, env *object.Env) bool
	}
	WaterCollider interface {
		WaterCollision(x, y, w, h float64, surface bool, env *object.Env) bool
	}
	WindCollider interface {
		WindCollision(x, y, w, h float64, env *object.Env) bool
	}
	// BreakCollider returning true removes the tile. level 0 tiles break to
	// the player, level 1 tiles only to thrown rocks.
	BreakCollider interface {
		BreakCollision(x, y, w, h float64, level int, env *object.Env) bool
	}
	HurtCollider interface {
		HurtCollision(x, y, w, h float64, dir int, env *object.Env) bool
	}
)

const (
	ladderInset   = 4
	surfaceOffset = 4
	spikeHeight   = 8
	spikeInset    = 2
)

// ObjectCollision resolves o against every tile near it. Breakable tiles are
// offered first so a successful break never blocks the mover, then walls,
// then floors and ceilings, then the remaining narrow-phase tiles.
func (s *Stage) ObjectCollision(o object.Object, env *object.Env) {
	b := o.Obj()
	if !b.Exist || b.Dying || !b.InCamera {
		return
	}

	bb := b.CollisionBB()
	margin := 4 + math.Max(math.Abs(b.Speed.X), math.Abs(b.Speed.Y))
	x0, y0 := floorDiv(bb.L-margin), floorDiv(bb.B-margin)
	x1, y1 := floorDiv(bb.R+margin), floorDiv(bb.T+margin)

	const ts = common.TileSize

	if bc, ok := o.(BreakCollider); ok {
		for ty := y0; ty <= y1; ty++ {
			for tx := x0; tx <= x1; tx++ {
				code := s.Tile(tx, ty)
				if code != TileBreakable && code != TileHardBreakable {
					continue
				}
				level := 0
				if code == TileHardBreakable {
					level = 1
				}
				if bc.BreakCollision(float64(tx*ts), float64(ty*ts), ts, ts, level, env) {
					s.setTile(tx, ty, TileEmpty)
					env.PlaySound("break", 0.60)
				}
			}
		}
	}

	if !b.DisableCollisions {
		for ty := y0; ty <= y1; ty++ {
			for tx := x0; tx <= x1; tx++ {
				if !s.solidAt(tx, ty) {
					continue
				}
				x, y := float64(tx*ts), float64(ty*ts)
				if !s.solidAt(tx-1, ty) {
					object.WallCollision(o, x, y, ts, 1, env)
				}
				if !s.solidAt(tx+1, ty) {
					object.WallCollision(o, x+ts, y, ts, -1, env)
				}
			}
		}

		for ty := y0; ty <= y1; ty++ {
			for tx := x0; tx <= x1; tx++ {
				code := s.Tile(tx, ty)
				x, y := float64(tx*ts), float64(ty*ts)
				switch {
				case s.IsSolid(code):
					if !s.solidAt(tx, ty-1) {
						object.VerticalCollision(o, x, y, ts, 1, env)
					}
					if !s.solidAt(tx, ty+1) {
						object.VerticalCollision(o, x, y+ts, ts, -1, env)
					}
				case code == TilePlatform || code == TileLadderTop:
					if !s.solidAt(tx, ty-1) {
						object.VerticalCollision(o, x, y, ts, 1, env)
					}
				}
			}
		}
	}

	s.narrowPhase(o, x0, y0, x1, y1, env)
}

func (s *Stage) narrowPhase(o object.Object, x0, y0, x1, y1 int, env *object.Env) {
	const ts = common.TileSize

	ladder, isLadder := o.(LadderCollider)
	water, isWater := o.(WaterCollider)
	wind, isWind := o.(WindCollider)
	hurt, isHurt := o.(HurtCollider)
	if !isLadder && !isWater && !isWind && !isHurt {
		return
	}
	fans := s.fansEnabled()

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			x, y := float64(tx*ts), float64(ty*ts)
			switch s.Tile(tx, ty) {
			case TileLadder:
				if isLadder {
					ladder.LadderCollision(x+ladderInset, y, ts-2*ladderInset, ts, false, env)
				}
			case TileLadderTop:
				if isLadder {
					ladder.LadderCollision(x+ladderInset, y, ts-2*ladderInset, ts, true, env)
				}
			case TileWater:
				if isWater {
					water.WaterCollision(x, y, ts, ts, false, env)
				}
			case TileWaterSurface:
				if isWater {
					water.WaterCollision(x, y+surfaceOffset, ts, ts-surfaceOffset, true, env)
				}
			case TileWind:
				if isWind && fans {
					wind.WindCollision(x, y, ts, ts, env)
				}
			case TileSpikes:
				if isHurt {
					hurt.HurtCollision(x+spikeInset, y+ts-spikeHeight, ts-2*spikeInset, spikeHeight, 0, env)
				}
			}
		}
	}
}
