// Package physics advances an object's velocity toward a per-axis target.
//
// Every axis converges linearly toward Target at Friction units per tick, so the
// terminal velocity of a surface (air, water, ladder) is simply the target that
// the owner writes. Gravity is a positive Target.Y.
package physics

import (
	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/geom"
)

type Body struct {
	Pos      geom.Vector
	OldPos   geom.Vector
	Speed    geom.Vector
	Target   geom.Vector
	Friction geom.Vector
}

func NewBody(x, y float64) Body {
	p := geom.V(x, y)
	return Body{Pos: p, OldPos: p}
}

// UpdateSpeed moves Speed toward Target without touching Pos.
func (b *Body) UpdateSpeed(step float64) {
	b.Speed.X = common.Approach(b.Speed.X, b.Target.X, b.Friction.X*step)
	b.Speed.Y = common.Approach(b.Speed.Y, b.Target.Y, b.Friction.Y*step)
}

// Integrate runs one tick: converge speed, then advance position.
func (b *Body) Integrate(step float64) {
	b.UpdateSpeed(step)

	b.OldPos = b.Pos
	b.Pos = b.Pos.Add(b.Speed.Mult(step))
}

func (b *Body) Stop() {
	b.Speed = geom.Vector{}
	b.Target = geom.Vector{}
}

// Teleport moves the body without producing a swept movement for the collider.
func (b *Body) Teleport(p geom.Vector) {
	b.Pos = p
	b.OldPos = p
}
