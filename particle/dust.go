// Package particle holds short-lived visual particles that still follow the
// simulation clock, such as the dust trail behind the player.
package particle

import (
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/pool"
)

const dustFrames = 4

// Dust drifts at a constant speed and disappears after its animation has
// played once.
type Dust struct {
	Pos   geom.Vector
	Speed geom.Vector
	// Row selects the sprite row: 0 ground dust, 1 rocket exhaust.
	Row int

	animSpeed float64
	timer     float64
	exist     bool
}

func (d *Dust) Exists() bool { return d.exist }

func (d *Dust) Spawn(x, y, animSpeed float64, speed geom.Vector, row int) {
	d.Pos = geom.V(x, y)
	d.Speed = speed
	d.Row = row
	d.animSpeed = animSpeed
	d.timer = 0
	d.exist = true
}

func (d *Dust) Update(step float64) {
	if !d.exist {
		return
	}
	d.Pos = d.Pos.Add(d.Speed.Mult(step))
	d.timer += step
	if d.Frame() >= dustFrames {
		d.exist = false
	}
}

// Frame is the animation column the renderer should show.
func (d *Dust) Frame() int {
	if d.animSpeed <= 0 {
		return dustFrames
	}
	return int(d.timer / d.animSpeed)
}

func (d *Dust) Kill() { d.exist = false }

// Emitter owns a pool of dust particles.
type Emitter struct {
	pool *pool.Pool[*Dust]
}

func NewEmitter(capacity int) *Emitter {
	return &Emitter{pool: pool.New(capacity, func() *Dust { return &Dust{} })}
}

// Spawn reuses the first dead particle, growing the pool when all are alive.
func (e *Emitter) Spawn(x, y, animSpeed float64, speed geom.Vector, row int) *Dust {
	d := e.pool.Acquire()
	d.Spawn(x, y, animSpeed, speed, row)
	return d
}

func (e *Emitter) Update(step float64) {
	e.pool.Each(func(d *Dust) { d.Update(step) })
}

func (e *Emitter) Each(fn func(*Dust)) {
	e.pool.Each(func(d *Dust) {
		if d.exist {
			fn(d)
		}
	})
}

func (e *Emitter) Clear() {
	e.pool.Each(func(d *Dust) { d.Kill() })
}

func (e *Emitter) Active() int { return e.pool.Active() }

func (e *Emitter) Cap() int { return e.pool.Len() }
