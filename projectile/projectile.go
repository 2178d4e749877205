// Package projectile implements thrown rocks and enemy bullets.
package projectile

import (
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/pool"
)

// Sprite ids.
const (
	IDRock   = 0
	IDBullet = 1
)

const (
	gravity         = 4.0
	gravityFriction = 0.1
	deathTime       = 16
)

type Projectile struct {
	object.Base

	ID       int
	Friendly bool

	deathTimer float64
}

// Spawn reinitializes p in place. With gravity the vertical speed starts at sy
// and falls; without it p flies straight.
func (p *Projectile) Spawn(x, y, sx, sy float64, getGravity bool, id int, friendly bool) {
	p.Base = object.NewBase(x, y, true)
	p.Hitbox = geom.V(4, 4)
	p.CollisionBox = geom.V(4, 4)
	p.Size = geom.V(8, 8)
	p.OffCameraRadius = 0
	p.InCamera = true

	p.Speed = geom.V(sx, sy)
	p.Target = geom.V(sx, sy)
	if getGravity {
		p.Target.Y = gravity
		p.Friction.Y = gravityFriction
	}

	p.ID = id
	p.Friendly = friendly
	p.deathTimer = 0
}

// Destroy starts the short puff animation. Destroying twice is a no-op.
func (p *Projectile) Destroy(env *object.Env) {
	if !p.Exist || p.Dying {
		return
	}
	p.Dying = true
	p.deathTimer = deathTime
	p.Stop()
	env.PlaySound("destroy", 0.40)
}

func (p *Projectile) Die(env *object.Env) bool {
	p.deathTimer -= env.Step
	return p.deathTimer <= 0
}

func (p *Projectile) OutsideCamera() {
	p.Exist = false
}

func (p *Projectile) VerticalCollisionEvent(dir int, env *object.Env) {
	p.Destroy(env)
}

func (p *Projectile) WallCollisionEvent(dir int, env *object.Env) {
	p.Destroy(env)
}

// BreakCollision lets friendly rocks break both breakable kinds. The rock is
// used up by the break.
func (p *Projectile) BreakCollision(x, y, w, h float64, level int, env *object.Env) bool {
	if !p.Friendly || p.ID != IDRock || p.Dying {
		return false
	}
	if geom.BoxOverlap(p.Pos, p.Center, p.CollisionBox, x, y, w, h) {
		p.Destroy(env)
		return true
	}
	return false
}

// DeathFrame is the animation column of the death puff.
func (p *Projectile) DeathFrame() int {
	return int((deathTime - p.deathTimer) / (deathTime / 4))
}

// Spawner is implemented by anything that can fire projectiles.
type Spawner interface {
	Spawn(x, y, sx, sy float64, getGravity bool, id int, friendly bool) *Projectile
}

// Set is the pool of live projectiles.
type Set struct {
	pool *pool.Pool[*Projectile]
}

func NewSet(capacity int) *Set {
	return &Set{pool: pool.New(capacity, func() *Projectile { return &Projectile{} })}
}

func (s *Set) Spawn(x, y, sx, sy float64, getGravity bool, id int, friendly bool) *Projectile {
	p := s.pool.Acquire()
	p.Spawn(x, y, sx, sy, getGravity, id, friendly)
	return p
}

// Each visits every existing projectile.
func (s *Set) Each(fn func(*Projectile)) {
	s.pool.Each(func(p *Projectile) {
		if p.Exist {
			fn(p)
		}
	})
}

func (s *Set) Clear() {
	s.pool.Each(func(p *Projectile) {
		p.Exist = false
		p.Dying = false
	})
}

func (s *Set) Active() int { return s.pool.Active() }
