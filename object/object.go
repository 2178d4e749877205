// Package object is the shared state and update skeleton of every simulated
// entity: existence, death, camera visibility and tile-edge collision.
package object

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/physics"
)

const (
	defaultOffCameraRadius = 16
	defaultSize            = 16
)

// Base is embedded by every entity.
//
// Exist false means the object is never drawn, never collides and its slot may
// be reused. Dying objects keep updating through their death hook until it
// reports completion.
type Base struct {
	physics.Body

	Exist    bool
	Dying    bool
	InCamera bool

	// Hitbox is used against other objects, CollisionBox against tiles.
	Hitbox       geom.Vector
	CollisionBox geom.Vector
	Center       geom.Vector
	// Size is the visual extent used by the culling gate.
	Size geom.Vector

	OffCameraRadius float64

	// Static objects skip integration.
	Static bool

	DisableCollisions         bool
	TakeCameraBorderCollision bool

	resetPending bool
}

func NewBase(x, y float64, exist bool) Base {
	return Base{
		Body:            physics.NewBody(x, y),
		Exist:           exist,
		Hitbox:          geom.V(defaultSize, defaultSize),
		CollisionBox:    geom.V(defaultSize, defaultSize),
		Size:            geom.V(defaultSize, defaultSize),
		OffCameraRadius: defaultOffCameraRadius,
	}
}

func (b *Base) Obj() *Base { return b }

// Exists lets pooled objects satisfy pool.Poolable.
func (b *Base) Exists() bool { return b.Exist }

// Active is true for objects that take part in collisions this tick.
func (b *Base) Active() bool {
	return b.Exist && b.InCamera && !b.Dying
}

func (b *Base) HitboxBB() cp.BB {
	return geom.Box(b.Pos, b.Center, b.Hitbox)
}

func (b *Base) CollisionBB() cp.BB {
	return geom.Box(b.Pos, b.Center, b.CollisionBox)
}

func (b *Base) VisualBB() cp.BB {
	return geom.Box(b.Pos, geom.Vector{}, b.Size)
}

// Overlaps compares hitboxes.
func (b *Base) Overlaps(o *Base) bool {
	return geom.Overlap(b.HitboxBB(), o.HitboxBB())
}

// OverlapsSpecial compares b's hitbox with a box of o's that is not its regular
// hitbox, such as the spin attack area.
func (b *Base) OverlapsSpecial(o *Base, center, size geom.Vector) bool {
	return geom.Overlap(b.HitboxBB(), geom.Box(o.Pos, center, size))
}

func (b *Base) ResetPending() bool {
	return b.resetPending
}

// Object is anything with a Base.
type Object interface {
	Obj() *Base
}

// Optional hooks. The update skeleton checks for each one.
type (
	LogicUpdater interface {
		UpdateLogic(env *Env)
	}
	PreMover interface {
		PreMovement(env *Env)
	}
	PostMover interface {
		PostMovement(env *Env)
	}
	// Dier plays a death sequence. Returning true ends it and clears Exist.
	Dier interface {
		Die(env *Env) bool
	}
	OutsideCameraHandler interface {
		OutsideCamera()
	}
	// DeathEffect keeps a dying object visible while its effect plays.
	DeathEffect interface {
		DeathEffectActive() bool
	}
	// Resetter objects return to spawn state after leaving the camera.
	Resetter interface {
		Reset()
	}
	CollisionHandler interface {
		VerticalCollisionEvent(dir int, env *Env)
		WallCollisionEvent(dir int, env *Env)
	}
)

// Update runs the per-tick skeleton: skip non-existing and culled objects,
// advance death sequences, otherwise run logic, pre-movement, integration and
// post-movement in that order.
func Update(o Object, env *Env) {
	b := o.Obj()
	if !b.Exist || !b.InCamera {
		return
	}

	if b.Dying {
		d, ok := o.(Dier)
		if !ok || d.Die(env) {
			b.Exist = false
			b.Dying = false
		}
		return
	}

	if h, ok := o.(LogicUpdater); ok {
		h.UpdateLogic(env)
		if !b.Exist {
			return
		}
	}
	if b.Static {
		return
	}
	if h, ok := o.(PreMover); ok {
		h.PreMovement(env)
	}
	b.Integrate(env.Step)
	if h, ok := o.(PostMover); ok {
		h.PostMovement(env)
	}
}
