// Package enemy implements every enemy species on one shared struct. A
// species is a row in the kinds table: constants plus behavior functions.
package enemy

import (
	"math"

	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/projectile"
	"github.com/milk9111/starseeker/randomizer"
)

// DeathMode selects how a killed enemy leaves the screen.
type DeathMode uint8

const (
	// DeathPuff plays in place and ends after the death timer.
	DeathPuff DeathMode = iota
	// DeathSpun flings the enemy off screen. It ends when it leaves the
	// camera.
	DeathSpun
)

const (
	defaultFrictionX = 0.1
	defaultFrictionY = 0.15
	defaultBox       = 8
)

// Deps are the collaborators shared by every enemy in a scene.
type Deps struct {
	Spec        prefabs.EnemySpec
	Projectiles projectile.Spawner
	Checks      randomizer.Checker
}

type Enemy struct {
	object.Base

	Species  Species
	EntityID int

	kind *kind
	deps Deps

	startPos geom.Vector

	canJump    bool
	oldCanJump bool

	knockdownTimer float64
	previousShake  bool

	deathTimer float64
	deathMode  DeathMode
	DeathPos   geom.Vector

	ghost bool
	dir   int

	// FaceRight mirrors the sprite.
	FaceRight bool

	// Species state. Each behavior uses the fields it needs.
	baseSpeed float64
	jumpTimer float64
	wave      geom.Vector
	angle     float64
	phase     int
	timer     float64
	aim       geom.Vector
}

// New spawns an enemy of the given species. Out-of-range species are clamped
// to the table.
func New(species int, x, y float64, entityID int, deps Deps) *Enemy {
	s := clampSpecies(species)
	k := &kinds[s]

	e := &Enemy{
		Base:     object.NewBase(x, y+k.yOffset, true),
		Species:  s,
		EntityID: entityID,
		kind:     k,
		deps:     deps,
	}
	e.startPos = e.Pos
	e.dir = startDir(x)

	e.Hitbox = k.hitbox
	e.Center = k.center
	e.CollisionBox = geom.V(defaultBox, defaultBox)
	if k.collisionBox.X > 0 {
		e.CollisionBox.X = k.collisionBox.X
	}
	if k.collisionBox.Y > 0 {
		e.CollisionBox.Y = k.collisionBox.Y
	}
	e.Friction = geom.V(defaultFrictionX, defaultFrictionY)
	if k.frictionY > 0 {
		e.Friction.Y = k.frictionY
	}
	if k.offCameraRadius > 0 {
		e.OffCameraRadius = k.offCameraRadius
	}
	e.DisableCollisions = k.noTileCollisions
	if k.baseGravity {
		e.Target.Y = deps.Spec.Gravity
	}

	if k.init != nil {
		k.init(e)
	}
	if k.respawn != nil {
		k.respawn(e)
	}
	return e
}

// startDir alternates the initial walking direction by tile column.
func startDir(x float64) int {
	return -1 + 2*common.NegModInt(int(math.Floor(x/16)), 2)
}

func (e *Enemy) SetSpec(spec prefabs.EnemySpec) {
	e.deps.Spec = spec
}

func (e *Enemy) Ghost() bool { return e.ghost }

// MakeGhost turns an enemy killed in an earlier session into a ghost. Ghosts
// stay interactive: they still hurt the player and can be stomped or shot.
// Only their kills are never recorded.
func (e *Enemy) MakeGhost() { e.ghost = true }

func (e *Enemy) KnockedDown() bool { return e.knockdownTimer > 0 }

func (e *Enemy) DeathMode() DeathMode { return e.deathMode }

func (e *Enemy) DeathTimer() float64 { return e.deathTimer }

func (e *Enemy) StartPos() geom.Vector { return e.startPos }

// Phase exposes the species sub-state, such as the fake block's fall phase.
func (e *Enemy) Phase() int { return e.phase }

func (e *Enemy) PreMovement(env *object.Env) {
	if e.canJump && env.Shaking() &&
		(e.knockdownTimer <= 0 || !e.previousShake) && !e.kind.noKnockdown {
		e.knockDown(true)
	}

	if e.knockdownTimer > 0 {
		e.knockdownTimer -= env.Step
		return
	}

	if e.kind.ai != nil {
		e.kind.ai(e, env)
	}
	e.previousShake = env.Shaking()
}

func (e *Enemy) PostMovement(env *object.Env) {
	e.oldCanJump = e.canJump
	e.canJump = false
}

func (e *Enemy) VerticalCollisionEvent(dir int, env *object.Env) {
	if dir == 1 {
		e.canJump = true
	}
	if e.kind.vertical != nil {
		e.kind.vertical(e, dir, env)
	}
}

func (e *Enemy) WallCollisionEvent(dir int, env *object.Env) {
	if e.kind.wall != nil {
		e.kind.wall(e, dir, env)
	}
}

// Die plays the death sequence. A spun enemy keeps falling and is removed
// once it leaves the camera.
func (e *Enemy) Die(env *object.Env) bool {
	e.FaceRight = false
	if e.deathMode == DeathSpun {
		e.Target.Y = e.deps.Spec.SpunGravity
		e.Integrate(env.Step)
	}
	e.deathTimer -= env.Step
	return e.deathMode == DeathPuff && e.deathTimer <= 0
}

func (e *Enemy) DeathEffectActive() bool {
	return e.Dying && e.deathMode == DeathSpun && e.deathTimer > 0
}

func (e *Enemy) knockDown(jump bool) {
	e.Target.X = 0
	e.Speed.X = 0
	e.knockdownTimer = e.deps.Spec.KnockdownTime
	if jump {
		e.Speed.Y = e.deps.Spec.KnockdownJump * (e.Friction.Y / defaultFrictionY)
	}
}

// kill starts the death sequence. The first kill of a non-ghost enemy is
// recorded and reported as a location check.
func (e *Enemy) kill(prog *progress.Manager, mode DeathMode, env *object.Env) {
	e.Dying = true
	e.knockdownTimer = 0
	e.deathTimer = e.deps.Spec.DeathTime
	e.deathMode = mode
	e.DeathPos = e.Pos

	if !e.ghost && prog != nil && prog.AddToSet(progress.SetEnemiesKilled, e.EntityID) {
		prog.AddNumber(progress.NumKills, 1)
		randomizer.Check(e.deps.Checks, randomizer.EnemyLocation(e.EntityID))
	}

	env.PlaySound("kill", 0.40)
}

func (e *Enemy) spinKnockback(p *player.Player) {
	dir := -1.0
	if p.Pos.X < e.Pos.X {
		dir = 1
	}
	e.Target.X = dir * e.deps.Spec.SpinKnockback
	e.Speed.X = e.Target.X
	e.Speed.Y = -e.deps.Spec.SpinKnockback
}

func (e *Enemy) spinnable() bool {
	return !e.kind.noSpin || e.knockdownTimer > 0
}

func (e *Enemy) stompable() bool {
	return !e.kind.noStomp || e.knockdownTimer > 0
}

// PlayerCollision resolves contact with the player: the spin attack first,
// then a stomp from above, otherwise the player takes damage.
func (e *Enemy) PlayerCollision(p *player.Player, env *object.Env) bool {
	const (
		stompMargin     = 4
		stompExtraRange = 2
		speedEps        = -0.25
	)

	if !e.Active() {
		return false
	}

	if e.spinnable() && p.CheckSpinOverlap(&e.Base) {
		e.spinKnockback(p)
		e.kill(p.Progress(), DeathSpun, env)
		return true
	}

	y := e.Pos.Y + e.Center.Y - e.Hitbox.Y - stompMargin/4
	h := stompMargin + math.Abs(e.Speed.Y)

	py := p.Pos.Y + p.Hitbox.Y/2
	px := p.Pos.X - p.Hitbox.X/2

	if e.stompable() &&
		(!p.Swimming() || p.Spinning()) &&
		p.Speed.Y > speedEps &&
		px+p.Hitbox.X >= e.Pos.X-e.Hitbox.X/2-stompExtraRange &&
		px <= e.Pos.X+e.Hitbox.X/2+stompExtraRange &&
		py >= y && py <= y+h {

		if p.Spinning() {
			if e.spinnable() {
				e.spinKnockback(p)
				e.kill(p.Progress(), DeathSpun, env)
				return true
			}
		} else {
			p.MakeJump(e.deps.Spec.StompBounce)
			if (e.kind.noKillOnStomp || e.kind.knockOnStomp) && !p.DownAttacking() {
				env.PlaySound("hop", 0.55)
			}
		}

		switch {
		case e.kind.knockOnStomp && !p.DownAttacking() && !p.Spinning():
			e.knockDown(false)
		case !e.kind.noKillOnStomp || p.DownAttacking():
			e.kill(p.Progress(), DeathPuff, env)
		}
		return true
	}

	if e.knockdownTimer <= 0 && e.kind.playerEvent != nil {
		e.kind.playerEvent(e, p, env)
	}

	return p.HurtCollision(
		e.Pos.X-e.Hitbox.X/2, e.Pos.Y-e.Hitbox.Y/2,
		e.Hitbox.X, e.Hitbox.Y,
		int(common.Sign(p.Pos.X-e.Pos.X)), env)
}

// ProjectileCollision lets friendly projectiles hit the enemy. The
// projectile is used up even if the enemy survives.
func (e *Enemy) ProjectileCollision(pr *projectile.Projectile, p *player.Player, env *object.Env) bool {
	if !pr.Friendly || !e.Active() || !pr.Exist || pr.Dying {
		return false
	}
	if !e.Overlaps(&pr.Base) {
		return false
	}
	pr.Destroy(env)
	if !e.kind.projectileProof {
		e.kill(p.Progress(), DeathPuff, env)
	}
	return true
}

// Reset returns a live enemy to its spawn state. It runs when the enemy has
// left the camera and the camera has stopped.
func (e *Enemy) Reset() {
	if !e.Exist || e.Dying {
		return
	}

	e.canJump = false
	e.oldCanJump = false
	e.Stop()
	e.Teleport(e.startPos)
	e.FaceRight = false
	e.deathTimer = 0

	if e.kind.respawn != nil {
		e.kind.respawn(e)
	}
	if e.kind.baseGravity {
		e.Target.Y = e.deps.Spec.Gravity
	}
	e.knockdownTimer = 0
}

// Respawn brings the enemy back when the player respawns. Enemies that were
// dead by then come back as ghosts.
func (e *Enemy) Respawn() {
	e.ghost = e.ghost || !e.Exist || e.Dying
	e.Dying = false
	e.Exist = true
	e.Reset()
}

// facePlayer mirrors the sprite toward the player.
func (e *Enemy) facePlayer(p *player.Player) {
	e.FaceRight = p.Pos.X >= e.Pos.X
}
