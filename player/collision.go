package player

import (
	"math"

	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/projectile"
)

func (p *Player) VerticalCollisionEvent(dir int, env *object.Env) {
	const hitMagnitude = 2

	if dir != 1 {
		p.loco.jumpTimer = 0
		if p.doubleJump {
			p.loco.jumpReleased = true
			p.loco.flapping = true
		}
		return
	}

	p.canJump = true
	p.jumpMargin = p.spec.JumpMargin
	p.loco.jumpTimer = 0
	p.doubleJump = false
	p.canThrow = true
	p.canSpin = true

	switch p.mode {
	case ModeClimb:
		p.setMode(ModeNormal)
	case ModeDownAttack:
		p.setMode(ModeDownAttackWait)
		p.downAttackWait = p.spec.DownAttackWait

		env.StartShake(p.spec.DownAttackWait, hitMagnitude)
		env.PlaySound("shake", 0.50)
	}
}

func (p *Player) WallCollisionEvent(dir int, env *object.Env) {
	if p.mode == ModeSlide {
		p.setMode(ModeNormal)
	}
	p.slideTimer = 0
}

func (p *Player) LadderCollision(x, y, w, h float64, top bool, env *object.Env) bool {
	if !geom.BoxOverlap(p.Pos, p.Center, p.CollisionBox, x, y, w, h) {
		return false
	}

	p.climbX = x + w/2
	p.touchLadder = !top || p.mode != ModeClimb
	p.isLadderTop = p.isLadderTop || top

	if p.mode != ModeClimb {
		p.ShowSymbol = true
		p.SymbolID = SymbolInteract
		if top {
			p.SymbolID = SymbolLadderTop
		}
	}
	return true
}

// BreakCollision breaks player-level tiles with the spin attack (item 8), the
// head while jumping (item 10), or a falling down attack.
func (p *Player) BreakCollision(x, y, w, h float64, level int, env *object.Env) bool {
	const (
		yOff       = -4
		headHeight = 8
	)

	if level != 0 {
		return false
	}
	y += yOff

	if p.mode == ModeSpin && p.hasItem(progress.ItemSpinBreak) {
		return geom.BoxOverlap(p.Pos, spinCenter, spinHitbox, x, y, w, h)
	}

	if p.Speed.Y < 0 && p.hasItem(progress.ItemHeadBreak) {
		head := geom.V(p.CollisionBox.X, headHeight)
		if geom.BoxOverlap(p.Pos, geom.V(0, -p.CollisionBox.Y/2), head, x, y, w, h) {
			p.Speed.Y = 0
			p.loco.jumpTimer = 0
			return true
		}
	}

	if p.mode != ModeDownAttack || p.Speed.Y <= 0 {
		return false
	}
	return geom.BoxOverlap(p.Pos, p.Center, p.CollisionBox, x, y, w, h)
}

// hurt applies one point of damage and knocks the player away along dir. A
// zero dir pushes the player backwards.
func (p *Player) hurt(dir int, env *object.Env) {
	if !p.setMode(ModeKnockback) {
		return
	}
	p.knockbackTimer = p.spec.KnockbackTime

	if dir == 0 {
		dir = -p.FaceDir
	}
	p.Target.X = 0
	p.Speed.X = p.spec.KnockbackSpeed * float64(dir)

	p.resetProperties(false)
	p.health = common.ClampInt(p.health-1, 0, p.MaxHealth())

	env.PlaySound("hurt", 0.60)
}

func (p *Player) vulnerable() bool {
	return p.Exist && !p.Dying && p.invulnTimer <= 0 && p.mode != ModeKnockback
}

// HurtCollision damages the player if its hitbox overlaps the area.
func (p *Player) HurtCollision(x, y, w, h float64, dir int, env *object.Env) bool {
	if !p.vulnerable() {
		return false
	}
	if geom.BoxOverlap(p.Pos, p.Center, p.Hitbox, x, y, w, h) {
		p.hurt(dir, env)
		return true
	}
	return false
}

func (p *Player) WindCollision(x, y, w, h float64, env *object.Env) bool {
	const (
		speedDown = -0.5
		minSpeed  = -3.0
	)

	if !geom.BoxOverlap(p.Pos, p.Center, p.Hitbox, x, y, w, h) {
		return false
	}
	p.loco.flapping = false
	if p.mode == ModeDownAttack || p.mode == ModeDownAttackWait {
		p.setMode(ModeNormal)
	}
	p.downAttackWait = 0
	p.loco.jumpReleased = false
	p.Speed.Y = math.Max(minSpeed, p.Speed.Y+speedDown*env.Step)
	return true
}

// WaterCollision never reports "applies" so neighbouring water tiles all get
// to push the player.
func (p *Player) WaterCollision(x, y, w, h float64, surface bool, env *object.Env) bool {
	const upSpeed = -0.25

	if p.Inside || !geom.BoxOverlap(p.Pos, p.Center, p.Hitbox, x, y, w, h) {
		return false
	}

	p.jumpMargin = 1
	p.touchWater = true
	p.canThrow = true
	p.canSpin = true
	p.loco.flapping = false
	p.doubleJump = false

	if p.mode == ModeDownAttack || p.mode == ModeDownAttackWait {
		p.setMode(ModeNormal)
	}
	p.downAttackWait = 0

	if !surface && !p.hasItem(progress.ItemDiving) {
		p.Speed.Y += upSpeed * env.Step
	}
	return false
}

// ProjectileCollision is hit by hostile projectiles only.
func (p *Player) ProjectileCollision(pr *projectile.Projectile, env *object.Env) bool {
	if pr.Friendly || pr.Dying || !pr.Exist || !p.vulnerable() {
		return false
	}
	if !p.Overlaps(&pr.Base) {
		return false
	}
	p.hurt(int(common.Sign(p.Pos.X-pr.Pos.X)), env)
	pr.Destroy(env)
	return true
}
