package player

import (
	"math"

	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/input"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/progress"
)

const (
	stickEps      = 0.01
	climbEps      = 0.1
	downEps       = 0.25
	slideBoxY     = 2.0
	baseBoxY      = 10.0
	dustGenBase   = 8.0
	dustGenRocket = 6.0
	dustAnimSpeed = 8.0
)

// PreMovement runs the mode machine before integration. Knockback consumes
// the whole tick; otherwise control, timed mode bookkeeping and the jump
// impulse run in that order.
func (p *Player) PreMovement(env *object.Env) {
	p.TakeCameraBorderCollision = p.FinalArea || p.mode == ModeKnockback

	p.updateDust(env)

	if p.mode == ModeKnockback {
		if p.knockbackTimer -= env.Step; p.knockbackTimer <= 0 {
			p.knockbackTimer = 0
			p.setMode(ModeNormal)
			if p.health <= 0 {
				p.StartDeath(env)
			} else {
				p.invulnTimer = p.spec.InvulnTime
			}
		}
		p.resetFlags()
		return
	}

	p.Pose = PoseNone

	p.control(env)
	p.updateTimers(env)
	p.updateJump(env)

	p.resetFlags()

	if p.invulnTimer > 0 {
		p.invulnTimer -= env.Step
	}
}

func (p *Player) computeCollisionBox() {
	if p.mode == ModeSlide {
		p.CollisionBox.Y = slideBoxY
		p.Center.Y = 6
		return
	}
	p.CollisionBox.Y = baseBoxY
	p.Center.Y = 2
}

func (p *Player) control(env *object.Env) {
	p.computeCollisionBox()
	p.Friction.Y = p.spec.FrictionY
	if p.mode == ModeDownAttack {
		p.Friction.Y = p.spec.DownAttackFriction
	}

	if !p.spin(env) {
		if p.waitDownAttack(env) || p.throwRock(env) || p.slide(env) {
			return
		}
	}

	p.startClimbing(env)
	if p.mode == ModeClimb {
		p.climb(env)
		return
	}

	stick := env.Stick()
	p.Target.X = stick.X * p.spec.MoveSpeed
	p.Target.Y = p.spec.Gravity
	p.face(stick.X)

	p.jump(env)

	p.running = p.hasItem(progress.ItemRunningShoes) && math.Abs(p.Target.X) > stickEps
	if p.running {
		p.Target.X *= p.spec.RunMod
	}

	if p.touchWater {
		const swimX, swimY = 0.5, 0.25

		p.Target.X *= swimX
		p.Target.Y *= swimY
		p.Friction.Y *= swimY
		if p.Speed.Y > p.Target.Y+stickEps {
			p.Speed.Y = p.Target.Y
		}
	}
}

// spin returns true while the spin attack owns the tick. Spinning keeps
// normal locomotion, so control continues below it.
func (p *Player) spin(env *object.Env) bool {
	switch p.mode {
	case ModeClimb, ModeThrow, ModeDownAttack, ModeDownAttackWait:
		return false
	case ModeSpin:
		return true
	}

	if !p.canSpin || !p.hasItem(progress.ItemSpinAttack) ||
		env.Action(input.Spin) != input.Pressed {
		return false
	}
	if !p.setMode(ModeSpin) {
		return false
	}
	p.spinTimer = 0
	p.spinCount = 0
	p.canSpin = false
	p.loco.flapping = false

	env.PlaySound("spin", 0.50)
	return true
}

func (p *Player) waitDownAttack(env *object.Env) bool {
	if p.mode == ModeDownAttackWait {
		if p.downAttackWait -= env.Step; p.downAttackWait > 0 {
			return true
		}
		p.downAttackWait = 0
		p.setMode(ModeNormal)
		return false
	}
	return p.mode == ModeDownAttack
}

func (p *Player) throwRock(env *object.Env) bool {
	if !p.hasItem(progress.ItemRock) {
		return false
	}
	if p.mode == ModeThrow {
		return true
	}
	if p.mode == ModeSlide || !p.canThrow || env.Action(input.Throw) != input.Pressed {
		return false
	}

	resume := ModeNormal
	if p.mode == ModeClimb {
		resume = ModeClimb
	}
	if !p.setMode(ModeThrow) {
		return false
	}
	p.throwResume = resume
	p.throwTimer = p.spec.ThrowTime
	p.canThrow = false

	p.Stop()

	if p.projectiles != nil {
		dir := float64(p.FaceDir)
		p.projectiles.Spawn(p.Pos.X+dir*6, p.Pos.Y-2,
			dir*p.spec.RockSpeed, p.spec.RockJump, true, 0, true)
	}
	env.PlaySound("throw", 0.60)
	return true
}

func (p *Player) slide(env *object.Env) bool {
	if !p.hasItem(progress.ItemSlide) {
		return false
	}

	s := env.Action(input.Slide)
	if p.mode == ModeSlide {
		if p.slideTimer -= env.Step; p.slideTimer <= 0 || !s.Held() {
			p.slideTimer = 0
			p.setMode(ModeNormal)
			p.computeCollisionBox()
			return false
		}
		return true
	}

	if !p.canJump || s != input.Pressed || !p.setMode(ModeSlide) {
		return false
	}

	p.slideTimer = p.spec.SlideTime
	p.Target.X = 0
	p.Speed.X = p.spec.SlideSpeed * float64(p.FaceDir)
	p.dustTimer = 0
	p.computeCollisionBox()

	env.PlaySound("jump", 0.50)
	return true
}

func (p *Player) startClimbing(env *object.Env) {
	if p.mode == ModeClimb || !p.touchLadder {
		return
	}
	if !(!p.isLadderTop && env.Input.UpPress() || p.isLadderTop && env.Input.DownPress()) {
		return
	}
	if !p.setMode(ModeClimb) {
		return
	}

	p.doubleJump = false
	p.canSpin = true

	p.Pos.X = p.climbX
	if p.isLadderTop {
		p.Pos.Y += 6
	}
	p.Stop()
}

func (p *Player) climb(env *object.Env) {
	stick := env.Stick()

	p.Target.X = 0
	if math.Abs(stick.X) > climbEps {
		p.face(stick.X)
	}

	if !p.touchLadder {
		p.setMode(ModeNormal)
		return
	}

	p.canThrow = true
	p.Target.Y = p.spec.ClimbSpeed * stick.Y

	if env.Action(input.Jump) == input.Pressed {
		p.setMode(ModeNormal)
		p.doubleJump = false
		p.loco.jumpReleased = false
		if stick.Y < climbEps {
			p.loco.jumpTimer = p.spec.ClimbJumpTime
			p.loco.jumpSpeed = p.spec.JumpSpeed
		}
		env.PlaySound("jump", 0.50)
	}
}

func (p *Player) jump(env *object.Env) {
	s := env.Action(input.Jump)

	if p.hasItem(progress.ItemDownAttack) &&
		!p.canJump &&
		p.mode != ModeSpin &&
		env.Stick().Y > downEps &&
		s == input.Pressed &&
		p.setMode(ModeDownAttack) {

		p.downAttackWait = 0
		p.Stop()
		p.Speed.Y = p.spec.DownAttackJump
		p.Target.Y = p.spec.DownAttackGravity

		env.PlaySound("dive", 0.55)
		return
	}

	canDouble := !p.doubleJump && p.hasItem(progress.ItemDoubleJump)
	switch {
	case p.loco.jumpTimer <= 0 && (p.jumpMargin > 0 || canDouble) && s == input.Pressed:
		if p.jumpMargin > 0 {
			p.loco.jumpSpeed = p.spec.JumpSpeed + math.Abs(p.Speed.X)*p.spec.JumpSpeedMod
			p.jumpMargin = 0
			p.loco.jumpTimer = p.spec.JumpTime

			env.PlaySound("jump", 0.50)
		} else {
			p.loco.jumpTimer = p.spec.DoubleJumpTime
			p.loco.jumpSpeed = p.spec.JumpSpeed
			p.doubleJump = true
		}
		p.canJump = false
		p.loco.jumpReleased = false

	case p.loco.jumpTimer > 0 && !s.Held():
		p.loco.jumpTimer = 0
	}

	if !p.loco.flapping && !p.loco.jumpReleased && !s.Held() {
		p.loco.jumpReleased = true
	}

	p.loco.flapping = !p.touchWater &&
		!p.canJump &&
		p.mode != ModeSpin &&
		p.hasItem(progress.ItemFlap) &&
		p.loco.jumpReleased &&
		p.loco.jumpTimer <= 0 &&
		(!p.hasItem(progress.ItemDoubleJump) || p.doubleJump) &&
		s.Held()
	if p.loco.flapping {
		p.Target.Y = p.spec.FlapGravity
		if p.Speed.Y > p.Target.Y {
			p.Speed.Y = p.Target.Y
		}
	}
}

// updateTimers advances the fixed-length modes.
func (p *Player) updateTimers(env *object.Env) {
	switch p.mode {
	case ModeSpin:
		p.spinTimer += env.Step
		if p.spinTimer < p.spec.SpinRotation {
			return
		}
		p.spinTimer -= p.spec.SpinRotation
		s := env.Action(input.Spin)
		if p.spinCount++; p.spinCount >= p.spec.SpinMax || !s.Held() {
			p.spinCount = 0
			p.setMode(ModeNormal)
		} else if s == input.Down {
			env.PlaySound("spin", 0.50)
		}

	case ModeThrow:
		if p.throwTimer -= env.Step; p.throwTimer <= 0 {
			p.throwTimer = 0
			p.setMode(p.throwResume)
		}
	}
}

func (p *Player) updateJump(env *object.Env) {
	if p.jumpMargin > 0 {
		p.jumpMargin -= env.Step
	}
	if p.loco.jumpTimer <= 0 {
		return
	}
	if p.canJump {
		p.loco.jumpTimer = 0
		return
	}

	p.loco.jumpTimer -= env.Step
	if p.doubleJump {
		p.Speed.Y = math.Max(p.spec.DoubleJumpMin, p.Speed.Y+p.spec.DoubleJumpDelta*env.Step)
	} else {
		p.Speed.Y = -p.loco.jumpSpeed
		if p.touchWater {
			p.Speed.Y /= 2
		}
	}

	if p.loco.jumpTimer <= 0 && p.doubleJump {
		p.loco.jumpReleased = true
		p.loco.flapping = true
	}
}

func (p *Player) updateDust(env *object.Env) {
	const rocketUp, rocketFloat = 0.5, 1.0

	p.Dust.Update(env.Step)

	rocket := p.mode != ModeSpin && p.mode != ModeThrow &&
		((p.doubleJump && p.loco.jumpTimer > 0) || p.loco.flapping)
	if !rocket && (p.mode == ModeSlide || !p.canJump || p.mode == ModeSpin ||
		p.mode == ModeKnockback || math.Abs(p.Speed.X) <= stickEps) {
		return
	}

	dir := float64(p.FaceDir)
	pos := geom.V(p.Pos.X-2*dir, p.Pos.Y+6)
	var speed geom.Vector
	genTime := dustGenRocket
	if !rocket {
		genTime = dustGenBase / math.Abs(p.Speed.X)
	} else {
		speed.Y = rocketUp
		if p.loco.flapping {
			speed.Y = rocketFloat
		}
		pos.X -= dir
	}

	if p.dustTimer += env.Step; p.dustTimer < genTime {
		return
	}
	row := 0
	if rocket {
		row = 1
		env.PlaySound("rocket", 0.50)
	}
	p.Dust.Spawn(pos.X, pos.Y, dustAnimSpeed, speed, row)
	p.dustTimer -= genTime
}
