// Package player implements the player character: a mode machine over the
// shared object skeleton, reacting to tile and object collisions.
package player

import (
	"math"

	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/particle"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/projectile"
)

// Pose overrides the animation for scripted moments.
type Pose uint8

const (
	PoseNone Pose = iota
	PoseUse
	PoseHandsUp
	PoseObtainItem
	PoseSleep
	PoseTeleport
)

// Symbol ids shown above the player's head.
const (
	SymbolInteract  = 0
	SymbolLadderTop = 1
)

// Checkpoint is the last save point the player activated.
type Checkpoint interface {
	CheckpointPos() geom.Vector
}

var stopMusic = event.Event{Kind: event.KindMusic, Name: "stop"}

var (
	spinCenter = geom.V(0, -3)
	spinHitbox = geom.V(28, 6)
)

// locomotion is the jump state of the airborne modes. It is zeroed whenever
// the player leaves them.
type locomotion struct {
	jumpTimer    float64
	jumpSpeed    float64
	jumpReleased bool
	flapping     bool
}

type Player struct {
	object.Base

	spec        prefabs.PlayerSpec
	progress    *progress.Manager
	projectiles projectile.Spawner
	Dust        *particle.Emitter

	mode Mode
	loco locomotion

	// Grounding state, refreshed by collisions every tick.
	canJump     bool
	jumpMargin  float64
	doubleJump  bool
	touchWater  bool
	touchLadder bool
	isLadderTop bool
	climbX      float64

	canThrow bool
	canSpin  bool
	running  bool

	slideTimer     float64
	spinTimer      float64
	spinCount      int
	throwTimer     float64
	throwResume    Mode
	downAttackWait float64

	knockbackTimer float64
	invulnTimer    float64
	deathTimer     float64
	dustTimer      float64

	FaceDir int
	Pose    Pose

	ShowSymbol bool
	SymbolID   int

	HoldingItem bool
	ItemID      int

	Inside      bool
	startInside bool
	teleported  bool

	health     int
	checkpoint Checkpoint
	startPos   geom.Vector

	FinalArea bool
}

// New places the player one pixel below (x, y) so it settles onto the floor
// on the first tick.
func New(x, y float64, spec prefabs.PlayerSpec, prog *progress.Manager,
	projectiles projectile.Spawner, inside, finalArea bool) *Player {

	p := &Player{
		Base:        object.NewBase(x, y+1, true),
		spec:        spec,
		progress:    prog,
		projectiles: projectiles,
		Dust:        particle.NewEmitter(8),
		canJump:     true,
		FaceDir:     1,
		Inside:      inside,
		startInside: inside,
		FinalArea:   finalArea,
	}
	p.Hitbox = geom.V(9, 11)
	p.Center = geom.V(0, 2)
	p.CollisionBox = geom.V(8, 12)
	p.Friction = geom.V(spec.FrictionX, spec.FrictionY)
	p.OffCameraRadius = 0
	p.InCamera = true
	p.Target.Y = spec.Gravity
	p.startPos = p.Pos
	p.health = p.MaxHealth()
	return p
}

// SetSpec swaps the tuning, used when prefabs are reloaded.
func (p *Player) SetSpec(spec prefabs.PlayerSpec) {
	p.spec = spec
}

func (p *Player) Mode() Mode { return p.mode }

// setMode changes the movement mode. Illegal transitions are rejected and
// leave the player untouched.
func (p *Player) setMode(m Mode) bool {
	if !CanTransition(p.mode, m) {
		return false
	}
	if p.mode != m && !(p.mode.keepsLocomotion() && m.keepsLocomotion()) {
		p.loco = locomotion{}
	}
	p.mode = m
	return true
}

// forceMode is for respawns, where every mode returns to normal.
func (p *Player) forceMode(m Mode) {
	p.mode = m
	p.loco = locomotion{}
}

func (p *Player) hasItem(id int) bool {
	return p.progress != nil && p.progress.HasItem(id)
}

func (p *Player) Progress() *progress.Manager { return p.progress }

func (p *Player) MaxHealth() int {
	if p.hasItem(progress.ItemExtraHeart) {
		return p.spec.Health + 1
	}
	return p.spec.Health
}

func (p *Player) Health() int { return p.health }

func (p *Player) MaximizeHealth() {
	p.health = p.MaxHealth()
}

func (p *Player) CanJump() bool          { return p.canJump }
func (p *Player) DoubleJumped() bool     { return p.doubleJump }
func (p *Player) Flapping() bool         { return p.loco.flapping }
func (p *Player) Jumping() bool          { return p.loco.jumpTimer > 0 }
func (p *Player) Swimming() bool         { return p.touchWater }
func (p *Player) Spinning() bool         { return p.mode == ModeSpin }
func (p *Player) DownAttacking() bool    { return p.mode == ModeDownAttack }
func (p *Player) Invulnerable() bool     { return p.invulnTimer > 0 }
func (p *Player) KnockedBack() bool      { return p.mode == ModeKnockback }
func (p *Player) DeathTimer() float64    { return p.deathTimer }
func (p *Player) Checkpoint() Checkpoint { return p.checkpoint }

func (p *Player) SetCheckpoint(c Checkpoint) { p.checkpoint = c }

func (p *Player) ResetCheckpoint() { p.checkpoint = nil }

// TouchGround is true when the player stands still enough to interact.
func (p *Player) TouchGround() bool {
	return p.canJump && p.mode.keepsLocomotion()
}

// CheckSpinOverlap tests o against the spin attack area.
func (p *Player) CheckSpinOverlap(o *object.Base) bool {
	return p.mode == ModeSpin && o.OverlapsSpecial(&p.Base, spinCenter, spinHitbox)
}

// MakeJump bounces the player, as when stomping an enemy.
func (p *Player) MakeJump(speed float64) {
	if p.mode == ModeDownAttack {
		return
	}
	p.Speed.Y = speed
	p.loco.flapping = false
	p.loco.jumpReleased = false
	p.doubleJump = false
	p.canSpin = true
	p.canThrow = true
}

func (p *Player) Interact() {
	p.ShowSymbol = true
	p.SymbolID = SymbolInteract
}

func (p *Player) SetObtainItemPose(itemID int) {
	p.Stop()
	p.Pose = PoseObtainItem
	p.ShowSymbol = false
	p.HoldingItem = true
	p.ItemID = itemID
}

// SetUsePose freezes the player facing a door or lever. x < 0 keeps the
// current position.
func (p *Player) SetUsePose(x float64, handsUp bool) {
	p.Stop()
	p.Pose = PoseUse
	if handsUp {
		p.Pose = PoseHandsUp
	}
	if x >= 0 {
		p.Pos.X = x
	}
	p.ShowSymbol = false
}

func (p *Player) SetSleepPose() {
	p.Pose = PoseSleep
}

// TeleportTo moves the player, marking the arrival room as visited on the
// next StageEvent.
func (p *Player) TeleportTo(pos geom.Vector, setPose, inside bool) {
	if setPose {
		p.Pose = PoseTeleport
	}
	p.Inside = inside
	p.Teleport(pos)
	p.teleported = true
}

// Respawn returns to the checkpoint, or the level start without one, fully
// healed.
func (p *Player) Respawn() {
	if p.checkpoint == nil {
		p.Teleport(p.startPos)
		p.Inside = p.startInside
	} else {
		p.Teleport(p.checkpoint.CheckpointPos().Add(geom.V(0, 1)))
		p.Inside = false
	}

	p.Exist = true
	p.Dying = false
	p.Pose = PoseNone
	p.invulnTimer = 0
	p.knockbackTimer = 0
	p.deathTimer = 0

	p.forceMode(ModeNormal)
	p.resetProperties(true)
	p.resetFlags()
	p.canJump = true

	p.MaximizeHealth()
}

// StartDeath begins the death sequence regardless of remaining health.
func (p *Player) StartDeath(env *object.Env) {
	if p.Dying {
		return
	}
	p.health = 0
	p.deathTimer = 0
	p.Dying = true

	env.Events.Push(stopMusic)
	env.PlaySound("die", 0.45)
}

func (p *Player) Die(env *object.Env) bool {
	p.Dust.Update(env.Step)
	p.deathTimer += env.Step
	return p.deathTimer > p.spec.DeathTime
}

// DeathEffectActive keeps the death burst alive if the camera moves away.
func (p *Player) DeathEffectActive() bool {
	return p.Dying && p.deathTimer <= p.spec.DeathTime
}

func (p *Player) resetProperties(stop bool) {
	if stop {
		p.Stop()
	}
	p.doubleJump = false
	p.downAttackWait = 0
	p.throwTimer = 0
	p.slideTimer = 0
	p.spinTimer = 0
	p.spinCount = 0
	p.loco = locomotion{}
	p.touchLadder = false
	p.running = false
	p.touchWater = false
	p.Target.Y = p.spec.Gravity
}

// resetFlags clears the contact state. Collisions later in the tick set it
// again.
func (p *Player) resetFlags() {
	p.canJump = false
	p.touchLadder = false
	p.isLadderTop = false
	p.ShowSymbol = false
	p.HoldingItem = false
	p.touchWater = false
	p.SymbolID = 0
}

func (p *Player) face(x float64) {
	const eps = 0.01
	if math.Abs(x) > eps {
		p.FaceDir = 1
		if x < 0 {
			p.FaceDir = -1
		}
	}
}
