package enemy

import (
	"math"

	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/projectile"
)

type Species int

const (
	Slime Species = iota
	SpikeSlime
	Turtle
	Seal
	SpikeTurtle
	Apple
	Imp
	Mushroom
	FakeBlock
	Spinner
	Fish
	Eye
	FaceRight
	FaceLeft
	SpikeSeal
	Plant

	speciesCount
)

var speciesNames = [speciesCount]string{
	"slime", "spike_slime", "turtle", "seal", "spike_turtle", "apple", "imp",
	"mushroom", "fake_block", "spinner", "fish", "eye", "face_right",
	"face_left", "spike_seal", "plant",
}

func (s Species) String() string {
	return speciesNames[clampSpecies(int(s))]
}

func clampSpecies(i int) Species {
	return Species(common.ClampInt(i, 0, int(speciesCount)-1))
}

// kind is one row of the species table. The zero value of every flag is the
// common behavior.
type kind struct {
	yOffset      float64
	center       geom.Vector
	hitbox       geom.Vector
	collisionBox geom.Vector
	frictionY    float64

	baseGravity      bool
	noKnockdown      bool
	noStomp          bool
	noSpin           bool
	knockOnStomp     bool
	noKillOnStomp    bool
	projectileProof  bool
	noTileCollisions bool
	offCameraRadius  float64

	// walk speed, jump interval and height for the species that use them
	speed        float64
	jumpInterval float64
	jumpHeight   float64
	waveSpeed    geom.Vector
	amplitude    geom.Vector

	init        func(e *Enemy)
	respawn     func(e *Enemy)
	ai          func(e *Enemy, env *object.Env)
	playerEvent func(e *Enemy, p *player.Player, env *object.Env)
	wall        func(e *Enemy, dir int, env *object.Env)
	vertical    func(e *Enemy, dir int, env *object.Env)
}

var kinds = [speciesCount]kind{
	Slime: {
		center:      geom.V(0, 3),
		hitbox:      geom.V(8, 8),
		baseGravity: true,
		playerEvent: facePlayer,
	},
	SpikeSlime: {
		center:      geom.V(0, 3),
		hitbox:      geom.V(8, 10),
		baseGravity: true,
		noStomp:     true,
		noSpin:      true,
		playerEvent: facePlayer,
	},
	Turtle: {
		yOffset:      1,
		center:       geom.V(0, 3),
		hitbox:       geom.V(10, 8),
		collisionBox: geom.V(4, 0),
		baseGravity:  true,
		knockOnStomp: true,
		speed:        0.20,
		respawn:      respawnWalker,
		ai:           walk,
		wall:         turnAround,
	},
	Seal: {
		yOffset:      1,
		center:       geom.V(0, 3),
		hitbox:       geom.V(8, 8),
		frictionY:    0.1,
		baseGravity:  true,
		speed:        0.5,
		jumpInterval: 30,
		jumpHeight:   -1.75,
		respawn:      respawnSeal,
		ai:           hop,
		wall:         hopTurn,
	},
	SpikeTurtle: {
		yOffset:      1,
		center:       geom.V(0, 3),
		hitbox:       geom.V(10, 10),
		collisionBox: geom.V(4, 0),
		baseGravity:  true,
		knockOnStomp: true,
		noStomp:      true,
		noSpin:       true,
		speed:        0.30,
		respawn:      respawnWalker,
		ai:           walk,
		wall:         turnAround,
	},
	Apple: {
		hitbox:      geom.V(8, 8),
		noKnockdown: true,
		waveSpeed:   geom.V(0.05, 0.025),
		amplitude:   geom.V(4, 16),
		respawn:     respawnWave,
		ai:          updateWave,
		playerEvent: facePlayer,
	},
	Imp: {
		hitbox:      geom.V(10, 8),
		noKnockdown: true,
		waveSpeed:   geom.V(0.025, 0.05),
		amplitude:   geom.V(16, 4),
		respawn:     respawnWave,
		ai:          updateWave,
	},
	Mushroom: {
		yOffset:      1,
		center:       geom.V(0, 3),
		hitbox:       geom.V(8, 8),
		frictionY:    0.1,
		baseGravity:  true,
		jumpInterval: 60,
		jumpHeight:   -2.5,
		respawn:      respawnJumper,
		ai:           jumpInPlace,
		playerEvent:  faceWhenGrounded,
	},
	FakeBlock: {
		yOffset:         -1,
		center:          geom.V(0, -1),
		hitbox:          geom.V(10, 10),
		collisionBox:    geom.V(0, 16),
		frictionY:       0.25,
		noKnockdown:     true,
		noKillOnStomp:   true,
		projectileProof: true,
		respawn:         respawnFakeBlock,
		ai:              fakeBlockAI,
		playerEvent:     fakeBlockDrop,
		vertical:        fakeBlockLand,
	},
	Spinner: {
		hitbox:           geom.V(8, 8),
		noKnockdown:      true,
		noStomp:          true,
		noSpin:           true,
		noTileCollisions: true,
		offCameraRadius:  spinnerRadius * 2,
		respawn:          respawnSpinner,
		ai:               spin,
	},
	Fish: {
		yOffset:      1,
		hitbox:       geom.V(10, 8),
		collisionBox: geom.V(0, 2),
		frictionY:    0.05,
		noKnockdown:  true,
		speed:        0.20,
		respawn:      respawnFish,
		ai:           swim,
		wall:         turnAround,
	},
	Eye: {
		hitbox:      geom.V(10, 10),
		noKnockdown: true,
		respawn:     respawnShooter,
		ai:          eyeAI,
		playerEvent: aimAtPlayer,
	},
	FaceRight: {
		hitbox:      geom.V(10, 8),
		noKnockdown: true,
		init:        func(e *Enemy) { e.dir = 1 },
		respawn:     respawnFace,
		ai:          faceAI,
	},
	FaceLeft: {
		hitbox:      geom.V(10, 8),
		noKnockdown: true,
		init:        func(e *Enemy) { e.dir = -1 },
		respawn:     respawnFace,
		ai:          faceAI,
	},
	SpikeSeal: {
		yOffset:      1,
		center:       geom.V(0, 3),
		hitbox:       geom.V(8, 8),
		frictionY:    0.1,
		baseGravity:  true,
		noStomp:      true,
		noSpin:       true,
		speed:        0.5,
		jumpInterval: 20,
		jumpHeight:   -2.0,
		respawn:      respawnSeal,
		ai:           hop,
		wall:         hopTurn,
	},
	Plant: {
		yOffset:      1,
		center:       geom.V(0, 3),
		hitbox:       geom.V(8, 10),
		collisionBox: geom.V(4, 0),
		baseGravity:  true,
		speed:        0.25,
		respawn:      respawnPlant,
		ai:           plantAI,
		wall:         turnAround,
	},
}

func facePlayer(e *Enemy, p *player.Player, env *object.Env) {
	e.facePlayer(p)
}

func faceWhenGrounded(e *Enemy, p *player.Player, env *object.Env) {
	if e.canJump {
		e.facePlayer(p)
	}
}

// parityDelay staggers timers of neighbouring enemies by tile column.
func parityDelay(e *Enemy, interval float64) float64 {
	col := int(math.Floor(e.startPos.X / 16))
	return interval + float64(common.NegModInt(col, 2))*interval/2
}

// Walkers patrol a platform, turning at walls and ledges.

func respawnWalker(e *Enemy) {
	e.baseSpeed = float64(e.dir) * e.kind.speed
	e.dir = startDir(e.startPos.X)
}

func walk(e *Enemy, env *object.Env) {
	turnAtLedge(e, env)
	e.Target.X = e.baseSpeed
	e.Speed.X = e.Target.X
	e.FaceRight = e.baseSpeed > 0
}

func turnAtLedge(e *Enemy, env *object.Env) {
	if e.oldCanJump && !e.canJump {
		e.Pos.X -= e.Speed.X * env.Step
		e.baseSpeed = -e.baseSpeed
	}
}

func turnAround(e *Enemy, dir int, env *object.Env) {
	e.dir = -dir
	e.baseSpeed = math.Abs(e.baseSpeed) * float64(e.dir)
	e.Target.X = e.baseSpeed
	e.Speed.X = e.Target.X
}

// Hoppers jump forward at a fixed interval.

func respawnSeal(e *Enemy) {
	e.jumpTimer = parityDelay(e, e.kind.jumpInterval)
	e.dir = startDir(e.startPos.X)
}

func hop(e *Enemy, env *object.Env) {
	if !e.canJump {
		e.FaceRight = e.Speed.X >= 0
		return
	}

	e.Target.X = 0
	if e.jumpTimer -= env.Step; e.jumpTimer <= 0 {
		e.Speed.Y = e.kind.jumpHeight
		e.jumpTimer = e.kind.jumpInterval
		e.Speed.X = float64(e.dir) * e.kind.speed
		e.Target.X = e.Speed.X

		env.PlaySound("enemyJump", 0.50)
	}
}

func hopTurn(e *Enemy, dir int, env *object.Env) {
	if e.canJump {
		return
	}
	e.dir = -dir
	e.Speed.X = float64(e.dir) * e.kind.speed
	e.Target.X = e.Speed.X
}

func respawnJumper(e *Enemy) {
	e.jumpTimer = parityDelay(e, e.kind.jumpInterval)
}

func jumpInPlace(e *Enemy, env *object.Env) {
	if !e.canJump {
		return
	}
	if e.jumpTimer -= env.Step; e.jumpTimer <= 0 {
		e.Speed.Y = e.kind.jumpHeight
		e.jumpTimer = e.kind.jumpInterval

		env.PlaySound("enemyJump", 0.50)
	}
}

// Wave objects float around their spawn point.

func respawnWave(e *Enemy) {
	e.wave = geom.Vector{}
}

func updateWave(e *Enemy, env *object.Env) {
	const full = math.Pi * 2

	e.wave.X = math.Mod(e.wave.X+e.kind.waveSpeed.X*env.Step, full)
	e.wave.Y = math.Mod(e.wave.Y+e.kind.waveSpeed.Y*env.Step, full)

	e.Pos.X = e.startPos.X + math.Sin(e.wave.X)*e.kind.amplitude.X
	e.Pos.Y = e.startPos.Y + math.Sin(e.wave.Y)*e.kind.amplitude.Y
}

// Fake block phases.
const (
	blockIdle = iota
	blockFalling
	blockShaking
	blockReturning
)

func respawnFakeBlock(e *Enemy) {
	e.phase = blockIdle
	e.timer = 0
}

func fakeBlockAI(e *Enemy, env *object.Env) {
	const (
		returnSpeed = -1.0
		eps         = 2.0
	)

	switch e.phase {
	case blockShaking:
		if e.timer -= env.Step; e.timer <= 0 {
			e.phase = blockReturning
			e.Speed.Y = returnSpeed
			e.Target.Y = returnSpeed
		}
	case blockReturning:
		if e.Pos.Y <= e.startPos.Y+eps {
			e.Pos.Y = e.startPos.Y
			e.Stop()
			e.phase = blockIdle
		}
	}
}

func fakeBlockDrop(e *Enemy, p *player.Player, env *object.Env) {
	const (
		margin  = 32
		gravity = 8.0
	)

	if e.phase != blockIdle || p.Pos.Y < e.Pos.Y || math.Abs(p.Pos.X-e.Pos.X) > margin {
		return
	}
	e.phase = blockFalling
	e.Target.Y = gravity
}

func fakeBlockLand(e *Enemy, dir int, env *object.Env) {
	const (
		shakeTime = 60
		magnitude = 1
	)

	if dir != 1 || e.phase != blockFalling {
		return
	}
	e.phase = blockShaking
	e.timer = shakeTime

	env.StartShake(shakeTime, magnitude)
	env.PlaySound("shake", 0.50)
}

// Spinners circle their spawn point on a chain.

const spinnerRadius = 24

func respawnSpinner(e *Enemy) {
	e.angle = math.Mod(e.startPos.Y, 360) / 360 * (math.Pi * 2)
	e.dir = -1
	if common.NegModInt(int(math.Floor(e.startPos.X/16)), 2) == 0 {
		e.dir = 1
	}
	placeOnCircle(e)
}

func placeOnCircle(e *Enemy) {
	e.Pos.X = e.startPos.X + math.Round(math.Cos(e.angle)*spinnerRadius*float64(e.dir))
	e.Pos.Y = e.startPos.Y + math.Round(math.Sin(e.angle)*spinnerRadius)
}

func spin(e *Enemy, env *object.Env) {
	const rotationSpeed = 0.05

	e.angle = math.Mod(e.angle+rotationSpeed*env.Step, math.Pi*2)
	placeOnCircle(e)
}

func respawnFish(e *Enemy) {
	e.wave.X = 0
	respawnWalker(e)
}

func swim(e *Enemy, env *object.Env) {
	const (
		waveSpeed   = 0.10
		baseTargetY = 0.25
	)

	turnAtLedge(e, env)
	e.Target.X = e.baseSpeed
	e.Speed.X = e.Target.X

	e.wave.X = math.Mod(e.wave.X+waveSpeed*env.Step, math.Pi*2)
	e.Target.Y = math.Sin(e.wave.X) * baseTargetY

	e.FaceRight = e.baseSpeed > 0
}

// Shooters fire hostile bullets on a timer.

const bulletID = projectile.IDBullet

func (e *Enemy) shoot(x, y, sx, sy float64, gravity bool) {
	if e.deps.Projectiles != nil {
		e.deps.Projectiles.Spawn(x, y, sx, sy, gravity, bulletID, false)
	}
}

// Eye phases: waiting, opening, closing.
const (
	eyeWait = iota
	eyeOpen
	eyeClose
)

func respawnShooter(e *Enemy) {
	e.phase = eyeWait
	e.timer = e.deps.Spec.ShootWait
}

func aimAtPlayer(e *Enemy, p *player.Player, env *object.Env) {
	d := p.Pos.Sub(e.Pos)
	if l := d.Length(); l > 0 {
		e.aim = d.Mult(1 / l)
	}
}

func eyeAI(e *Enemy, env *object.Env) {
	const (
		speed     = 1.5
		openTime  = 46
		closeTime = 24
	)

	e.timer -= env.Step
	if e.timer > 0 {
		return
	}

	switch e.phase {
	case eyeWait:
		e.shoot(e.Pos.X, e.Pos.Y, e.aim.X*speed, e.aim.Y*speed, false)
		env.PlaySound("shoot", 0.40)
		e.phase = eyeOpen
		e.timer = openTime
	case eyeOpen:
		e.phase = eyeClose
		e.timer = closeTime
	default:
		e.phase = eyeWait
		e.timer = e.deps.Spec.ShootWait
	}
}

func respawnFace(e *Enemy) {
	e.phase = 0
	e.timer = e.deps.Spec.ShootWait
	e.FaceRight = e.dir > 0
}

func faceAI(e *Enemy, env *object.Env) {
	const (
		speed     = 2.0
		mouthTime = 30
	)

	e.FaceRight = e.dir > 0
	if e.timer -= env.Step; e.timer > 0 {
		return
	}

	if e.phase == 0 {
		dir := float64(e.dir)
		e.shoot(e.Pos.X+dir*4, e.Pos.Y+2, speed*dir, 0, false)
		env.PlaySound("shoot", 0.40)
		e.phase = 1
		e.timer = mouthTime
		return
	}
	e.phase = 0
	e.timer = e.deps.Spec.ShootWait
}

func respawnPlant(e *Enemy) {
	e.timer = 0
	e.jumpTimer = 0
	e.baseSpeed = float64(e.dir) * e.kind.speed
}

// plantAI walks like a turtle and stops every so often to lob two bullets.
// timer counts up to the next volley, jumpTimer holds the pause after it.
func plantAI(e *Enemy, env *object.Env) {
	const (
		shootTime = 120
		shootWait = 30
		speedX    = 0.75
		speedY    = -2.5
	)

	if e.jumpTimer > 0 {
		e.jumpTimer -= env.Step
		return
	}

	if e.timer += env.Step; e.timer >= shootTime {
		e.timer = 0
		e.jumpTimer = shootWait
		e.Target.X = 0
		e.Speed.X = 0

		for i := -1.0; i <= 1; i += 2 {
			e.shoot(e.Pos.X, e.Pos.Y-2, speedX*i, speedY, true)
		}
		env.PlaySound("shoot", 0.40)
		return
	}

	turnAtLedge(e, env)
	e.Target.X = e.baseSpeed
	e.Speed.X = e.Target.X
}
