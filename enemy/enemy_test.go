package enemy

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/levels"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/projectile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var farView = cp.BB{L: 1000, B: 1000, R: 1160, T: 1144}

var roomRows = []string{
	"#........#",
	"#........#",
	"#........#",
	"#........#",
	"##########",
}

type checks []int

func (c *checks) CheckLocation(id int) { *c = append(*c, id) }

type fixture struct {
	t      *testing.T
	prog   *progress.Manager
	shots  *projectile.Set
	checks *checks
	env    *object.Env
	stage  *levels.Stage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	lvl := &levels.Level{Width: len(roomRows[0]), Height: len(roomRows)}
	layer := make([]int, 0, lvl.Width*lvl.Height)
	for _, row := range roomRows {
		for _, c := range row {
			code := levels.TileEmpty
			if c == '#' {
				code = levels.TileSolid
			}
			layer = append(layer, code)
		}
	}
	lvl.Layers = [][]int{layer}

	prog := progress.NewManager()
	return &fixture{
		t:      t,
		prog:   prog,
		shots:  projectile.NewSet(4),
		checks: &checks{},
		env:    &object.Env{Step: 1, Events: &event.Queue{}, Shake: &event.Shake{}},
		stage:  levels.NewStage(lvl, prog),
	}
}

func (f *fixture) spawn(s Species, x, y float64, entityID int) *Enemy {
	e := New(int(s), x, y, entityID, Deps{
		Spec:        prefabs.DefaultEnemySpec(),
		Projectiles: f.shots,
		Checks:      f.checks,
	})
	e.InCamera = true
	return e
}

func (f *fixture) player(x, y float64) *player.Player {
	p := player.New(x, y, prefabs.DefaultPlayerSpec(), f.prog, f.shots, false, false)
	p.Teleport(geom.V(x, y))
	return p
}

func (f *fixture) tick(e *Enemy) {
	f.env.Shake.Update(f.env.Step)
	object.Update(e, f.env)
	f.stage.ObjectCollision(e, f.env)
}

func (f *fixture) run(e *Enemy, n int) {
	for i := 0; i < n; i++ {
		f.tick(e)
	}
}

func sounds(q *event.Queue) []string {
	var names []string
	for _, evt := range q.Drain() {
		if evt.Kind == event.KindSound {
			names = append(names, evt.Name)
		}
	}
	return names
}

func TestSpeciesAreClamped(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, Slime, f.spawn(-3, 40, 40, 0).Species)
	assert.Equal(t, Plant, f.spawn(99, 40, 40, 0).Species)
	assert.Equal(t, "spike_seal", SpikeSeal.String())
	assert.Equal(t, "plant", Species(40).String())
}

func TestSpawnOffsetsAndDirections(t *testing.T) {
	f := newFixture(t)

	turtle := f.spawn(Turtle, 40, 40, 0)
	assert.Equal(t, 41.0, turtle.Pos.Y)
	assert.Equal(t, geom.V(4, 8), turtle.CollisionBox)
	assert.Equal(t, -1, turtle.dir)
	assert.InDelta(t, -0.2, turtle.baseSpeed, 1e-9)

	block := f.spawn(FakeBlock, 40, 40, 0)
	assert.Equal(t, 39.0, block.Pos.Y)
	assert.Equal(t, 0.0, block.Target.Y)

	assert.Equal(t, 1, f.spawn(Slime, 24, 40, 0).dir)
	assert.Equal(t, -1, f.spawn(FaceLeft, 24, 40, 0).dir)
	assert.True(t, f.spawn(Spinner, 40, 40, 0).DisableCollisions)
}

func TestNonStompableEnemyHurtsInstead(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(SpikeSlime, 40, 57, 3)

	// Player falling with its feet inside the stomp band.
	p := f.player(40, e.Pos.Y-11.5)
	p.Speed.Y = 1

	require.True(t, e.PlayerCollision(p, f.env))

	assert.False(t, e.Dying)
	assert.False(t, e.KnockedDown())
	assert.True(t, p.KnockedBack())
	assert.Equal(t, 2, p.Health())
	assert.Equal(t, 1.0, p.Speed.Y, "no stomp bounce")
	assert.Empty(t, *f.checks)
	assert.False(t, f.prog.Contains(progress.SetEnemiesKilled, 3))
}

func TestStompKillsAndRecordsOnce(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 2; i++ {
		e := f.spawn(Slime, 40, 57, 5)
		p := f.player(40, 47)
		p.Speed.Y = 1

		require.True(t, e.PlayerCollision(p, f.env))
		assert.True(t, e.Dying)
		assert.Equal(t, DeathPuff, e.DeathMode())
		assert.Equal(t, -3.0, p.Speed.Y)
		assert.Equal(t, p.MaxHealth(), p.Health())
	}

	assert.Equal(t, []int{5}, f.prog.Values(progress.SetEnemiesKilled))
	assert.Equal(t, 1.0, f.prog.Number(progress.NumKills, 0))
	assert.Equal(t, checks{5 + 114}, *f.checks)
}

func TestGhostKillsAreNotRecorded(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(Slime, 40, 57, 9)
	e.MakeGhost()

	p := f.player(40, 47)
	p.Speed.Y = 1
	require.True(t, e.PlayerCollision(p, f.env))

	assert.True(t, e.Dying)
	assert.Zero(t, f.prog.SetLen(progress.SetEnemiesKilled))
	assert.Empty(t, *f.checks)
}

func TestGhostStillHurtsPlayer(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(SpikeSlime, 40, 57, 4)
	e.MakeGhost()

	p := f.player(40, e.Pos.Y-11.5)
	p.Speed.Y = 1
	require.True(t, e.PlayerCollision(p, f.env))

	assert.True(t, p.KnockedBack())
	assert.Equal(t, 2, p.Health())
	assert.Empty(t, *f.checks)
}

func TestStompKnocksTurtleDown(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(Turtle, 40, 56, 1)

	p := f.player(40, 47)
	p.Speed.Y = 1
	require.True(t, e.PlayerCollision(p, f.env))

	assert.False(t, e.Dying)
	assert.True(t, e.KnockedDown())
	assert.Equal(t, 0.0, e.Speed.Y, "stomp knockdown does not jump")
	assert.Equal(t, -3.0, p.Speed.Y)
	assert.Contains(t, sounds(f.env.Events), "hop")
}

func TestFakeBlockSurvivesStompAndRocks(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(FakeBlock, 40, 41, 2)

	// Stomp band for the block is y 28..32.
	p := f.player(40, 24.5)
	p.Speed.Y = 1
	require.True(t, e.PlayerCollision(p, f.env))
	assert.False(t, e.Dying)
	assert.Equal(t, -3.0, p.Speed.Y)

	rock := f.shots.Spawn(e.Pos.X, e.Pos.Y, 0, 0, false, projectile.IDRock, true)
	require.True(t, e.ProjectileCollision(rock, p, f.env))
	assert.True(t, rock.Dying)
	assert.False(t, e.Dying)
}

func TestProjectileCollision(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(Slime, 40, 40, 4)
	p := f.player(120, 40)

	bullet := f.shots.Spawn(40, 40, 0, 0, false, projectile.IDBullet, false)
	assert.False(t, e.ProjectileCollision(bullet, p, f.env), "hostile bullets pass")
	assert.False(t, bullet.Dying)

	rock := f.shots.Spawn(40, 40, 0, 0, false, projectile.IDRock, true)
	require.True(t, e.ProjectileCollision(rock, p, f.env))
	assert.True(t, rock.Dying)
	assert.True(t, e.Dying)
	assert.True(t, f.prog.Contains(progress.SetEnemiesKilled, 4))

	again := f.shots.Spawn(40, 40, 0, 0, false, projectile.IDRock, true)
	assert.False(t, e.ProjectileCollision(again, p, f.env), "dying enemies are skipped")
}

func TestShakeKnocksDownGroundedEnemies(t *testing.T) {
	f := newFixture(t)
	slime := f.spawn(Slime, 40, 49, 0)
	apple := f.spawn(Apple, 80, 40, 1)

	f.run(slime, 30)
	require.Equal(t, 57.0, slime.Pos.Y)
	require.True(t, slime.canJump)

	f.env.StartShake(30, 2)
	object.Update(slime, f.env)
	object.Update(apple, f.env)

	assert.True(t, slime.KnockedDown())
	assert.Less(t, slime.Speed.Y, 0.0)
	assert.False(t, apple.KnockedDown())
}

func TestWalkerPatrolsBetweenWalls(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(Turtle, 40, 48, 0)

	left, right := false, false
	for i := 0; i < 1500; i++ {
		f.tick(e)
		require.GreaterOrEqual(t, e.Pos.X, 16.0)
		require.LessOrEqual(t, e.Pos.X, 144.0)
		if e.FaceRight {
			right = true
		} else {
			left = true
		}
	}
	assert.True(t, left)
	assert.True(t, right)
	assert.Equal(t, 57.0, e.Pos.Y)
}

func TestEyeShootsAtPlayer(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(Eye, 40, 40, 0)
	p := f.player(100, 40)

	assert.False(t, e.PlayerCollision(p, f.env))

	for i := 0; i < 59; i++ {
		object.Update(e, f.env)
	}
	require.Zero(t, f.shots.Active())

	object.Update(e, f.env)
	require.Equal(t, 1, f.shots.Active())
	f.shots.Each(func(b *projectile.Projectile) {
		assert.False(t, b.Friendly)
		assert.InDelta(t, 1.5, b.Speed.X, 1e-9)
		assert.InDelta(t, 0, b.Speed.Y, 1e-9)
	})
}

func TestFakeBlockFallsShakesAndReturns(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(FakeBlock, 40, 41, 0)
	p := f.player(60, 60)

	e.PlayerCollision(p, f.env)
	require.Equal(t, blockFalling, e.Phase())

	for i := 0; i < 100 && e.Phase() == blockFalling; i++ {
		f.tick(e)
	}
	require.Equal(t, blockShaking, e.Phase())
	assert.True(t, f.env.Shaking())

	for i := 0; i < 200 && e.Phase() != blockIdle; i++ {
		f.tick(e)
	}
	assert.Equal(t, blockIdle, e.Phase())
	assert.Equal(t, 40.0, e.Pos.Y)
}

func TestSpunDeathOutlivesTheCamera(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(Slime, 40, 40, 0)

	e.kill(f.prog, DeathSpun, f.env)
	startY := e.Pos.Y

	for i := 0; i < 20; i++ {
		object.Update(e, f.env)
	}
	assert.True(t, e.Exist)
	assert.Greater(t, e.Pos.Y, startY)

	object.CameraCheck(e, farView)
	assert.True(t, e.InCamera, "effect still playing")

	for i := 0; i < 20; i++ {
		object.Update(e, f.env)
	}
	assert.True(t, e.Exist, "spun deaths never end on their own")
	assert.False(t, e.DeathEffectActive())

	object.CameraCheck(e, farView)
	assert.False(t, e.Exist)
}

func TestPuffDeathEndsAfterDeathTime(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(Slime, 40, 40, 0)
	e.kill(f.prog, DeathPuff, f.env)

	for i := 0; i < 29; i++ {
		object.Update(e, f.env)
	}
	assert.True(t, e.Exist)
	object.Update(e, f.env)
	assert.False(t, e.Exist)
}

func TestDeferredResetAndRespawn(t *testing.T) {
	f := newFixture(t)
	e := f.spawn(Slime, 40, 40, 6)
	e.Pos = geom.V(90, 20)
	e.Speed = geom.V(1, 1)

	object.CameraCheck(e, farView)
	require.True(t, e.ResetPending())
	assert.False(t, object.ApplyDeferredReset(e, true))
	require.True(t, object.ApplyDeferredReset(e, false))
	assert.Equal(t, e.StartPos(), e.Pos)
	assert.Equal(t, geom.Vector{}, e.Speed)

	e.Respawn()
	assert.False(t, e.Ghost(), "alive enemies stay real")

	e.kill(f.prog, DeathPuff, f.env)
	e.Respawn()
	assert.True(t, e.Exist)
	assert.False(t, e.Dying)
	assert.True(t, e.Ghost())
}
