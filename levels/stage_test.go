package levels

import (
	"testing"

	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tileChars = map[rune]int{
	'.': TileEmpty,
	'#': TileSolid,
	'-': TilePlatform,
	'H': TileLadder,
	'T': TileLadderTop,
	'~': TileWater,
	'=': TileWaterSurface,
	'^': TileSpikes,
	'W': TileWind,
	'B': TileBreakable,
	'R': TileHardBreakable,
	'A': TileToggleA,
	'b': TileToggleB,
}

func testLevel(t *testing.T, rows ...string) *Level {
	t.Helper()
	lvl := &Level{Width: len(rows[0]), Height: len(rows)}
	layer := make([]int, 0, lvl.Width*lvl.Height)
	for _, r := range rows {
		require.Len(t, r, lvl.Width)
		for _, c := range r {
			code, ok := tileChars[c]
			require.True(t, ok, "unknown tile %q", c)
			layer = append(layer, code)
		}
	}
	lvl.Layers = [][]int{layer}
	return lvl
}

type flags map[string]bool

func (f flags) Bool(k string) bool { return f[k] }

type box struct {
	object.Base

	grounded int
	walls    int
	ladders  int
	winds    int
	hurts    int
	breaks   bool
}

func newBox(x, y float64) *box {
	b := &box{Base: object.NewBase(x, y, true)}
	b.CollisionBox = geom.V(8, 8)
	b.Hitbox = geom.V(8, 8)
	b.Friction = geom.V(0.1, 0.15)
	b.Target.Y = 2
	b.InCamera = true
	return b
}

func (b *box) VerticalCollisionEvent(dir int, env *object.Env) {
	if dir == 1 {
		b.grounded++
	}
}

func (b *box) WallCollisionEvent(dir int, env *object.Env) { b.walls++ }

func (b *box) LadderCollision(x, y, w, h float64, top bool, env *object.Env) bool {
	if geom.BoxOverlap(b.Pos, b.Center, b.CollisionBox, x, y, w, h) {
		b.ladders++
		return true
	}
	return false
}

func (b *box) WindCollision(x, y, w, h float64, env *object.Env) bool {
	if geom.BoxOverlap(b.Pos, b.Center, b.Hitbox, x, y, w, h) {
		b.winds++
		return true
	}
	return false
}

func (b *box) HurtCollision(x, y, w, h float64, dir int, env *object.Env) bool {
	if geom.BoxOverlap(b.Pos, b.Center, b.Hitbox, x, y, w, h) {
		b.hurts++
		return true
	}
	return false
}

func (b *box) BreakCollision(x, y, w, h float64, level int, env *object.Env) bool {
	return b.breaks && level == 0 && geom.BoxOverlap(b.Pos, b.Center, b.CollisionBox, x, y, w, h)
}

func newEnv() *object.Env {
	return &object.Env{Step: 1, Events: &event.Queue{}, Shake: &event.Shake{}}
}

func tick(s *Stage, b *box, env *object.Env) {
	object.Update(b, env)
	s.ObjectCollision(b, env)
}

func TestFloorIsLevelTriggered(t *testing.T) {
	s := NewStage(testLevel(t,
		"....",
		"....",
		"####",
	), nil)
	env := newEnv()
	b := newBox(24, 4)

	for i := 0; i < 60; i++ {
		tick(s, b, env)
	}
	require.Equal(t, 28.0, b.Pos.Y)

	before := b.grounded
	for i := 0; i < 10; i++ {
		tick(s, b, env)
		assert.Equal(t, before+i+1, b.grounded)
	}
}

func TestWallStopsHorizontalMovement(t *testing.T) {
	s := NewStage(testLevel(t,
		"...#",
		"...#",
		"####",
	), nil)
	env := newEnv()
	b := newBox(24, 28)
	b.Target.X = 1
	b.Friction.X = 1

	for i := 0; i < 60; i++ {
		tick(s, b, env)
	}
	assert.Equal(t, 44.0, b.Pos.X)
	assert.Greater(t, b.walls, 0)
	assert.Equal(t, 28.0, b.Pos.Y, "wall edges must not lift a grounded object")
}

func TestOutOfRangeColumnsAreSolid(t *testing.T) {
	s := NewStage(testLevel(t, "..", "##"), nil)
	assert.Equal(t, TileSolid, s.Tile(-1, 0))
	assert.Equal(t, TileSolid, s.Tile(2, 0))
	assert.Equal(t, TileEmpty, s.Tile(0, -1))
	assert.Equal(t, TileEmpty, s.Tile(0, 5))

	s.Loop = true
	assert.Equal(t, TileEmpty, s.Tile(-1, 0))
	assert.Equal(t, TileSolid, s.Tile(3, 1))
}

func TestPlatformIsOneWay(t *testing.T) {
	s := NewStage(testLevel(t,
		"....",
		"....",
		"--..",
		"....",
		"####",
	), nil)
	env := newEnv()

	b := newBox(8, 60)
	b.Target.Y = 0
	b.Speed.Y = -3
	b.Friction.Y = 0
	for i := 0; i < 15; i++ {
		tick(s, b, env)
	}
	assert.Less(t, b.Pos.Y, 28.0, "rising objects pass through")

	b.Target.Y = 2
	b.Friction.Y = 0.15
	for i := 0; i < 90; i++ {
		tick(s, b, env)
	}
	assert.Equal(t, 28.0, b.Pos.Y)
}

func TestToggleBlocks(t *testing.T) {
	s := NewStage(testLevel(t, "Ab"), nil)
	assert.True(t, s.IsSolid(s.Tile(0, 0)))
	assert.False(t, s.IsSolid(s.Tile(1, 0)))

	s.ToggleSpecialBlocks()
	assert.True(t, s.Toggled())
	assert.False(t, s.IsSolid(s.Tile(0, 0)))
	assert.True(t, s.IsSolid(s.Tile(1, 0)))

	s.Reset()
	assert.False(t, s.Toggled())
}

func TestBreakableTiles(t *testing.T) {
	s := NewStage(testLevel(t,
		"....",
		".B..",
		"####",
	), nil)
	env := newEnv()
	b := newBox(24, 20)
	b.DisableCollisions = true

	s.ObjectCollision(b, env)
	assert.Equal(t, TileBreakable, s.Tile(1, 1), "mover declined to break")

	b.breaks = true
	s.ObjectCollision(b, env)
	assert.Equal(t, TileEmpty, s.Tile(1, 1))

	evts := env.Events.Drain()
	require.Len(t, evts, 1)
	assert.Equal(t, "break", evts[0].Name)

	s.Reset()
	assert.Equal(t, TileBreakable, s.Tile(1, 1))
}

func TestNarrowPhase(t *testing.T) {
	f := flags{}
	s := NewStage(testLevel(t,
		"H.W.",
		"H.W.",
		"#^##",
	), f)
	env := newEnv()

	onLadder := newBox(8, 8)
	s.ObjectCollision(onLadder, env)
	assert.Greater(t, onLadder.ladders, 0)

	inWind := newBox(40, 8)
	s.ObjectCollision(inWind, env)
	assert.Equal(t, 0, inWind.winds, "fans are off")

	f[flagFansEnabled] = true
	s.ObjectCollision(inWind, env)
	assert.Greater(t, inWind.winds, 0)

	onSpikes := newBox(24, 40)
	s.ObjectCollision(onSpikes, env)
	assert.Greater(t, onSpikes.hurts, 0)
}

func TestDisabledCollisionsSkipTiles(t *testing.T) {
	s := NewStage(testLevel(t, "....", "####"), nil)
	env := newEnv()
	b := newBox(8, 12)
	b.DisableCollisions = true
	b.Speed.Y = 1

	s.ObjectCollision(b, env)
	assert.Equal(t, 0, b.grounded)
}
