package interact

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/starseeker/camera"
	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/input"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type texts map[string][]string

func (t texts) Lookup(key ...string) ([]string, bool) {
	v, ok := t[strings.Join(key, "/")]
	return v, ok
}

type host struct {
	messages [][]string
	saveErr  error
	saves    int
	final    int
	endings  int
}

func (h *host) Message(lines []string, wait float64, then func()) {
	h.messages = append(h.messages, lines)
	if then != nil {
		then()
	}
}

func (h *host) Transition(then func()) { then() }

func (h *host) Save() error {
	h.saves++
	return h.saveErr
}

func (h *host) EnterFinalArea() { h.final++ }
func (h *host) StartEnding()    { h.endings++ }

func (h *host) last() string {
	if len(h.messages) == 0 {
		return ""
	}
	return strings.Join(h.messages[len(h.messages)-1], " ")
}

type checks []int

func (c *checks) CheckLocation(id int) { *c = append(*c, id) }

type toggler struct{ n int }

func (t *toggler) ToggleSpecialBlocks() { t.n++ }

var allTexts = texts{
	"locked":         {"locked"},
	"open":           {"open"},
	"lever":          {"lever"},
	"npc/3":          {"hello"},
	"saveGame":       {"save?"},
	"gameSaved":      {"saved"},
	"gameSaveFailed": {"failed"},
	"portal":         {"portal"},
	"preEnding/0":    {"a"},
	"preEnding/1":    {"b"},
	"preEnding/2":    {"c"},
}

type fixture struct {
	prog   *progress.Manager
	p      *player.Player
	host   *host
	checks *checks
	stage  *toggler
	sc     *Scene
}

func newFixture(t *testing.T, txt texts, items ...int) *fixture {
	t.Helper()

	prog := progress.NewManager()
	for _, id := range items {
		prog.AddToSet(progress.SetItems, id)
	}
	f := &fixture{
		prog:   prog,
		p:      player.New(40, 49, prefabs.DefaultPlayerSpec(), prog, nil, false, false),
		host:   &host{},
		checks: &checks{},
		stage:  &toggler{},
	}
	f.sc = &Scene{
		Env: &object.Env{
			Step:   1,
			Input:  &input.Snapshot{},
			Events: &event.Queue{},
			Shake:  &event.Shake{},
		},
		Camera: camera.NewRoomCamera(),
		Stage:  f.stage,
		Texts:  txt,
		Host:   f.host,
		Checks: f.checks,
	}
	return f
}

// ground puts the player on the floor, which strong targets require.
func (f *fixture) ground() {
	f.p.VerticalCollisionEvent(1, f.sc.Env)
}

// airborne runs one tick with no floor below.
func (f *fixture) airborne() {
	f.sc.Env.Input = &input.Snapshot{}
	object.Update(f.p, f.sc.Env)
}

func (f *fixture) pressUp(on bool) {
	f.sc.Env.Input = &input.Snapshot{UpPressed: on}
}

func visible[T interface{ Obj() *object.Base }](o T) T {
	o.Obj().InCamera = true
	return o
}

func TestStarCollectedOffline(t *testing.T) {
	f := newFixture(t, nil)
	f.sc.Checks = nil

	s := visible(NewStar(40, 52, 7))
	require.True(t, s.PlayerCollision(f.p, f.sc))
	assert.True(t, s.Dying)
	assert.False(t, s.PlayerCollision(f.p, f.sc), "a dying star is not collected twice")

	again := visible(NewStar(40, 52, 7))
	require.True(t, again.PlayerCollision(f.p, f.sc))

	assert.Equal(t, []int{7}, f.prog.Values(progress.SetStarsCollected))

	for i := 0; i < starDeathTime; i++ {
		object.Update(s, f.sc.Env)
	}
	assert.False(t, s.Exist)
}

func TestStarReportsLocationOnce(t *testing.T) {
	f := newFixture(t, nil)

	visible(NewStar(40, 52, 8)).PlayerCollision(f.p, f.sc)
	visible(NewStar(40, 52, 8)).PlayerCollision(f.p, f.sc)

	assert.Equal(t, checks{8 + 15}, *f.checks)
}

func TestStrongTargetNeedsGroundAndConfirm(t *testing.T) {
	f := newFixture(t, nil)
	c := visible(NewChest(40, 52, 4))

	f.airborne()
	require.False(t, f.p.TouchGround())
	require.True(t, c.PlayerCollision(f.p, f.sc), "overlap counts in the air")
	assert.False(t, f.p.ShowSymbol)

	f.ground()
	require.True(t, c.PlayerCollision(f.p, f.sc))
	assert.True(t, f.p.ShowSymbol)
	assert.False(t, c.Opened())

	f.pressUp(true)
	require.True(t, c.PlayerCollision(f.p, f.sc))
	assert.True(t, c.Opened())
	assert.True(t, f.prog.Contains(progress.SetOpenChests, 4))
	assert.Equal(t, checks{4 + 1}, *f.checks)

	assert.False(t, c.PlayerCollision(f.p, f.sc), "opened chests are inert")
	assert.Len(t, *f.checks, 1)
}

func TestTargetIgnoresDeadPlayerAndCulledTargets(t *testing.T) {
	f := newFixture(t, nil)

	culled := NewStar(40, 52, 1)
	assert.False(t, culled.PlayerCollision(f.p, f.sc))

	s := visible(NewStar(40, 52, 1))
	f.p.Dying = true
	assert.False(t, s.PlayerCollision(f.p, f.sc))
	assert.Zero(t, f.prog.SetLen(progress.SetStarsCollected))
}

func TestPairDoors(t *testing.T) {
	a, b := NewDoor(0, 0, 5, false), NewDoor(100, 0, 5, true)
	c, d := NewDoor(0, 0, 6, false), NewDoor(50, 0, 7, false)

	PairDoors([]*Door{a, c, b, d})

	assert.Same(t, b, a.Pair())
	assert.Same(t, a, b.Pair())
	assert.Nil(t, c.Pair())
	assert.Nil(t, d.Pair())

	assert.True(t, NewDoor(0, 0, 0, false).Open())
	assert.True(t, b.Open(), "inside doors are open")
	assert.False(t, a.Open())
}

func TestLockedDoorNeedsKey(t *testing.T) {
	f := newFixture(t, allTexts)
	f.ground()
	f.pressUp(true)

	d := visible(NewDoor(40, 52, 5, false))
	PairDoors([]*Door{d, NewDoor(200, 100, 5, true)})

	d.PlayerCollision(f.p, f.sc)
	assert.False(t, d.Open())
	assert.Equal(t, "locked", f.host.last())

	f.prog.AddToSet(progress.SetItems, progress.ItemKey)
	d.PlayerCollision(f.p, f.sc)
	assert.True(t, d.Open())
	assert.Equal(t, "open", f.host.last())
	assert.True(t, f.prog.Contains(progress.SetDoors, 5))
	assert.Equal(t, geom.V(40, 50), f.p.Pos, "unlocking does not enter")
}

func TestOpenDoorTeleportsToPair(t *testing.T) {
	f := newFixture(t, nil)
	f.ground()
	f.pressUp(true)

	d := visible(NewDoor(40, 52, 0, false))
	pair := NewDoor(200, 100, 0, true)
	PairDoors([]*Door{d, pair})

	require.True(t, d.PlayerCollision(f.p, f.sc))
	assert.Equal(t, geom.V(200, 101), f.p.Pos)
	assert.True(t, f.p.Inside)
	assert.True(t, d.CanInteract)
	assert.True(t, f.sc.Camera.WasForcedToMove())
	assert.Equal(t, geom.V(160, 0), f.sc.Camera.Position())
}

func TestLeverNeedsText(t *testing.T) {
	f := newFixture(t, nil)
	f.ground()
	f.pressUp(true)

	l := visible(NewLever(40, 52))
	l.PlayerCollision(f.p, f.sc)
	assert.False(t, l.Activated())
	assert.False(t, f.prog.Bool(progress.BoolFansEnabled))

	f.sc.Texts = allTexts
	l.PlayerCollision(f.p, f.sc)
	assert.True(t, l.Activated())
	assert.False(t, l.CanInteract)
	assert.True(t, f.prog.Bool(progress.BoolFansEnabled))
	assert.True(t, f.sc.Env.Shaking())
	assert.Equal(t, "lever", f.host.last())
}

func TestNPCFacesPlayerAndTalks(t *testing.T) {
	f := newFixture(t, allTexts)
	f.ground()
	f.pressUp(true)

	far := visible(NewNPC(80, 52, 3))
	assert.False(t, far.PlayerCollision(f.p, f.sc))
	assert.True(t, far.FaceLeft, "npcs watch the player from afar")

	n := visible(NewNPC(42, 52, 3))
	require.True(t, n.PlayerCollision(f.p, f.sc))
	assert.True(t, n.FaceLeft)
	assert.Equal(t, "hello", f.host.last())

	silent := visible(NewNPC(42, 52, 4))
	f.host.messages = nil
	silent.PlayerCollision(f.p, f.sc)
	assert.Empty(t, f.host.messages)
}

func TestSavePointBecomesCheckpoint(t *testing.T) {
	f := newFixture(t, allTexts)

	f.p.HurtCollision(30, 40, 20, 20, 1, f.sc.Env)
	require.Equal(t, 2, f.p.Health())

	a := visible(NewSavePoint(40, 52, 2))
	require.True(t, a.PlayerCollision(f.p, f.sc))
	assert.Equal(t, 3, f.p.Health())
	assert.True(t, a.Activated())
	assert.Equal(t, 2.0, f.prog.Number(progress.NumCheckpoint, -1))
	assert.Equal(t, player.Checkpoint(a), f.p.Checkpoint())
	assert.Equal(t, float64(messageTimeMove+messageTimeWait), a.MessageTimer())

	b := visible(NewSavePoint(42, 52, 3))
	b.PlayerCollision(f.p, f.sc)
	assert.True(t, b.Activated())
	assert.Equal(t, player.Checkpoint(b), f.p.Checkpoint())

	f.p.Teleport(geom.V(120, 50))
	assert.False(t, a.PlayerCollision(f.p, f.sc))
	assert.False(t, a.Activated(), "the previous checkpoint lights off")

	a.OutsideCamera()
	assert.Zero(t, a.MessageTimer())
}

func TestSavePointSaves(t *testing.T) {
	f := newFixture(t, allTexts)
	f.ground()
	f.pressUp(true)

	s := visible(NewSavePoint(40, 52, 0))
	s.PlayerCollision(f.p, f.sc)
	assert.Equal(t, 1, f.host.saves)
	assert.Equal(t, "saved", f.host.last())

	f.host.saveErr = errors.New("disk full")
	f.ground()
	s.PlayerCollision(f.p, f.sc)
	assert.Equal(t, 2, f.host.saves)
	assert.Equal(t, "failed", f.host.last())
}

func TestPortalOpensWithBothOrbs(t *testing.T) {
	f := newFixture(t, allTexts)
	f.ground()
	f.pressUp(true)

	pt := visible(NewPortal(40, 52, f.prog))
	assert.False(t, pt.PlayerCollision(f.p, f.sc))

	f.prog.AddToSet(progress.SetOrbsDestroyed, 0)
	object.Update(pt, f.sc.Env)
	assert.False(t, pt.CanInteract)

	f.prog.AddToSet(progress.SetOrbsDestroyed, 1)
	object.Update(pt, f.sc.Env)
	require.True(t, pt.CanInteract)

	require.True(t, pt.PlayerCollision(f.p, f.sc))
	assert.Equal(t, 1, f.host.final)
	assert.True(t, f.sc.Env.Shaking())
}

func TestOrbNeedsSpin(t *testing.T) {
	f := newFixture(t, nil, progress.ItemSpinAttack)
	f.ground()

	o := visible(NewOrb(f.p.Pos.X+10, f.p.Pos.Y-3, 1))
	assert.False(t, o.PlayerCollision(f.p, f.sc))

	var snap input.Snapshot
	snap.Buttons[input.Spin] = input.Pressed
	f.sc.Env.Input = &snap
	object.Update(f.p, f.sc.Env)
	require.True(t, f.p.Spinning())

	o.Teleport(geom.V(f.p.Pos.X+10, f.p.Pos.Y-3))
	require.True(t, o.PlayerCollision(f.p, f.sc))
	assert.True(t, f.prog.Contains(progress.SetOrbsDestroyed, 1))

	for i := 0; i < orbDeathTime; i++ {
		object.Update(o, f.sc.Env)
	}
	assert.False(t, o.Exist)
}

func TestSwitchTogglesBlocks(t *testing.T) {
	f := newFixture(t, nil)
	s := visible(NewSwitch(40, 58))

	f.p.Speed.Y = 0
	assert.False(t, s.PlayerCollision(f.p, f.sc), "needs a falling player")

	f.p.Speed.Y = 1
	require.True(t, s.PlayerCollision(f.p, f.sc))
	assert.True(t, s.Down())
	assert.Equal(t, 1, f.stage.n)
	assert.True(t, f.prog.Bool(progress.BoolSwitchState))
	assert.Equal(t, -3.0, f.p.Speed.Y)

	f.p.Speed.Y = 1
	assert.False(t, s.PlayerCollision(f.p, f.sc))

	s.Reset()
	require.True(t, s.PlayerCollision(f.p, f.sc))
	assert.Equal(t, 2, f.stage.n)
	assert.False(t, f.prog.Bool(progress.BoolSwitchState))
}

func TestGiantChestStartsEnding(t *testing.T) {
	f := newFixture(t, allTexts)
	f.ground()
	f.pressUp(true)

	g := visible(NewGiantChest(40, 52))
	require.True(t, g.PlayerCollision(f.p, f.sc))

	assert.True(t, g.Opened)
	assert.False(t, g.CanInteract)
	assert.Equal(t, player.PoseSleep, f.p.Pose)
	assert.Equal(t, 1, f.host.endings)
	assert.Len(t, f.host.messages, 3)
}

func TestHintTriggerFiresOnce(t *testing.T) {
	f := newFixture(t, nil)
	h := visible(NewHintTrigger(40, 40, 6))

	object.Update(h, f.sc.Env)
	object.Update(h, f.sc.Env)

	assert.False(t, h.Exist)
	var hints []any
	for _, evt := range f.sc.Env.Events.Drain() {
		if evt.Kind == event.KindHint {
			hints = append(hints, evt.Data)
		}
	}
	assert.Equal(t, []any{6}, hints)
}
