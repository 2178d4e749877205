// Package world runs one game area: the stage, the player, every placed
// object and the overlays that pause them.
package world

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/starseeker/camera"
	"github.com/milk9111/starseeker/enemy"
	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/input"
	"github.com/milk9111/starseeker/interact"
	"github.com/milk9111/starseeker/levels"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/randomizer"
	"github.com/milk9111/starseeker/worldmap"
)

var (
	ErrCannotSave = errors.New("world: cannot save in the final area")
	ErrNoSaver    = errors.New("world: saving is disabled")
)

// Link is the randomizer connection as the world sees it.
type Link interface {
	randomizer.Checker
	Drain(prog *progress.Manager) int
	Errors() <-chan error
}

type Options struct {
	PlayerSpec prefabs.PlayerSpec
	EnemySpec  prefabs.EnemySpec
	Texts      interact.Texts
	// Save persists progress. Nil disables saving.
	Save func(prog *progress.Manager) error
	// Link is nil when playing without a randomizer server.
	Link Link
}

type World struct {
	opts Options

	Progress *progress.Manager
	Level    *levels.Level
	Stage    *levels.Stage
	Camera   *camera.Camera
	Player   *player.Player
	Objects  *Objects
	Map      *worldmap.Map

	Events event.Queue
	Shake  event.Shake
	// Dialog and Fade are the overlays. While either is open the world is
	// frozen.
	Dialog MessageBox
	Fade   Transition

	FinalArea bool
	Paused    bool
	Ended     bool

	env   object.Env
	scene interact.Scene
}

// New loads the normal or the final area and restores it from prog.
func New(prog *progress.Manager, finalArea bool, opts Options) (*World, error) {
	name := levels.NormalArea
	if finalArea {
		name = levels.FinalArea
	}
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	return NewFromLevel(lvl, prog, finalArea, opts), nil
}

func NewFromLevel(lvl *levels.Level, prog *progress.Manager, finalArea bool, opts Options) *World {
	w := &World{
		opts:     opts,
		Progress: prog,
		Camera:   camera.NewRoomCamera(),
	}
	w.env = object.Env{Step: 1, Events: &w.Events, Shake: &w.Shake}
	w.load(lvl, finalArea)
	return w
}

func (w *World) checker() randomizer.Checker {
	if w.opts.Link == nil {
		return nil
	}
	return w.opts.Link
}

func (w *World) load(lvl *levels.Level, finalArea bool) {
	w.Level = lvl
	w.FinalArea = finalArea
	w.Stage = levels.NewStage(lvl, w.Progress)
	w.Objects = newObjects()
	w.Objects.spawnEntities(lvl.Entities, enemy.Deps{
		Spec:        w.opts.EnemySpec,
		Projectiles: w.Objects.Projectiles,
		Checks:      w.checker(),
	}, w.Progress)

	start := w.Objects.PlayerStart
	w.Player = player.New(start.X, start.Y, w.opts.PlayerSpec, w.Progress,
		w.Objects.Projectiles, w.Objects.PlayerInside, finalArea)

	w.scene = interact.Scene{
		Env:    &w.env,
		Camera: w.Camera,
		Stage:  w.Stage,
		Texts:  w.opts.Texts,
		Host:   w,
		Checks: w.checker(),
	}

	w.Objects.restore(w.Progress, w.Player)
	if w.Progress.Bool(progress.BoolSwitchState) != w.Stage.Toggled() {
		w.Stage.ToggleSpecialBlocks()
	}

	w.Map = worldmap.New(lvl.Width, lvl.Height)

	w.Camera.FocusOn(w.Player.Pos)
	w.Camera.WasForcedToMove()
	w.Player.TeleportTo(w.Player.Pos, false, w.Player.Inside)
	w.Player.StageEvent(w.Camera, w.Stage.RoomsX())
	w.Objects.cameraCheck(w.Camera)
}

// ApplySpecs swaps in reloaded tuning.
func (w *World) ApplySpecs(ps prefabs.PlayerSpec, es prefabs.EnemySpec) {
	w.opts.PlayerSpec = ps
	w.opts.EnemySpec = es
	w.Player.SetSpec(ps)
	w.Objects.applySpec(es)
}

func confirmPressed(in *input.Snapshot) bool {
	return in.Action(input.Jump) == input.Pressed ||
		in.Action(input.Spin) == input.Pressed ||
		in.Action(input.Start) == input.Pressed
}

func anyPressed(in *input.Snapshot) bool {
	for a := input.Action(0); a < input.ActionCount; a++ {
		if in.Action(a) == input.Pressed {
			return true
		}
	}
	return false
}

// Update advances the world by one tick. Overlays that are open consume the
// tick; otherwise the camera, the player and the objects run in that order.
func (w *World) Update(in *input.Snapshot, step float64) {
	w.env.Step = step
	w.env.Input = in

	w.pollLink()

	if w.Fade.Active() {
		w.Fade.Update(step)
		if w.Camera.WasForcedToMove() {
			w.Objects.cameraCheck(w.Camera)
		}
		return
	}
	if w.Dialog.Active() {
		w.Dialog.Update(confirmPressed(in), step)
		return
	}
	if w.Map.Active() {
		w.Map.Update(anyPressed(in), step)
		return
	}
	if w.Paused {
		if in.Action(input.Start) == input.Pressed {
			w.Paused = false
		}
		return
	}
	if w.Ended {
		return
	}

	switch {
	case in.Action(input.Start) == input.Pressed:
		w.env.PlaySound("pause", 0.40)
		w.Paused = true
		return
	case in.Action(input.Map) == input.Pressed:
		w.env.PlaySound("pause", 0.40)
		w.ActivateMap()
		return
	}

	// Looping areas wrap once a scroll past the edge has finished.
	if w.Camera.Update(step) && w.Stage.Loop {
		w.Player.CheckLoop(w.Stage.PixelWidth())
		w.Camera.CheckLoop(w.Stage.PixelWidth())
	}
	w.Shake.Update(step)

	w.updateObjects()
}

func (w *World) updateObjects() {
	cam := w.Camera
	p := w.Player
	env := &w.env

	if cam.IsMoving() {
		p.CameraMovement(cam, env)
		return
	}

	w.Objects.cameraCheck(cam)

	object.Update(p, env)
	w.Stage.ObjectCollision(p, env)
	if p.TakeCameraBorderCollision {
		w.cameraBorderCollision()
	}
	if !p.Exist {
		w.Fade.Start(w.respawn)
		return
	}
	p.StageEvent(cam, w.Stage.RoomsX())
	p.CameraEvent(cam, w.Stage.RoomsX())

	w.Objects.update(w)
}

// cameraBorderCollision keeps the player inside the view horizontally.
func (w *World) cameraBorderCollision() {
	v := w.Camera.Position()
	h := w.Camera.Height
	object.ForceWallCollision(w.Player, v.X, v.Y, h, -1, &w.env)
	object.ForceWallCollision(w.Player, v.X+w.Camera.Width, v.Y, h, 1, &w.env)
}

func (w *World) respawn() {
	w.Player.Respawn()
	w.Objects.respawn()
	w.Camera.FocusOn(w.Player.Pos)
	w.Objects.cameraCheck(w.Camera)
	w.Events.Push(w.themeMusic())
}

func (w *World) themeMusic() event.Event {
	name := "theme"
	switch {
	case w.FinalArea:
		name = "final"
	case w.Player.Inside:
		name = "inside"
	}
	return event.Event{Kind: event.KindMusic, Name: name}
}

// pollLink applies received items and reports transport errors. It never
// blocks.
func (w *World) pollLink() {
	if w.opts.Link == nil {
		return
	}
	if n := w.opts.Link.Drain(w.Progress); n > 0 {
		w.Events.Push(event.Event{Kind: event.KindNetwork, Name: "items", Data: n})
	}
	select {
	case err, ok := <-w.opts.Link.Errors():
		if ok {
			log.Printf("world: randomizer: %v", err)
			w.Events.Push(event.Event{Kind: event.KindNetwork, Name: "error", Data: err})
		}
	default:
	}
}

// ActivateMap opens the world map, which is unavailable in the final area.
func (w *World) ActivateMap() {
	if w.FinalArea {
		if text, ok := w.lookup("cannotSave"); ok {
			w.Dialog.Show(text, 0, nil)
		}
		return
	}
	w.Map.Activate(w.Objects, w.Progress, w.Camera.RoomPosition())
}

func (w *World) lookup(key ...string) ([]string, bool) {
	if w.opts.Texts == nil {
		return nil, false
	}
	return w.opts.Texts.Lookup(key...)
}

// Env is the tick environment, for hosts that drive objects directly.
func (w *World) Env() *object.Env { return &w.env }

func (w *World) Message(lines []string, wait float64, then func()) {
	w.Dialog.Show(lines, wait, then)
}

func (w *World) Transition(then func()) {
	w.Fade.Start(then)
}

func (w *World) Save() error {
	if w.FinalArea {
		return ErrCannotSave
	}
	if w.opts.Save == nil {
		return ErrNoSaver
	}
	if err := w.opts.Save(w.Progress); err != nil {
		return err
	}
	w.Events.Push(event.Event{Kind: event.KindSaved})
	return nil
}

func (w *World) EnterFinalArea() {
	lvl, err := levels.LoadLevelFromFS(levels.FinalArea)
	if err != nil {
		log.Printf("world: final area: %v", err)
		return
	}
	w.load(lvl, true)
	w.Events.Push(w.themeMusic())
}

func (w *World) StartEnding() {
	w.Ended = true
	w.Events.Push(event.Event{Kind: event.KindEnding})
}
