// Package interact implements the objects the player interacts with by
// touching them (weak targets) or by standing on the ground in front of them
// and pressing up (strong targets).
package interact

import (
	"github.com/milk9111/starseeker/camera"
	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/randomizer"
)

// Texts looks up localized message lines. A missing key turns the
// interaction that needs it into a no-op.
type Texts interface {
	Lookup(key ...string) ([]string, bool)
}

// Host runs the parts of an interaction that outlive the tick.
type Host interface {
	// Message shows lines and calls then once they are dismissed. Zero lines
	// call then right away.
	Message(lines []string, wait float64, then func())
	// Transition covers the screen and calls then at its midpoint.
	Transition(then func())
	Save() error
	EnterFinalArea()
	StartEnding()
}

// Toggler flips the toggle block groups.
type Toggler interface {
	ToggleSpecialBlocks()
}

// Scene is everything an interaction may touch.
type Scene struct {
	Env    *object.Env
	Camera *camera.Camera
	Stage  Toggler
	Texts  Texts
	Host   Host
	Checks randomizer.Checker
}

func (sc *Scene) lookup(key ...string) ([]string, bool) {
	if sc.Texts == nil {
		return nil, false
	}
	return sc.Texts.Lookup(key...)
}

func (sc *Scene) message(lines []string, wait float64, then func()) {
	if sc.Host == nil {
		if then != nil {
			then()
		}
		return
	}
	sc.Host.Message(lines, wait, then)
}

func (sc *Scene) transition(then func()) {
	if sc.Host == nil {
		then()
		return
	}
	sc.Host.Transition(then)
}

func (sc *Scene) upPress() bool {
	return sc.Env.Input != nil && sc.Env.Input.UpPress()
}

var (
	stopMusic  = event.Event{Kind: event.KindMusic, Name: "stop"}
	themeMusic = event.Event{Kind: event.KindMusic, Name: "theme"}
)

// Trigger is the shared state of weak and strong targets.
type Trigger struct {
	object.Base

	CanInteract bool
	Strong      bool
}

func newTrigger(x, y float64, strong bool) Trigger {
	t := Trigger{
		Base:        object.NewBase(x, y, true),
		CanInteract: true,
		Strong:      strong,
	}
	t.Static = true
	return t
}

// Target is implemented by every interaction target.
type Target interface {
	object.Object
	PlayerCollision(p *player.Player, sc *Scene) bool
}

// Optional hooks of a target.
type (
	// watcher runs for every active target each tick, before the overlap
	// test.
	watcher interface {
		playerEvent(p *player.Player, sc *Scene)
	}
	// toucher runs on overlap, before the strong confirmation.
	toucher interface {
		touch(p *player.Player, sc *Scene)
	}
	interactor interface {
		interact(p *player.Player, sc *Scene)
	}
)

// resolve runs the interaction protocol for t, whose hooks live on self.
func resolve(t *Trigger, self any, p *player.Player, sc *Scene) bool {
	if p.Dying || !p.Exist || !t.CanInteract || !t.Active() {
		return false
	}

	if w, ok := self.(watcher); ok {
		w.playerEvent(p, sc)
	}
	if !p.Overlaps(&t.Base) {
		return false
	}

	if h, ok := self.(toucher); ok {
		h.touch(p, sc)
	}
	if !t.Strong || !p.TouchGround() {
		return true
	}

	p.Interact()
	if sc.upPress() {
		if h, ok := self.(interactor); ok {
			h.interact(p, sc)
		}
	}
	return true
}
