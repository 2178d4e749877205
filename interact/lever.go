package interact

import (
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/progress"
)

// Lever turns the fans on for good.
type Lever struct {
	Trigger

	activated bool
}

func NewLever(x, y float64) *Lever {
	l := &Lever{Trigger: newTrigger(x, y, true)}
	l.Hitbox = geom.V(12, 8)
	return l
}

func (l *Lever) Activated() bool { return l.activated }

// Enable pulls the lever without side effects.
func (l *Lever) Enable() {
	l.activated = true
	l.CanInteract = false
}

func (l *Lever) PlayerCollision(p *player.Player, sc *Scene) bool {
	return resolve(&l.Trigger, l, p, sc)
}

func (l *Lever) interact(p *player.Player, sc *Scene) {
	const waitTime = 60

	if l.activated {
		return
	}
	text, ok := sc.lookup("lever")
	if !ok {
		return
	}

	sc.message(text, waitTime, nil)
	sc.Env.StartShake(waitTime, 2)

	l.Enable()

	p.SetUsePose(-1, false)
	p.Progress().SetBool(progress.BoolFansEnabled, true)

	sc.Env.PlaySound("lever", 0.50)
}

// Switch is pressed by landing on it. Each press flips the toggle blocks.
type Switch struct {
	Trigger

	down bool
}

func NewSwitch(x, y float64) *Switch {
	s := &Switch{Trigger: newTrigger(x, y, false)}
	s.Center = geom.V(0, -6)
	s.Hitbox = geom.V(8, 4)
	return s
}

func (s *Switch) Down() bool { return s.down }

func (s *Switch) PlayerCollision(p *player.Player, sc *Scene) bool {
	const (
		bounce  = -3.0
		jumpEps = 0.1
	)

	if s.down || !s.InCamera || p.Speed.Y <= jumpEps {
		return false
	}
	if !p.Overlaps(&s.Base) {
		return false
	}

	s.down = true
	p.MakeJump(bounce)
	if sc.Stage != nil {
		sc.Stage.ToggleSpecialBlocks()
	}
	prog := p.Progress()
	prog.SetBool(progress.BoolSwitchState, !prog.Bool(progress.BoolSwitchState))

	sc.Env.PlaySound("toggle", 0.50)
	return true
}

// Reset raises the switch again once it has scrolled out of view.
func (s *Switch) Reset() {
	s.down = false
}
