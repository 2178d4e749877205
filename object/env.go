package object

import (
	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/input"
)

// Env is what a single tick hands to every object it updates.
type Env struct {
	Step   float64
	Input  *input.Snapshot
	Events *event.Queue
	Shake  *event.Shake
}

func (e *Env) StartShake(time, magnitude float64) {
	e.Shake.Start(time, magnitude)
}

func (e *Env) Shaking() bool {
	return e.Shake.Active()
}

func (e *Env) Stick() geom.Vector {
	if e.Input == nil {
		return geom.Vector{}
	}
	return e.Input.Stick
}

func (e *Env) Action(a input.Action) input.State {
	return e.Input.Action(a)
}

func (e *Env) PlaySound(name string, volume float64) {
	e.Events.PlaySound(name, volume)
}
