// Package input is the per-tick controller snapshot read by the simulation.
// Polling the real devices happens in the host; this package only turns raw
// held/not-held samples into edge-aware button states.
package input

import "github.com/milk9111/starseeker/geom"

// State is a button state. Bit 0 is set while the button is held.
type State uint8

const (
	Up       State = 0
	Down     State = 1
	Released State = 2
	Pressed  State = 3

	DownOrPressed State = 1
)

func (s State) Held() bool {
	return s&DownOrPressed != 0
}

type Action int

const (
	Jump Action = iota
	Spin
	Slide
	Throw
	Start
	Map

	ActionCount
)

const stickThreshold = 0.25

// Raw is one sample of the devices.
type Raw struct {
	Stick geom.Vector
	Held  [ActionCount]bool
}

type Snapshot struct {
	Stick   geom.Vector
	Buttons [ActionCount]State

	UpPressed   bool
	DownPressed bool
}

func (s *Snapshot) Action(a Action) State {
	if s == nil || a < 0 || a >= ActionCount {
		return Up
	}
	return s.Buttons[a]
}

func (s *Snapshot) UpPress() bool {
	return s != nil && s.UpPressed
}

func (s *Snapshot) DownPress() bool {
	return s != nil && s.DownPressed
}

// Tracker remembers the previous sample to derive Pressed and Released edges.
type Tracker struct {
	prev Raw
}

func (t *Tracker) Next(r Raw) Snapshot {
	var s Snapshot
	s.Stick = r.Stick
	for i := range r.Held {
		switch {
		case r.Held[i] && !t.prev.Held[i]:
			s.Buttons[i] = Pressed
		case r.Held[i]:
			s.Buttons[i] = Down
		case t.prev.Held[i]:
			s.Buttons[i] = Released
		default:
			s.Buttons[i] = Up
		}
	}
	s.UpPressed = r.Stick.Y < -stickThreshold && t.prev.Stick.Y >= -stickThreshold
	s.DownPressed = r.Stick.Y > stickThreshold && t.prev.Stick.Y <= stickThreshold

	t.prev = r
	return s
}
