package event

// Shake is the screen shake timer. Enemies read it during the same tick it
// starts, so it lives with the simulation rather than the renderer.
type Shake struct {
	timer     float64
	magnitude float64
}

func (s *Shake) Start(time, magnitude float64) {
	if s == nil {
		return
	}
	s.timer = time
	s.magnitude = magnitude
}

func (s *Shake) Update(step float64) {
	if s == nil || s.timer <= 0 {
		return
	}
	s.timer -= step
	if s.timer <= 0 {
		s.timer = 0
		s.magnitude = 0
	}
}

func (s *Shake) Active() bool {
	return s != nil && s.timer > 0
}

func (s *Shake) Magnitude() float64 {
	if !s.Active() {
		return 0
	}
	return s.magnitude
}
