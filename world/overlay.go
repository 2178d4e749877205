package world

// MessageBox shows lines over the stage. The simulation stops while it is
// active. Messages shown while another is open wait their turn.
type MessageBox struct {
	Lines []string

	wait    float64
	then    func()
	active  bool
	pending []message
}

type message struct {
	lines []string
	wait  float64
	then  func()
}

// Show opens the box. With wait > 0 it closes by itself after wait ticks,
// otherwise on confirm. then runs after it closes; empty messages run then
// immediately.
func (m *MessageBox) Show(lines []string, wait float64, then func()) {
	if len(lines) == 0 {
		if then != nil {
			then()
		}
		return
	}
	if m.active {
		m.pending = append(m.pending, message{lines, wait, then})
		return
	}
	m.Lines = lines
	m.wait = wait
	m.then = then
	m.active = true
}

func (m *MessageBox) Active() bool { return m.active }

func (m *MessageBox) Update(confirm bool, step float64) {
	if !m.active {
		return
	}
	if m.wait > 0 {
		if m.wait -= step; m.wait > 0 {
			return
		}
	} else if !confirm {
		return
	}

	then := m.then
	m.active = false
	m.Lines = nil
	m.then = nil

	if len(m.pending) > 0 {
		next := m.pending[0]
		m.pending = m.pending[1:]
		m.Show(next.lines, next.wait, next.then)
	}
	if then != nil {
		then()
	}
}

const transitionSpeed = 1.0 / 20.0

// Transition covers the screen, runs its callback while covered and
// uncovers again.
type Transition struct {
	timer   float64
	then    func()
	active  bool
	covered bool
}

func (t *Transition) Start(then func()) {
	t.timer = 0
	t.then = then
	t.active = true
	t.covered = false
}

func (t *Transition) Active() bool { return t.active }

// Amount is how much of the screen is covered, from 0 to 1.
func (t *Transition) Amount() float64 {
	if !t.active {
		return 0
	}
	if t.timer <= 1 {
		return t.timer
	}
	return 2 - t.timer
}

func (t *Transition) Update(step float64) {
	if !t.active {
		return
	}
	t.timer += transitionSpeed * step
	if !t.covered && t.timer >= 1 {
		t.covered = true
		if t.then != nil {
			t.then()
		}
	}
	if t.timer >= 2 {
		t.active = false
		t.then = nil
	}
}
