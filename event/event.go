// Package event carries presentation side effects out of the simulation. The
// tick pushes events; the host drains them after the tick has settled.
package event

// Kind identifies what the presentation layer should do with an event.
type Kind string

const (
	KindSound   Kind = "sound"
	KindMusic   Kind = "music"
	KindHint    Kind = "hint"
	KindEnding  Kind = "ending"
	KindSaved   Kind = "saved"
	KindNetwork Kind = "network"
)

type Event struct {
	Kind   Kind
	Name   string
	Volume float64
	Data   any
}

func Sound(name string, volume float64) Event {
	return Event{Kind: KindSound, Name: name, Volume: volume}
}

// Queue is a simple FIFO queue.
type Queue struct {
	items []Event
}

// Push adds an event. Pushing to a nil queue drops the event.
func (q *Queue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

func (q *Queue) PlaySound(name string, volume float64) {
	q.Push(Sound(name, volume))
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
