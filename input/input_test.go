package input

import (
	"testing"

	"github.com/milk9111/starseeker/geom"
	"github.com/stretchr/testify/assert"
)

func TestTrackerEdges(t *testing.T) {
	var tr Tracker

	var r Raw
	r.Held[Jump] = true
	s := tr.Next(r)
	assert.Equal(t, Pressed, s.Action(Jump))
	assert.True(t, s.Action(Jump).Held())

	s = tr.Next(r)
	assert.Equal(t, Down, s.Action(Jump))

	r.Held[Jump] = false
	s = tr.Next(r)
	assert.Equal(t, Released, s.Action(Jump))
	assert.False(t, s.Action(Jump).Held())

	s = tr.Next(r)
	assert.Equal(t, Up, s.Action(Jump))
	assert.Equal(t, Up, s.Action(ActionCount))
}

func TestTrackerStickPresses(t *testing.T) {
	var tr Tracker

	s := tr.Next(Raw{Stick: geom.V(0, -1)})
	assert.True(t, s.UpPress())

	s = tr.Next(Raw{Stick: geom.V(0, -1)})
	assert.False(t, s.UpPress(), "holding up is not a new press")

	s = tr.Next(Raw{Stick: geom.V(0, 1)})
	assert.True(t, s.DownPress())

	var nilSnap *Snapshot
	assert.False(t, nilSnap.UpPress())
}
