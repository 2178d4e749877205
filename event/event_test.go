package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueDrain(t *testing.T) {
	var q Queue
	q.PlaySound("jump", 0.5)
	q.Push(Event{Kind: KindHint, Name: "3"})

	out := q.Drain()
	assert.Len(t, out, 2)
	assert.Equal(t, KindSound, out[0].Kind)
	assert.Equal(t, "jump", out[0].Name)
	assert.Nil(t, q.Drain())

	var nilQueue *Queue
	nilQueue.Push(Sound("x", 1))
	assert.Equal(t, 0, nilQueue.Len())
}

func TestShake(t *testing.T) {
	var s Shake
	assert.False(t, s.Active())

	s.Start(2, 1.5)
	assert.True(t, s.Active())
	assert.Equal(t, 1.5, s.Magnitude())

	s.Update(1)
	assert.True(t, s.Active())
	s.Update(1)
	assert.False(t, s.Active())
	assert.Equal(t, 0.0, s.Magnitude())
}
