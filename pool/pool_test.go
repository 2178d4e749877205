package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spark struct {
	exist bool
	n     int
}

func (s *spark) Exists() bool { return s.exist }

func newSpark() *spark { return &spark{} }

func TestAcquireReusesFreedSlots(t *testing.T) {
	p := New(2, newSpark)

	a := p.Acquire()
	a.exist = true
	b := p.Acquire()
	b.exist = true
	require.NotSame(t, a, b)
	require.Equal(t, 2, p.Len())

	a.exist = false
	c := p.Acquire()
	assert.Same(t, a, c, "freed slot must be reused before growing")
	assert.Equal(t, 2, p.Len())
}

func TestAcquireGrowsByDoubling(t *testing.T) {
	p := New(2, newSpark)
	for i := 0; i < 2; i++ {
		p.Acquire().exist = true
	}

	s := p.Acquire()
	assert.False(t, s.exist)
	assert.Equal(t, 4, p.Len())

	s.exist = true
	p.Acquire().exist = true
	p.Acquire()
	assert.Equal(t, 8, p.Len())
}

func TestFreeSlotAndActive(t *testing.T) {
	p := New(0, newSpark)
	require.Equal(t, 1, p.Len())

	s, ok := p.FreeSlot()
	require.True(t, ok)
	s.exist = true

	_, ok = p.FreeSlot()
	assert.False(t, ok)
	assert.Equal(t, 1, p.Active())

	seen := 0
	p.Each(func(*spark) { seen++ })
	assert.Equal(t, 1, seen)
}
