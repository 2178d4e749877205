package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproach(t *testing.T) {
	cases := []struct {
		name             string
		v, target, delta float64
		want             float64
	}{
		{"up", 0, 1, 0.25, 0.25},
		{"down", 1, 0, 0.25, 0.75},
		{"no_overshoot_up", 0.9, 1, 0.25, 1},
		{"no_overshoot_down", -0.9, -1, 0.25, -1},
		{"already_there", 2, 2, 0.5, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, Approach(c.v, c.target, c.delta), 1e-9)
		})
	}
}

func TestNegMod(t *testing.T) {
	assert.InDelta(t, 150.0, NegMod(-10, 160), 1e-9)
	assert.InDelta(t, 10.0, NegMod(170, 160), 1e-9)
	assert.Equal(t, 3, NegModInt(-1, 4))
	assert.Equal(t, 0, NegModInt(8, 4))
}

func TestClampAndSign(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-3, 0, 15))
	assert.Equal(t, 15, ClampInt(99, 0, 15))
	assert.Equal(t, 2.0, Clamp(2, 0, 4))
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 0.0, Sign(0))
}
