package physics

import (
	"math"
	"testing"

	"github.com/milk9111/starseeker/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrateConvergesMonotonically(t *testing.T) {
	cases := []struct {
		name     string
		speed    geom.Vector
		target   geom.Vector
		friction geom.Vector
	}{
		{"gravity_from_rest", geom.V(0, 0), geom.V(0, 3), geom.V(0.1, 0.15)},
		{"braking", geom.V(2.5, -2), geom.V(0, 0), geom.V(0.1, 0.15)},
		{"tiny_friction", geom.V(0, 0), geom.V(0.75, 0.5), geom.V(0.001, 0.003)},
		{"reverse", geom.V(-3, 1), geom.V(3, -1), geom.V(0.3, 0.05)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBody(0, 0)
			b.Speed = c.speed
			b.Target = c.target
			b.Friction = c.friction

			prev := b.Speed.Sub(b.Target)
			reached := false
			for i := 0; i < 100000; i++ {
				b.Integrate(1.0)
				d := b.Speed.Sub(b.Target)
				require.LessOrEqual(t, math.Abs(d.X), math.Abs(prev.X)+1e-12)
				require.LessOrEqual(t, math.Abs(d.Y), math.Abs(prev.Y)+1e-12)
				prev = d
				if d.X == 0 && d.Y == 0 {
					reached = true
					break
				}
			}
			assert.True(t, reached, "speed never reached target")
		})
	}
}

func TestIntegrateMovesByNewSpeed(t *testing.T) {
	b := NewBody(10, 10)
	b.Target = geom.V(0, 3)
	b.Friction = geom.V(0.1, 0.15)

	b.Integrate(1.0)

	assert.Equal(t, geom.V(10, 10), b.OldPos)
	assert.InDelta(t, 0.15, b.Speed.Y, 1e-9)
	assert.InDelta(t, 10.15, b.Pos.Y, 1e-9)
	assert.Equal(t, 10.0, b.Pos.X)
}

func TestStopAndTeleport(t *testing.T) {
	b := NewBody(0, 0)
	b.Speed = geom.V(1, 1)
	b.Target = geom.V(2, 2)
	b.Stop()
	assert.Equal(t, geom.Vector{}, b.Speed)
	assert.Equal(t, geom.Vector{}, b.Target)

	b.Teleport(geom.V(5, 6))
	assert.Equal(t, b.Pos, b.OldPos)
}
