package projectile

import (
	"testing"

	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv() *object.Env {
	return &object.Env{Step: 1, Events: &event.Queue{}, Shake: &event.Shake{}}
}

func TestGravityArc(t *testing.T) {
	s := NewSet(1)
	env := newEnv()
	p := s.Spawn(0, 0, 3, -1, true, IDRock, true)

	object.Update(p, env)
	assert.Equal(t, 3.0, p.Pos.X)
	assert.InDelta(t, -0.9, p.Pos.Y, 1e-9)

	for i := 0; i < 30; i++ {
		object.Update(p, env)
	}
	assert.Greater(t, p.Speed.Y, 0.0)
	assert.Equal(t, 3.0, p.Speed.X)
}

func TestDestroyRunsDeathThenClears(t *testing.T) {
	s := NewSet(1)
	env := newEnv()
	p := s.Spawn(0, 0, 1, 0, false, IDBullet, false)

	p.Destroy(env)
	p.Destroy(env)
	require.True(t, p.Dying)
	assert.Equal(t, 1, env.Events.Len())

	for i := 0; i < deathTime; i++ {
		require.True(t, p.Exist)
		object.Update(p, env)
	}
	assert.False(t, p.Exist)
	assert.Equal(t, 0, s.Active())
}

func TestOnlyRocksBreakTiles(t *testing.T) {
	s := NewSet(2)
	env := newEnv()

	bullet := s.Spawn(8, 8, 0, 0, false, IDBullet, false)
	assert.False(t, bullet.BreakCollision(0, 0, 16, 16, 1, env))

	rock := s.Spawn(8, 8, 0, 0, true, IDRock, true)
	assert.True(t, rock.BreakCollision(0, 0, 16, 16, 1, env))
	assert.True(t, rock.Dying)
	assert.False(t, rock.BreakCollision(0, 0, 16, 16, 1, env))
}

func TestSetReusesSlots(t *testing.T) {
	s := NewSet(1)
	a := s.Spawn(0, 0, 0, 0, false, IDBullet, false)
	a.OutsideCamera()

	b := s.Spawn(4, 4, 0, 0, false, IDBullet, false)
	assert.Same(t, a, b)

	s.Spawn(0, 0, 0, 0, false, IDBullet, false)
	assert.Equal(t, 2, s.Active())

	n := 0
	s.Each(func(*Projectile) { n++ })
	assert.Equal(t, 2, n)
}
