// Package camera is the room-based viewport. The world is split into
// screen-sized rooms; the camera rests on one room and scrolls to a neighbour
// when the player leaves the view.
package camera

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/geom"
)

type Camera struct {
	pos    geom.Vector
	start  geom.Vector
	target geom.Vector

	Width  float64
	Height float64

	moving    bool
	moveTimer float64
	speed     float64
	dir       geom.Vector

	forced bool
}

func New(x, y, w, h float64) *Camera {
	return &Camera{pos: geom.V(x, y), Width: w, Height: h}
}

// NewRoomCamera is a camera the size of one screen.
func NewRoomCamera() *Camera {
	return New(0, 0, common.ScreenWidth, common.ScreenHeight)
}

// Position is the top-left corner in pixels.
func (c *Camera) Position() geom.Vector {
	return c.pos
}

// RoomPosition returns the room the camera rests on (or is leaving).
func (c *Camera) RoomPosition() geom.Vector {
	p := c.pos
	if c.moving {
		p = c.start
	}
	return geom.V(math.Round(p.X/c.Width), math.Round(p.Y/c.Height))
}

// Bounds is the current viewport in world pixels.
func (c *Camera) Bounds() cp.BB {
	return geom.RectBB(c.pos.X, c.pos.Y, c.Width, c.Height)
}

func (c *Camera) IsMoving() bool {
	return c.moving
}

func (c *Camera) Speed() float64 {
	return c.speed
}

func (c *Camera) Direction() geom.Vector {
	return c.dir
}

// Move starts a scroll of one room in direction (dx, dy). speed is the
// fraction of the scroll done per tick. A move already in progress wins.
func (c *Camera) Move(dx, dy int, speed float64) bool {
	if c.moving || (dx == 0 && dy == 0) || speed <= 0 {
		return false
	}

	c.moving = true
	c.moveTimer = 0
	c.speed = speed
	c.dir = geom.V(float64(dx), float64(dy))
	c.start = c.pos
	c.target = c.pos.Add(geom.V(float64(dx)*c.Width, float64(dy)*c.Height))

	return true
}

// Update advances a scroll and reports whether one finished during this tick.
func (c *Camera) Update(step float64) bool {
	if !c.moving {
		return false
	}

	c.moveTimer += c.speed * step
	if c.moveTimer >= 1.0 {
		c.pos = c.target
		c.moving = false
		c.moveTimer = 0
		c.dir = geom.Vector{}
		return true
	}
	c.pos = c.start.Lerp(c.target, c.moveTimer)
	return false
}

// FocusOn snaps to the room containing p and cancels any scroll.
func (c *Camera) FocusOn(p geom.Vector) {
	c.pos = geom.V(
		math.Floor(p.X/c.Width)*c.Width,
		math.Floor(p.Y/c.Height)*c.Height)
	c.moving = false
	c.moveTimer = 0
	c.dir = geom.Vector{}
	c.forced = true
}

// WasForcedToMove reports a FocusOn since the last call.
func (c *Camera) WasForcedToMove() bool {
	f := c.forced
	c.forced = false
	return f
}

// CheckLoop wraps the camera horizontally around a world worldWidth pixels wide.
func (c *Camera) CheckLoop(worldWidth float64) {
	if worldWidth <= 0 || c.moving {
		return
	}
	c.pos.X = common.NegMod(c.pos.X, worldWidth)
}
