package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/input"
)

const stickDeadzone = 0.2

type binding struct {
	keys   []ebiten.Key
	button ebiten.StandardGamepadButton
}

var bindings = [input.ActionCount]binding{
	input.Jump:  {[]ebiten.Key{ebiten.KeyZ}, ebiten.StandardGamepadButtonRightLeft},
	input.Spin:  {[]ebiten.Key{ebiten.KeyX}, ebiten.StandardGamepadButtonRightBottom},
	input.Slide: {[]ebiten.Key{ebiten.KeyC}, ebiten.StandardGamepadButtonRightRight},
	input.Throw: {[]ebiten.Key{ebiten.KeyS}, ebiten.StandardGamepadButtonRightTop},
	input.Start: {[]ebiten.Key{ebiten.KeyEnter}, ebiten.StandardGamepadButtonCenterRight},
	input.Map:   {[]ebiten.Key{ebiten.KeyShiftLeft}, ebiten.StandardGamepadButtonCenterLeft},
}

// pollInput samples the keyboard and the first gamepad.
func pollInput() input.Raw {
	var r input.Raw

	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	for a, b := range bindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				r.Held[a] = true
			}
		}
	}

	var stick geom.Vector
	if left {
		stick.X -= 1
	}
	if right {
		stick.X += 1
	}
	if up {
		stick.Y -= 1
	}
	if down {
		stick.Y += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			stick = geom.V(lx, ly)
		}

		dpad := func(b ebiten.StandardGamepadButton) bool {
			return ebiten.IsStandardGamepadButtonPressed(id, b)
		}
		switch {
		case dpad(ebiten.StandardGamepadButtonLeftLeft):
			stick.X = -1
		case dpad(ebiten.StandardGamepadButtonLeftRight):
			stick.X = 1
		}
		switch {
		case dpad(ebiten.StandardGamepadButtonLeftTop):
			stick.Y = -1
		case dpad(ebiten.StandardGamepadButtonLeftBottom):
			stick.Y = 1
		}

		for a, b := range bindings {
			if dpad(b.button) {
				r.Held[a] = true
			}
		}
	}

	if l := math.Hypot(stick.X, stick.Y); l > 1 {
		stick = geom.V(stick.X/l, stick.Y/l)
	}
	r.Stick = stick
	return r
}
