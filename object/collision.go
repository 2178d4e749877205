package object

import "math"

const (
	nearMargin = 1.0
	farMargin  = 4.0
)

// VerticalCollision offers o a horizontal edge at height y spanning [x, x+w).
// dir is +1 for a floor (o moving down onto it) and -1 for a ceiling.
//
// The edge applies when o's leading side lies within nearMargin before or
// farMargin+|speed| past it. A resting object sits exactly on the edge, so a
// floor fires every tick the object stays grounded, not only on first contact.
func VerticalCollision(o Object, x, y, w float64, dir int, env *Env) bool {
	return verticalCollision(o, x, y, w, dir, env, false)
}

// ForceVerticalCollision ignores DisableCollisions.
func ForceVerticalCollision(o Object, x, y, w float64, dir int, env *Env) bool {
	return verticalCollision(o, x, y, w, dir, env, true)
}

func verticalCollision(o Object, x, y, w float64, dir int, env *Env, force bool) bool {
	b := o.Obj()
	if !b.Exist || b.Dying || !b.InCamera || (b.DisableCollisions && !force) {
		return false
	}
	d := float64(dir)
	if dir == 0 || b.Speed.Y*d < 0 {
		return false
	}

	left := b.Pos.X + b.Center.X - b.CollisionBox.X/2
	right := left + b.CollisionBox.X
	if right <= x || left >= x+w {
		return false
	}

	edge := b.Pos.Y + b.Center.Y + b.CollisionBox.Y/2*d
	near := nearMargin * env.Step
	far := (farMargin + math.Abs(b.Speed.Y)) * env.Step

	if (dir > 0 && edge >= y-near && edge <= y+far) ||
		(dir < 0 && edge <= y+near && edge >= y-far) {

		b.Pos.Y = y - b.Center.Y - b.CollisionBox.Y/2*d
		b.Speed.Y = 0
		if h, ok := o.(CollisionHandler); ok {
			h.VerticalCollisionEvent(dir, env)
		}
		return true
	}
	return false
}

// WallCollision offers o a vertical edge at x spanning [y, y+h). dir is +1 for
// a wall to the right of o and -1 for a wall to its left.
func WallCollision(o Object, x, y, h float64, dir int, env *Env) bool {
	return wallCollision(o, x, y, h, dir, env, false)
}

// ForceWallCollision ignores DisableCollisions. Used for the camera border.
func ForceWallCollision(o Object, x, y, h float64, dir int, env *Env) bool {
	return wallCollision(o, x, y, h, dir, env, true)
}

func wallCollision(o Object, x, y, h float64, dir int, env *Env, force bool) bool {
	b := o.Obj()
	if !b.Exist || b.Dying || !b.InCamera || (b.DisableCollisions && !force) {
		return false
	}
	d := float64(dir)
	if dir == 0 || b.Speed.X*d < 0 {
		return false
	}

	top := b.Pos.Y + b.Center.Y - b.CollisionBox.Y/2
	bottom := top + b.CollisionBox.Y
	if bottom <= y || top >= y+h {
		return false
	}

	edge := b.Pos.X + b.Center.X + b.CollisionBox.X/2*d
	near := nearMargin * env.Step
	far := (farMargin + math.Abs(b.Speed.X)) * env.Step

	if (dir > 0 && edge >= x-near && edge <= x+far) ||
		(dir < 0 && edge <= x+near && edge >= x-far) {

		b.Pos.X = x - b.Center.X - b.CollisionBox.X/2*d
		b.Speed.X = 0
		if h, ok := o.(CollisionHandler); ok {
			h.WallCollisionEvent(dir, env)
		}
		return true
	}
	return false
}
