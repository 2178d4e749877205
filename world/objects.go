package world

import (
	"github.com/milk9111/starseeker/camera"
	"github.com/milk9111/starseeker/enemy"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/interact"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/projectile"
	"github.com/milk9111/starseeker/worldmap"
)

const projectileCapacity = 16

// Objects owns every entity of the loaded level except the player.
type Objects struct {
	Enemies     []*enemy.Enemy
	Projectiles *projectile.Set

	// Targets holds every interaction target. The typed slices below alias
	// some of them for progress restoration and the map.
	Targets    []interact.Target
	Stars      []*interact.Star
	Chests     []*interact.Chest
	Doors      []*interact.Door
	SavePoints []*interact.SavePoint
	Levers     []*interact.Lever
	Switches   []*interact.Switch
	Orbs       []*interact.Orb

	PlayerStart  geom.Vector
	PlayerInside bool
}

func newObjects() *Objects {
	return &Objects{Projectiles: projectile.NewSet(projectileCapacity)}
}

func (o *Objects) each(fn func(object.Object)) {
	for _, e := range o.Enemies {
		fn(e)
	}
	for _, t := range o.Targets {
		fn(t)
	}
	o.Projectiles.Each(func(pr *projectile.Projectile) {
		fn(pr)
	})
}

// cameraCheck culls every object against the viewport and applies pending
// resets once the camera has settled.
func (o *Objects) cameraCheck(cam *camera.Camera) {
	view := cam.Bounds()
	moving := cam.IsMoving()
	o.each(func(obj object.Object) {
		object.CameraCheck(obj, view)
		object.ApplyDeferredReset(obj, moving)
	})
}

// update runs the enemies, projectiles and targets for one tick. The player
// has already moved.
func (o *Objects) update(w *World) {
	p := w.Player
	env := &w.env
	alive := p.Exist && !p.Dying

	for _, e := range o.Enemies {
		object.Update(e, env)
		w.Stage.ObjectCollision(e, env)
		if alive {
			e.PlayerCollision(p, env)
		}
		o.Projectiles.Each(func(pr *projectile.Projectile) {
			e.ProjectileCollision(pr, p, env)
		})
	}

	o.Projectiles.Each(func(pr *projectile.Projectile) {
		object.Update(pr, env)
		w.Stage.ObjectCollision(pr, env)
		p.ProjectileCollision(pr, env)
	})

	for _, t := range o.Targets {
		object.Update(t, env)
		t.PlayerCollision(p, &w.scene)
	}
}

// respawn restores the enemies after the player died. Killed enemies come
// back as ghosts.
func (o *Objects) respawn() {
	for _, e := range o.Enemies {
		e.Respawn()
	}
	for _, s := range o.Switches {
		s.Reset()
	}
	o.Projectiles.Clear()
}

// restore brings objects in line with prog after loading a game or
// entering another area.
func (o *Objects) restore(prog *progress.Manager, p *player.Player) {
	for _, s := range o.Stars {
		if prog.Contains(progress.SetStarsCollected, s.EntityID) {
			s.Exist = false
		}
	}
	for _, e := range o.Enemies {
		if prog.Contains(progress.SetEnemiesKilled, e.EntityID) {
			e.MakeGhost()
		}
	}
	for _, c := range o.Chests {
		if prog.Contains(progress.SetOpenChests, c.ID) {
			c.ForceOpen()
		}
	}
	for _, d := range o.Doors {
		if prog.Contains(progress.SetDoors, d.ID) {
			d.ForceOpen()
		}
	}
	for _, orb := range o.Orbs {
		if prog.Contains(progress.SetOrbsDestroyed, orb.ID) {
			orb.Exist = false
		}
	}
	if prog.Bool(progress.BoolFansEnabled) {
		for _, l := range o.Levers {
			l.Enable()
		}
	}

	checkpoint := int(prog.Number(progress.NumCheckpoint, -1))
	for _, s := range o.SavePoints {
		if s.ID == checkpoint {
			s.Activate()
			p.SetCheckpoint(s)
			p.Respawn()
			break
		}
	}
}

func (o *Objects) applySpec(spec prefabs.EnemySpec) {
	for _, e := range o.Enemies {
		e.SetSpec(spec)
	}
}

func inArea(pos geom.Vector, x, y, w, h float64) bool {
	return pos.X >= x && pos.X < x+w && pos.Y >= y && pos.Y < y+h
}

func (o *Objects) HasStarInArea(x, y, w, h float64) bool {
	for _, s := range o.Stars {
		if s.Exist && !s.Dying && inArea(s.Pos, x, y, w, h) {
			return true
		}
	}
	return false
}

// HasEnemyInArea counts enemies that can still be killed for the record.
func (o *Objects) HasEnemyInArea(x, y, w, h float64) bool {
	for _, e := range o.Enemies {
		if e.Exist && !e.Dying && !e.Ghost() && inArea(e.StartPos(), x, y, w, h) {
			return true
		}
	}
	return false
}

func (o *Objects) DoorConnectionInArea(x, y, w, h float64) (geom.Rect, bool) {
	for _, d := range o.Doors {
		pair := d.Pair()
		if pair == nil || !inArea(d.Pos, x, y, w, h) {
			continue
		}
		from := roomCell(d.Pos, w, h)
		to := roomCell(pair.Pos, w, h)
		return geom.NewRect(from.X, from.Y, to.X, to.Y), true
	}
	return geom.Rect{}, false
}

func roomCell(pos geom.Vector, w, h float64) geom.Vector {
	return worldmap.CellCenter(int(pos.X/w), int(pos.Y/h))
}

// StarCount is the number of stars placed in the level.
func (o *Objects) StarCount() int { return len(o.Stars) }

func (o *Objects) EnemyCount() int { return len(o.Enemies) }
