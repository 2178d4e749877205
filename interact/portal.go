package interact

import (
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/progress"
)

// Orbs that must be destroyed before the portal opens.
var portalOrbs = []int{0, 1}

// Portal leads to the final area once every orb is destroyed.
type Portal struct {
	Trigger

	progress *progress.Manager
}

func NewPortal(x, y float64, prog *progress.Manager) *Portal {
	p := &Portal{
		Trigger:  newTrigger(x, y, true),
		progress: prog,
	}
	p.Hitbox = geom.V(16, 8)
	p.refresh()
	return p
}

func (pt *Portal) UpdateLogic(env *object.Env) {
	pt.refresh()
}

func (pt *Portal) refresh() {
	pt.CanInteract = pt.progress != nil
	for _, id := range portalOrbs {
		if pt.CanInteract && !pt.progress.Contains(progress.SetOrbsDestroyed, id) {
			pt.CanInteract = false
		}
	}
}

func (pt *Portal) PlayerCollision(p *player.Player, sc *Scene) bool {
	return resolve(&pt.Trigger, pt, p, sc)
}

func (pt *Portal) interact(p *player.Player, sc *Scene) {
	const (
		shakeTime      = 120
		shakeMagnitude = 4
	)

	sc.Env.PlaySound("select", 0.50)

	text, _ := sc.lookup("portal")
	sc.message(text, 0, func() {
		sc.Env.Events.Push(stopMusic)
		sc.Env.PlaySound("teleport", 0.40)

		p.SetUsePose(pt.Pos.X, false)
		sc.Env.StartShake(shakeTime, shakeMagnitude)

		sc.transition(func() {
			if sc.Host != nil {
				sc.Host.EnterFinalArea()
			}
		})
	})
}

// Orb is destroyed by the spin attack. Destroyed orbs stay destroyed.
type Orb struct {
	Trigger

	ID int

	deathTimer float64
}

const orbDeathTime = 20

func NewOrb(x, y float64, id int) *Orb {
	o := &Orb{
		Trigger: newTrigger(x, y, false),
		ID:      id,
	}
	o.Hitbox = geom.V(12, 12)
	return o
}

func (o *Orb) PlayerCollision(p *player.Player, sc *Scene) bool {
	if !o.Active() || !p.CheckSpinOverlap(&o.Base) {
		return false
	}

	o.Dying = true
	o.deathTimer = orbDeathTime
	p.Progress().AddToSet(progress.SetOrbsDestroyed, o.ID)

	sc.Env.StartShake(orbDeathTime, 2)
	sc.Env.PlaySound("kill", 0.50)
	return true
}

func (o *Orb) Die(env *object.Env) bool {
	o.deathTimer -= env.Step
	return o.deathTimer <= 0
}
