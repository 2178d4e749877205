package interact

import (
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/randomizer"
)

// Chests facing left, by chest id.
var chestMirrored = []bool{
	false, true, false, true, false, false, true, false, true, false, false,
}

// Chest is opened once. Its content is decided by the randomizer, so opening
// only records the chest and reports the location.
type Chest struct {
	Trigger

	ID     int
	opened bool
}

func NewChest(x, y float64, id int) *Chest {
	c := &Chest{
		Trigger: newTrigger(x, y, true),
		ID:      id,
	}
	c.Hitbox = geom.V(12, 8)
	return c
}

func (c *Chest) Opened() bool { return c.opened }

func (c *Chest) Mirrored() bool {
	return c.ID >= 0 && c.ID < len(chestMirrored) && chestMirrored[c.ID]
}

func (c *Chest) PlayerCollision(p *player.Player, sc *Scene) bool {
	return resolve(&c.Trigger, c, p, sc)
}

func (c *Chest) interact(p *player.Player, sc *Scene) {
	if c.opened {
		return
	}
	if p.Progress().AddToSet(progress.SetOpenChests, c.ID) {
		randomizer.Check(sc.Checks, randomizer.ChestLocation(c.ID))
	}
	sc.Env.PlaySound("item", 0.40)
	c.ForceOpen()
}

// ForceOpen marks the chest open without reporting it, for chests already
// recorded in progress.
func (c *Chest) ForceOpen() {
	c.opened = true
	c.CanInteract = false
}

// GiantChest starts the ending.
type GiantChest struct {
	Trigger

	Opened bool
}

func NewGiantChest(x, y float64) *GiantChest {
	g := &GiantChest{Trigger: newTrigger(x, y, true)}
	g.Hitbox = geom.V(16, 8)
	return g
}

func (g *GiantChest) PlayerCollision(p *player.Player, sc *Scene) bool {
	return resolve(&g.Trigger, g, p, sc)
}

func (g *GiantChest) interact(p *player.Player, sc *Scene) {
	first, ok := sc.lookup("preEnding", "0")
	if !ok {
		return
	}
	second, _ := sc.lookup("preEnding", "1")
	third, _ := sc.lookup("preEnding", "2")

	sc.Env.PlaySound("select", 0.50)
	p.SetUsePose(g.Pos.X-4, true)

	sc.message(first, 0, func() {
		g.CanInteract = false
		g.Opened = true

		sc.message(second, 0, func() {
			p.SetSleepPose()

			sc.message(third, 0, func() {
				sc.Env.Events.Push(stopMusic)
				sc.Env.PlaySound("asleep", 0.55)
				sc.transition(func() {
					if sc.Host != nil {
						sc.Host.StartEnding()
					}
				})
			})
		})
	})
}
