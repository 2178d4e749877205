package interact

import (
	"slices"

	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/progress"
)

// Door ids that never need the key.
var alwaysOpen = []int{0, 2, 9, 10, 11, 12, 13, 16, 19}

// Door leads to the other door with the same id.
type Door struct {
	Trigger

	ID     int
	Inside bool

	open bool
	pair *Door
}

func NewDoor(x, y float64, id int, inside bool) *Door {
	d := &Door{
		Trigger: newTrigger(x, y, true),
		ID:      id,
		Inside:  inside,
		open:    inside || slices.Contains(alwaysOpen, id),
	}
	d.Hitbox = geom.V(10, 8)
	return d
}

// PairDoors links doors sharing an id. A door keeps its first pair.
func PairDoors(doors []*Door) {
	for i, a := range doors {
		for _, b := range doors[i+1:] {
			if a.ID == b.ID {
				a.markPair(b)
				b.markPair(a)
			}
		}
	}
}

func (d *Door) markPair(o *Door) {
	if d.pair == nil {
		d.pair = o
	}
}

func (d *Door) Pair() *Door { return d.pair }

func (d *Door) Open() bool { return d.open }

func (d *Door) ForceOpen() { d.open = true }

func (d *Door) PlayerCollision(p *player.Player, sc *Scene) bool {
	return resolve(&d.Trigger, d, p, sc)
}

func (d *Door) interact(p *player.Player, sc *Scene) {
	if d.pair == nil {
		return
	}
	if !d.open {
		d.unlock(p, sc)
		return
	}

	p.SetUsePose(d.Pos.X, false)
	d.CanInteract = false

	sc.Env.Events.Push(stopMusic)
	sc.Env.PlaySound("door", 0.50)

	sc.transition(func() {
		d.CanInteract = true
		p.TeleportTo(d.pair.Pos.Add(geom.V(0, 1)), true, !d.Inside)
		if sc.Camera != nil {
			sc.Camera.FocusOn(p.Pos)
		}
		sc.Env.Events.Push(themeMusic)
	})
}

// unlock opens a locked door if the player carries the key. Either way the
// outcome is shown as a message.
func (d *Door) unlock(p *player.Player, sc *Scene) {
	key := "locked"
	if p.Progress().HasItem(progress.ItemKey) {
		key = "open"
		d.open = true
		p.Progress().AddToSet(progress.SetDoors, d.ID)
		sc.Env.PlaySound("open", 0.60)
	} else {
		sc.Env.PlaySound("select", 0.50)
	}

	if msg, ok := sc.lookup(key); ok {
		sc.message(msg, 0, nil)
	}
}
