package interact

import (
	"strconv"

	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
)

type NPC struct {
	Trigger

	ID       int
	FaceLeft bool
}

func NewNPC(x, y float64, id int) *NPC {
	n := &NPC{
		Trigger: newTrigger(x, y, true),
		ID:      id,
	}
	n.Hitbox = geom.V(12, 8)
	return n
}

func (n *NPC) PlayerCollision(p *player.Player, sc *Scene) bool {
	return resolve(&n.Trigger, n, p, sc)
}

func (n *NPC) playerEvent(p *player.Player, sc *Scene) {
	n.FaceLeft = p.Pos.X < n.Pos.X
}

func (n *NPC) interact(p *player.Player, sc *Scene) {
	text, ok := sc.lookup("npc", strconv.Itoa(n.ID))
	if !ok {
		return
	}
	sc.message(text, 0, nil)
	sc.Env.PlaySound("select", 0.50)
}

// HintTrigger shows its hint the first time it scrolls into view, then stops
// existing.
type HintTrigger struct {
	Trigger

	ID int
}

func NewHintTrigger(x, y float64, id int) *HintTrigger {
	h := &HintTrigger{
		Trigger: newTrigger(x, y, false),
		ID:      id,
	}
	h.CanInteract = false
	return h
}

func (h *HintTrigger) UpdateLogic(env *object.Env) {
	h.Exist = false
	env.Events.Push(event.Event{
		Kind: event.KindHint,
		Name: strconv.Itoa(h.ID),
		Data: h.ID,
	})
}

func (h *HintTrigger) PlayerCollision(p *player.Player, sc *Scene) bool {
	return false
}
