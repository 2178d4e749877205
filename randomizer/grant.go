package randomizer

import (
	"log"

	"github.com/milk9111/starseeker/progress"
)

// Item ids sent by the server.
const (
	ItemEquipmentFirst = 1
	ItemEquipmentLast  = ItemEquipmentFirst + progress.ItemCount - 1
	ItemStar           = 20
	ItemFans           = 21
)

// Batch is a run of received items starting at Index in the server's list of
// everything this slot has received.
type Batch struct {
	Index int
	Items []int
}

// Grant applies one item to prog. Unknown ids are ignored.
func Grant(prog *progress.Manager, item int) bool {
	switch {
	case item >= ItemEquipmentFirst && item <= ItemEquipmentLast:
		prog.AddToSet(progress.SetItems, item-ItemEquipmentFirst)
	case item == ItemStar:
		prog.AddNumber(progress.NumStars, 1)
	case item == ItemFans:
		prog.SetBool(progress.BoolFansEnabled, true)
	default:
		log.Printf("randomizer: ignoring unknown item %d", item)
		return false
	}
	return true
}

// Apply grants the items of b that prog has not seen yet. The server replays
// the whole list on every connect, so progress remembers how many items it
// has applied and skips the rest. It returns the number of new items.
func Apply(prog *progress.Manager, b Batch) int {
	received := int(prog.Number(progress.NumReceivedItems, 0))
	if b.Index > received {
		// A gap means a batch went missing; the next full replay fills it.
		log.Printf("randomizer: item batch at %d skips past %d", b.Index, received)
		return 0
	}

	n := 0
	for i, item := range b.Items {
		if b.Index+i < received {
			continue
		}
		Grant(prog, item)
		n++
	}
	if end := b.Index + len(b.Items); end > received {
		prog.SetNumber(progress.NumReceivedItems, float64(end))
	}
	return n
}
