package world

import (
	"log"
	"strings"

	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/enemy"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/interact"
	"github.com/milk9111/starseeker/levels"
	"github.com/milk9111/starseeker/progress"
)

// entityPos is the center of the entity's tile.
func entityPos(e levels.Entity) (float64, float64) {
	return float64(e.X*common.TileSize) + common.TileSize/2,
		float64(e.Y*common.TileSize) + common.TileSize/2
}

// spawnEntities creates every placed object. A star or enemy takes its "id"
// prop as its identity in progress and in location checks. Without one it is
// numbered per type in placement order, which is only unique within a level.
func (o *Objects) spawnEntities(entities []levels.Entity, deps enemy.Deps, prog *progress.Manager) {
	var enemyID, starID, saveID int

	for _, pe := range entities {
		x, y := entityPos(pe)

		switch strings.ToLower(strings.TrimSpace(pe.Type)) {
		case "player":
			o.PlayerStart = geom.V(x, y)
			o.PlayerInside = pe.PropBool("inside")
		case "enemy":
			o.Enemies = append(o.Enemies, enemy.New(pe.PropInt("species", 0), x, y, pe.PropInt("id", enemyID), deps))
			enemyID++
		case "star":
			s := interact.NewStar(x, y, pe.PropInt("id", starID))
			o.Stars = append(o.Stars, s)
			o.add(s)
			starID++
		case "chest":
			c := interact.NewChest(x, y, pe.PropInt("id", 0))
			o.Chests = append(o.Chests, c)
			o.add(c)
		case "savepoint":
			s := interact.NewSavePoint(x, y, pe.PropInt("id", saveID))
			o.SavePoints = append(o.SavePoints, s)
			o.add(s)
			saveID++
		case "lever":
			l := interact.NewLever(x, y)
			o.Levers = append(o.Levers, l)
			o.add(l)
		case "switch":
			s := interact.NewSwitch(x, y)
			o.Switches = append(o.Switches, s)
			o.add(s)
		case "door":
			d := interact.NewDoor(x, y, pe.PropInt("id", 0), pe.PropBool("inside"))
			o.Doors = append(o.Doors, d)
			o.add(d)
		case "npc":
			o.add(interact.NewNPC(x, y, pe.PropInt("id", 0)))
		case "hint":
			o.add(interact.NewHintTrigger(x, y, pe.PropInt("id", 0)))
		case "orb":
			orb := interact.NewOrb(x, y, pe.PropInt("id", 0))
			o.Orbs = append(o.Orbs, orb)
			o.add(orb)
		case "portal":
			o.add(interact.NewPortal(x, y, prog))
		case "giantchest":
			o.add(interact.NewGiantChest(x, y))
		default:
			log.Printf("world: unknown entity type %q at %d,%d", pe.Type, pe.X, pe.Y)
		}
	}

	interact.PairDoors(o.Doors)
}

func (o *Objects) add(t interact.Target) {
	o.Targets = append(o.Targets, t)
}
