package world

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/starseeker/enemy"
	"github.com/milk9111/starseeker/levels"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/randomizer"
)

var ErrDuplicateLocation = errors.New("world: duplicate location")

// Locations lists the randomizer locations of every star, enemy and chest,
// sorted.
func (o *Objects) Locations() []int {
	var ids []int
	for _, s := range o.Stars {
		ids = append(ids, randomizer.StarLocation(s.EntityID))
	}
	for _, e := range o.Enemies {
		ids = append(ids, randomizer.EnemyLocation(e.EntityID))
	}
	for _, c := range o.Chests {
		ids = append(ids, randomizer.ChestLocation(c.ID))
	}
	sort.Ints(ids)
	return ids
}

// AreaLocations spawns lvl on its own and lists its locations.
func AreaLocations(lvl *levels.Level) []int {
	o := newObjects()
	o.spawnEntities(lvl.Entities, enemy.Deps{
		Spec:        prefabs.DefaultEnemySpec(),
		Projectiles: o.Projectiles,
	}, progress.NewManager())
	return o.Locations()
}

// CheckLocations reports the first location placed twice, within one level
// or across levels. Progress is shared by every area, so a reused identity
// would hide or ghost objects it does not belong to.
func CheckLocations(lvls ...*levels.Level) error {
	seen := make(map[int]int)
	for i, lvl := range lvls {
		for _, id := range AreaLocations(lvl) {
			if prev, ok := seen[id]; ok {
				return fmt.Errorf("%w %d in levels %d and %d", ErrDuplicateLocation, id, prev, i)
			}
			seen[id] = i
		}
	}
	return nil
}
