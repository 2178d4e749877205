package randomizer

import "github.com/milk9111/starseeker/progress"

// Location ids are offset per object kind so stars, enemies and chests share
// one id space on the server.
const (
	ChestLocationOffset = 1
	StarLocationOffset  = 15
	EnemyLocationOffset = 114
)

// Checker is told about locations the player has just cleared. CheckLocation
// must not block the tick.
type Checker interface {
	CheckLocation(id int)
}

func StarLocation(entityID int) int  { return entityID + StarLocationOffset }
func EnemyLocation(entityID int) int { return entityID + EnemyLocationOffset }
func ChestLocation(chestID int) int  { return chestID + ChestLocationOffset }

// Check notifies c if it is set.
func Check(c Checker, id int) {
	if c != nil {
		c.CheckLocation(id)
	}
}

// KnownLocations lists every location already cleared in prog, for
// resynchronizing after a (re)connect.
func KnownLocations(prog *progress.Manager) []int {
	var out []int
	for _, id := range prog.Values(progress.SetOpenChests) {
		out = append(out, ChestLocation(id))
	}
	for _, id := range prog.Values(progress.SetStarsCollected) {
		out = append(out, StarLocation(id))
	}
	for _, id := range prog.Values(progress.SetEnemiesKilled) {
		out = append(out, EnemyLocation(id))
	}
	return out
}
