package interact

import (
	"math"

	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/randomizer"
)

const (
	starDeathTime = 20
	starWaveSpeed = 0.1
)

// Star is collected by touching it.
type Star struct {
	Trigger

	EntityID int

	wave       float64
	deathTimer float64
}

func NewStar(x, y float64, entityID int) *Star {
	s := &Star{
		Trigger:  newTrigger(x, y, false),
		EntityID: entityID,
	}
	s.Hitbox = geom.V(12, 12)
	return s
}

// Wave is the bobbing phase used when drawing.
func (s *Star) Wave() float64 { return s.wave }

func (s *Star) UpdateLogic(env *object.Env) {
	s.wave = math.Mod(s.wave+starWaveSpeed*env.Step, math.Pi*2)
}

func (s *Star) PlayerCollision(p *player.Player, sc *Scene) bool {
	return resolve(&s.Trigger, s, p, sc)
}

// touch collects the star. The local record is written first, so the star
// counts even when nothing is listening for the location.
func (s *Star) touch(p *player.Player, sc *Scene) {
	s.Dying = true
	s.deathTimer = starDeathTime
	s.wave = 0

	if p.Progress().AddToSet(progress.SetStarsCollected, s.EntityID) {
		randomizer.Check(sc.Checks, randomizer.StarLocation(s.EntityID))
	}
	sc.Env.PlaySound("star", 0.50)
}

func (s *Star) Die(env *object.Env) bool {
	s.deathTimer -= env.Step
	return s.deathTimer <= 0
}
