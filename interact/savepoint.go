package interact

import (
	"log"

	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/player"
	"github.com/milk9111/starseeker/progress"
)

const (
	messageTimeMove = 12
	messageTimeWait = 45
)

// SavePoint heals the player and becomes the respawn checkpoint on touch.
// Confirming it saves the game.
type SavePoint struct {
	Trigger

	ID int

	activated    bool
	messageTimer float64
}

func NewSavePoint(x, y float64, id int) *SavePoint {
	s := &SavePoint{
		Trigger: newTrigger(x, y, true),
		ID:      id,
	}
	s.Hitbox = geom.V(16, 8)
	return s
}

func (s *SavePoint) CheckpointPos() geom.Vector { return s.Pos }

func (s *SavePoint) Activated() bool { return s.activated }

// MessageTimer is the remaining time of the "checkpoint" banner.
func (s *SavePoint) MessageTimer() float64 { return s.messageTimer }

// Activate restores an active save point quietly, as after loading.
func (s *SavePoint) Activate() {
	s.activated = true
	s.messageTimer = 0
}

func (s *SavePoint) UpdateLogic(env *object.Env) {
	if s.messageTimer > 0 {
		s.messageTimer -= env.Step
	}
}

func (s *SavePoint) OutsideCamera() {
	s.messageTimer = 0
}

func (s *SavePoint) PlayerCollision(p *player.Player, sc *Scene) bool {
	return resolve(&s.Trigger, s, p, sc)
}

// playerEvent deactivates save points that lost the checkpoint to another.
func (s *SavePoint) playerEvent(p *player.Player, sc *Scene) {
	if p.Checkpoint() != player.Checkpoint(s) {
		s.activated = false
	}
}

func (s *SavePoint) touch(p *player.Player, sc *Scene) {
	p.MaximizeHealth()
	if s.activated {
		return
	}

	s.messageTimer = messageTimeMove + messageTimeWait
	s.activated = true

	p.Progress().SetNumber(progress.NumCheckpoint, float64(s.ID))
	p.SetCheckpoint(s)

	sc.Env.PlaySound("checkpoint", 0.50)
}

func (s *SavePoint) interact(p *player.Player, sc *Scene) {
	SaveGame(sc)
	sc.Env.PlaySound("select", 0.50)
}

// SaveGame asks for confirmation, saves and reports the result in a message.
// It is a no-op when the prompt text is missing.
func SaveGame(sc *Scene) {
	text, ok := sc.lookup("saveGame")
	if !ok || sc.Host == nil {
		return
	}

	sc.message(text, 0, func() {
		key := "gameSaved"
		if err := sc.Host.Save(); err != nil {
			log.Printf("interact: save failed: %v", err)
			key = "gameSaveFailed"
		}
		result, _ := sc.lookup(key)
		sc.message(result, 0, nil)
	})
}
