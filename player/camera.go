package player

import (
	"github.com/milk9111/starseeker/camera"
	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/progress"
)

const (
	cameraMoveSpeed  = 1.0 / 20.0
	cameraCarrySpeed = 12.0
)

// CameraEvent scrolls the camera one room when the player reaches a viewport
// edge and marks the room being entered as visited. Horizontal scrolling is
// disabled in the looping final area.
func (p *Player) CameraEvent(cam *camera.Camera, roomsX int) {
	const (
		hitRangeX      = 4
		hitRangeY      = 4
		topExtraMargin = 1
	)

	if cam.IsMoving() {
		return
	}

	v := cam.Position()
	x1, y1 := v.X, v.Y
	x2, y2 := x1+cam.Width, y1+cam.Height

	extra := float64(topExtraMargin)
	if p.mode == ModeClimb {
		extra = 0
	}

	dirx, diry := 0, 0
	switch {
	case p.Pos.X-hitRangeX < x1:
		dirx = -1
	case p.Pos.X+hitRangeX > x2:
		dirx = 1
	case p.Pos.Y-hitRangeY+extra < y1 && p.mode != ModeDownAttack:
		diry = -1
	case p.Pos.Y+hitRangeY > y2:
		diry = 1
	}
	if p.FinalArea {
		dirx = 0
	}
	if dirx == 0 && diry == 0 {
		return
	}

	room := cam.RoomPosition()
	if cam.Move(dirx, diry, cameraMoveSpeed) {
		p.markRoomVisited(int(room.X)+dirx, int(room.Y)+diry, roomsX)
	}
}

// CameraMovement carries the player along while the camera scrolls.
func (p *Player) CameraMovement(cam *camera.Camera, env *object.Env) {
	speed := cameraCarrySpeed * cam.Speed()
	dir := cam.Direction()
	p.Pos.X += speed * dir.X * env.Step
	p.Pos.Y += speed * dir.Y * env.Step
}

// StageEvent marks the room the player teleported into.
func (p *Player) StageEvent(cam *camera.Camera, roomsX int) {
	if !p.teleported {
		return
	}
	room := cam.RoomPosition()
	p.markRoomVisited(int(room.X), int(room.Y), roomsX)
	p.teleported = false
}

func (p *Player) markRoomVisited(x, y, roomsX int) {
	if p.progress == nil || roomsX <= 0 {
		return
	}
	x = common.NegModInt(x, roomsX)
	p.progress.AddToSet(progress.SetRoomVisited, y*roomsX+x)
}

// CheckLoop wraps the player around a looping world.
func (p *Player) CheckLoop(worldWidth float64) {
	p.Pos.X = common.NegMod(p.Pos.X, worldWidth)
}
