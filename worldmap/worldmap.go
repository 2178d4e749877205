// Package worldmap builds the pause-screen overview of visited rooms, what is
// left in them and the door connections between them.
package worldmap

import (
	"math"

	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/progress"
)

// Size of one room on the map, in map pixels.
const (
	CellWidth  = 10
	CellHeight = 9
)

const flickerSpeed = 1.0 / 60.0

// Source answers what is inside a world-space area.
type Source interface {
	HasStarInArea(x, y, w, h float64) bool
	HasEnemyInArea(x, y, w, h float64) bool
	// DoorConnectionInArea returns the map-space line from a door in the area
	// to its pair.
	DoorConnectionInArea(x, y, w, h float64) (geom.Rect, bool)
}

type Room struct {
	Visited bool
	Star    bool
	Enemy   bool
}

type Map struct {
	Width  int
	Height int

	Rooms       []Room
	Connections []geom.Rect

	// Pos is the room the player is in.
	Pos geom.Vector

	active  bool
	flicker float64
}

// New sizes the map for a stage of the given size in tiles.
func New(tilesX, tilesY int) *Map {
	w := tilesX / common.RoomTilesX
	h := tilesY / common.RoomTilesY
	return &Map{
		Width:  w,
		Height: h,
		Rooms:  make([]Room, w*h),
	}
}

// Activate gathers the rooms the player may see: visited ones, or all of them
// once the map item is owned.
func (m *Map) Activate(src Source, prog *progress.Manager, room geom.Vector) {
	m.Pos = room
	m.Connections = m.Connections[:0]

	showAll := prog.HasItem(progress.ItemMap)
	for i := range m.Rooms {
		r := &m.Rooms[i]
		r.Visited = prog.Contains(progress.SetRoomVisited, i)
		if !r.Visited && !showAll {
			*r = Room{}
			continue
		}

		x := float64(i%m.Width) * common.ScreenWidth
		y := float64(i/m.Width) * common.ScreenHeight
		r.Star = src.HasStarInArea(x, y, common.ScreenWidth, common.ScreenHeight)
		r.Enemy = src.HasEnemyInArea(x, y, common.ScreenWidth, common.ScreenHeight)
		if c, ok := src.DoorConnectionInArea(x, y, common.ScreenWidth, common.ScreenHeight); ok {
			m.Connections = append(m.Connections, c)
		}
	}
	m.Connections = RemoveDuplicateConnections(m.Connections)

	m.active = true
	m.flicker = 0
}

func (m *Map) Active() bool { return m.active }

// Update closes the map on any button press. It returns false once closed.
func (m *Map) Update(anyPressed bool, step float64) bool {
	if !m.active {
		return false
	}
	if anyPressed {
		m.active = false
		return false
	}
	m.flicker = math.Mod(m.flicker+flickerSpeed*step, 1)
	return true
}

// CursorVisible blinks the current-room marker.
func (m *Map) CursorVisible() bool {
	return m.flicker < 0.5
}

func (m *Map) Room(x, y int) Room {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return Room{}
	}
	return m.Rooms[y*m.Width+x]
}

// Shown reports whether a connection touches a visited room.
func (m *Map) Shown(c geom.Rect) bool {
	cell := func(x, y float64) Room {
		return m.Room(int(x/CellWidth), int(y/CellHeight))
	}
	return cell(c.X, c.Y).Visited || cell(c.W, c.H).Visited
}

// RemoveDuplicateConnections drops every connection that repeats an earlier
// one, from either end. The result reuses conns.
func RemoveDuplicateConnections(conns []geom.Rect) []geom.Rect {
	out := conns[:0]
	for _, c := range conns {
		dup := false
		for _, kept := range out {
			if kept.Same(c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

// CellCenter is the middle of a room on the map.
func CellCenter(roomX, roomY int) geom.Vector {
	return geom.V(
		float64(roomX*CellWidth)+CellWidth/2,
		float64(roomY*CellHeight)+math.Floor(CellHeight/2))
}
