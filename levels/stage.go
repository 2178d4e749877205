package levels

import (
	"math"
	"slices"

	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/geom"
)

// Tile codes of the collision layer.
const (
	TileEmpty = iota
	TileSolid
	TilePlatform
	TileLadder
	TileLadderTop
	TileWater
	TileWaterSurface
	TileSpikes
	TileWind
	TileBreakable
	TileHardBreakable
	TileToggleA
	TileToggleB
)

// Flags is the part of the progress store the stage reads.
type Flags interface {
	Bool(key string) bool
}

const flagFansEnabled = "fansEnabled"

// Stage is the collision view of a level.
type Stage struct {
	Width  int
	Height int
	// Loop wraps the world horizontally.
	Loop bool

	tiles   []int
	initial []int
	toggled bool
	flags   Flags
}

func NewStage(lvl *Level, flags Flags) *Stage {
	s := &Stage{
		Width:   lvl.Width,
		Height:  lvl.Height,
		Loop:    lvl.Loop,
		tiles:   slices.Clone(lvl.Layers[0]),
		initial: slices.Clone(lvl.Layers[0]),
		flags:   flags,
	}
	return s
}

func (s *Stage) PixelWidth() float64 {
	return float64(s.Width * common.TileSize)
}

func (s *Stage) PixelHeight() float64 {
	return float64(s.Height * common.TileSize)
}

// RoomsX is the number of rooms per row, used to index rooms.
func (s *Stage) RoomsX() int {
	return s.Width / common.RoomTilesX
}

func (s *Stage) RoomsY() int {
	return s.Height / common.RoomTilesY
}

// Tile returns the code at (x, y). Out of range rows are empty; out of range
// columns wrap on looping stages and are solid otherwise.
func (s *Stage) Tile(x, y int) int {
	if y < 0 || y >= s.Height {
		return TileEmpty
	}
	if x < 0 || x >= s.Width {
		if !s.Loop {
			return TileSolid
		}
		x = common.NegModInt(x, s.Width)
	}
	return s.tiles[y*s.Width+x]
}

func (s *Stage) setTile(x, y, v int) {
	if y < 0 || y >= s.Height {
		return
	}
	if s.Loop {
		x = common.NegModInt(x, s.Width)
	}
	if x < 0 || x >= s.Width {
		return
	}
	s.tiles[y*s.Width+x] = v
}

// IsSolid reports whether code blocks movement from every side.
func (s *Stage) IsSolid(code int) bool {
	switch code {
	case TileSolid, TileBreakable, TileHardBreakable:
		return true
	case TileToggleA:
		return !s.toggled
	case TileToggleB:
		return s.toggled
	}
	return false
}

func (s *Stage) solidAt(x, y int) bool {
	return s.IsSolid(s.Tile(x, y))
}

// ToggleSpecialBlocks swaps which toggle block group is solid.
func (s *Stage) ToggleSpecialBlocks() {
	s.toggled = !s.toggled
}

func (s *Stage) Toggled() bool {
	return s.toggled
}

func (s *Stage) fansEnabled() bool {
	return s.flags != nil && s.flags.Bool(flagFansEnabled)
}

// Reset restores broken tiles and the toggle state.
func (s *Stage) Reset() {
	copy(s.tiles, s.initial)
	s.toggled = false
}

// TileAt converts a pixel position to tile coordinates.
func TileAt(p geom.Vector) (int, int) {
	return floorDiv(p.X), floorDiv(p.Y)
}

func floorDiv(v float64) int {
	return int(math.Floor(v / common.TileSize))
}
