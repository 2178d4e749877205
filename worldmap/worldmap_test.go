package worldmap

import (
	"testing"

	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveDuplicateConnections(t *testing.T) {
	cases := []struct {
		name string
		in   []geom.Rect
		want []geom.Rect
	}{
		{
			name: "opposite ends",
			in:   []geom.Rect{geom.NewRect(10, 20, 50, 60), geom.NewRect(50, 60, 10, 20)},
			want: []geom.Rect{geom.NewRect(10, 20, 50, 60)},
		},
		{
			name: "repeated",
			in:   []geom.Rect{geom.NewRect(1, 2, 3, 4), geom.NewRect(1, 2, 3, 4), geom.NewRect(3, 4, 1, 2)},
			want: []geom.Rect{geom.NewRect(1, 2, 3, 4)},
		},
		{
			name: "distinct",
			in:   []geom.Rect{geom.NewRect(1, 2, 3, 4), geom.NewRect(1, 2, 3, 5)},
			want: []geom.Rect{geom.NewRect(1, 2, 3, 4), geom.NewRect(1, 2, 3, 5)},
		},
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RemoveDuplicateConnections(c.in)
			if c.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, c.want, got)
		})
	}
}

type source struct {
	stars map[int]bool
	doors map[int]geom.Rect
}

func roomIndex(x, y float64) int {
	return int(y/common.ScreenHeight)*3 + int(x/common.ScreenWidth)
}

func (s source) HasStarInArea(x, y, w, h float64) bool  { return s.stars[roomIndex(x, y)] }
func (s source) HasEnemyInArea(x, y, w, h float64) bool { return false }
func (s source) DoorConnectionInArea(x, y, w, h float64) (geom.Rect, bool) {
	c, ok := s.doors[roomIndex(x, y)]
	return c, ok
}

func TestActivateShowsVisitedRooms(t *testing.T) {
	a, b := CellCenter(0, 0), CellCenter(2, 1)
	src := source{
		stars: map[int]bool{0: true, 5: true},
		doors: map[int]geom.Rect{
			0: geom.NewRect(a.X, a.Y, b.X, b.Y),
			5: geom.NewRect(b.X, b.Y, a.X, a.Y),
		},
	}

	m := New(3*common.RoomTilesX, 2*common.RoomTilesY)
	require.Equal(t, 3, m.Width)
	require.Equal(t, 2, m.Height)

	prog := progress.NewManager()
	prog.AddToSet(progress.SetRoomVisited, 0)

	m.Activate(src, prog, geom.V(0, 0))
	assert.True(t, m.Active())
	assert.Equal(t, Room{Visited: true, Star: true}, m.Room(0, 0))
	assert.Equal(t, Room{}, m.Room(2, 1), "unvisited rooms stay blank")
	assert.Len(t, m.Connections, 1)
	assert.True(t, m.Shown(m.Connections[0]))

	prog.AddToSet(progress.SetItems, progress.ItemMap)
	m.Activate(src, prog, geom.V(0, 0))
	assert.Equal(t, Room{Star: true}, m.Room(2, 1))
	assert.Len(t, m.Connections, 1, "both ends describe one connection")
}

func TestUpdateClosesOnPress(t *testing.T) {
	m := New(common.RoomTilesX, common.RoomTilesY)
	assert.False(t, m.Update(false, 1))

	m.Activate(source{}, progress.NewManager(), geom.V(0, 0))
	assert.True(t, m.CursorVisible())
	for i := 0; i < 40; i++ {
		require.True(t, m.Update(false, 1))
	}
	assert.False(t, m.CursorVisible())

	assert.False(t, m.Update(true, 1))
	assert.False(t, m.Active())
	assert.Equal(t, Room{}, m.Room(-1, 0))
}
