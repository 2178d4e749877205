package main

import (
	"testing"

	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/levels"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigOverrides(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("", true, "final")
	assert.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "final", cfg.Level)
}

func overlayWorld() *world.World {
	w, h := common.RoomTilesX, common.RoomTilesY
	lvl := &levels.Level{
		Width:    w,
		Height:   h,
		Layers:   [][]int{make([]int, w*h)},
		Entities: []levels.Entity{{Type: "player", X: 2, Y: 2}},
	}
	return world.NewFromLevel(lvl, progress.NewManager(), false, world.Options{
		PlayerSpec: prefabs.DefaultPlayerSpec(),
		EnemySpec:  prefabs.DefaultEnemySpec(),
	})
}

func TestOverlaysFollowWorldState(t *testing.T) {
	resumed := false
	o := newOverlays(func() { resumed = true })
	w := overlayWorld()

	assert.Empty(t, o.active(w, nil))

	w.Paused = true
	got := o.active(w, nil)
	require.Len(t, got, 1)
	assert.Same(t, o.pause, got[0])

	w.Paused = false
	w.Ended = true
	got = o.active(w, nil)
	require.Len(t, got, 1)
	assert.Same(t, o.ending, got[0])

	w.Ended = false
	w.Message([]string{"hello", "there"}, 0, nil)
	got = o.active(w, []string{"ignored"})
	require.Len(t, got, 1, "the dialog replaces the hint")
	assert.Same(t, o.dialog.ui, got[0])
	assert.Equal(t, "hello\nthere", o.dialog.text.Label)

	assert.False(t, resumed)
}

func TestHintOverlay(t *testing.T) {
	o := newOverlays(func() {})
	w := overlayWorld()

	got := o.active(w, []string{"press C"})
	require.Len(t, got, 1)
	assert.Same(t, o.hint.ui, got[0])
	assert.Equal(t, "press C", o.hint.text.Label)

	w.ActivateMap()
	require.True(t, w.Map.Active())
	assert.Empty(t, o.active(w, []string{"press C"}), "the map hides hints")
}
