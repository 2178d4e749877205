package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/geom"
	"github.com/milk9111/starseeker/interact"
	"github.com/milk9111/starseeker/levels"
	"github.com/milk9111/starseeker/object"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/projectile"
	"github.com/milk9111/starseeker/worldmap"
	"golang.org/x/image/colornames"
)

// The game has no sprite assets; everything is drawn as debug shapes.

var tileColors = map[int]color.Color{
	levels.TileSolid:         colornames.Sienna,
	levels.TilePlatform:      colornames.Peru,
	levels.TileLadder:        colornames.Goldenrod,
	levels.TileLadderTop:     colornames.Goldenrod,
	levels.TileWater:         colornames.Steelblue,
	levels.TileWaterSurface:  colornames.Lightskyblue,
	levels.TileSpikes:        colornames.Crimson,
	levels.TileWind:          colornames.Lightcyan,
	levels.TileBreakable:     colornames.Rosybrown,
	levels.TileHardBreakable: colornames.Dimgray,
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.world
	screen.Fill(colornames.Midnightblue)

	cam := w.Camera.Position()
	if w.Shake.Active() {
		m := w.Shake.Magnitude()
		cam = cam.Add(geom.V(math.Round(m*math.Sin(float64(g.frames))), 0))
	}

	g.drawStage(screen, cam)

	w.Objects.Projectiles.Each(func(pr *projectile.Projectile) {
		c := colornames.Magenta
		if pr.Friendly {
			c = colornames.White
		}
		drawObject(screen, pr, cam, c)
	})
	for _, t := range w.Objects.Targets {
		drawObject(screen, t, cam, targetColor(t))
	}
	for _, e := range w.Objects.Enemies {
		c := colornames.Orangered
		if e.Ghost() {
			c = colornames.Slategray
		}
		drawObject(screen, e, cam, c)
	}

	p := w.Player
	if p.Exist && !(p.Invulnerable() && g.frames/4%2 == 0) {
		drawObject(screen, p, cam, colornames.Deepskyblue)
	}

	g.drawHUD(screen)
	g.drawOverlays(screen)
}

func (g *Game) drawStage(screen *ebiten.Image, cam geom.Vector) {
	st := g.world.Stage
	x0 := int(math.Floor(cam.X / common.TileSize))
	y0 := int(math.Floor(cam.Y / common.TileSize))

	for y := y0; y <= y0+common.RoomTilesY; y++ {
		for x := x0; x <= x0+common.RoomTilesX; x++ {
			code := st.Tile(x, y)
			c, ok := tileColors[code]
			switch code {
			case levels.TileToggleA, levels.TileToggleB:
				c, ok = colornames.Mediumpurple, true
				if !st.IsSolid(code) {
					c = colornames.Darkslateblue
				}
			}
			if !ok {
				continue
			}
			vector.FillRect(screen,
				float32(float64(x*common.TileSize)-cam.X),
				float32(float64(y*common.TileSize)-cam.Y),
				common.TileSize, common.TileSize, c, false)
		}
	}
}

func targetColor(t interact.Target) color.Color {
	switch v := t.(type) {
	case *interact.Star:
		return colornames.Gold
	case *interact.Chest:
		if v.Opened() {
			return colornames.Saddlebrown
		}
		return colornames.Orange
	case *interact.Door:
		if v.Open() {
			return colornames.Darkgreen
		}
		return colornames.Brown
	case *interact.SavePoint:
		if v.Activated() {
			return colornames.Lime
		}
		return colornames.Green
	}
	return colornames.Limegreen
}

func drawObject(screen *ebiten.Image, o object.Object, cam geom.Vector, c color.Color) {
	b := o.Obj()
	if !b.Exist || !b.InCamera {
		return
	}
	bb := b.HitboxBB()
	if b.Dying {
		c = colornames.Lightgray
	}
	strokeBB(screen, bb, cam, c)
}

func strokeBB(screen *ebiten.Image, bb cp.BB, cam geom.Vector, c color.Color) {
	vector.StrokeRect(screen,
		float32(bb.L-cam.X), float32(bb.B-cam.Y),
		float32(bb.R-bb.L), float32(bb.T-bb.B),
		1, c, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	prog := w.Progress

	hud := fmt.Sprintf("HP %d/%d  * %d/%d",
		w.Player.Health(), w.Player.MaxHealth(),
		prog.SetLen(progress.SetStarsCollected), w.Objects.StarCount())
	if n := prog.Number(progress.NumStars, 0); n > 0 {
		hud += fmt.Sprintf("  +%d", int(n))
	}
	ebitenutil.DebugPrintAt(screen, hud, 2, 0)

	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.0f", w.Player.Mode(), ebiten.ActualFPS()), 2, 12)
	}
	if g.statusTimer > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, 2, common.ScreenHeight-16)
	}
}

func (g *Game) drawOverlays(screen *ebiten.Image) {
	w := g.world

	switch {
	case w.Map.Active():
		drawMap(screen, w.Map)
	case w.Paused:
		dim(screen, 0.5)
	case w.Ended:
		dim(screen, 0.75)
	}
	for _, ui := range g.overlays.active(w, g.hint) {
		ui.Draw(screen)
	}

	if a := w.Fade.Amount(); a > 0 {
		dim(screen, a)
	}
}

func dim(screen *ebiten.Image, amount float64) {
	alpha := uint8(math.Min(1, amount) * 255)
	vector.FillRect(screen, 0, 0, common.ScreenWidth, common.ScreenHeight,
		color.NRGBA{A: alpha}, false)
}

func drawMap(screen *ebiten.Image, m *worldmap.Map) {
	dim(screen, 0.85)

	ox := float32(common.ScreenWidth-m.Width*worldmap.CellWidth) / 2
	oy := float32(common.ScreenHeight-m.Height*worldmap.CellHeight) / 2

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			r := m.Room(x, y)
			cx := ox + float32(x*worldmap.CellWidth)
			cy := oy + float32(y*worldmap.CellHeight)
			if r.Visited {
				vector.FillRect(screen, cx, cy, worldmap.CellWidth-1, worldmap.CellHeight-1, colornames.Cornflowerblue, false)
			} else if r.Star || r.Enemy {
				vector.StrokeRect(screen, cx, cy, worldmap.CellWidth-1, worldmap.CellHeight-1, 1, colornames.Slategray, false)
			}
			if r.Star {
				vector.FillRect(screen, cx+2, cy+2, 2, 2, colornames.Gold, false)
			}
			if r.Enemy {
				vector.FillRect(screen, cx+5, cy+2, 2, 2, colornames.Red, false)
			}
		}
	}

	for _, c := range m.Connections {
		if !m.Shown(c) {
			continue
		}
		vector.StrokeLine(screen,
			ox+float32(c.X), oy+float32(c.Y), ox+float32(c.W), oy+float32(c.H),
			1, colornames.White, false)
	}

	if m.CursorVisible() {
		vector.StrokeRect(screen,
			ox+float32(m.Pos.X*worldmap.CellWidth), oy+float32(m.Pos.Y*worldmap.CellHeight),
			worldmap.CellWidth-1, worldmap.CellHeight-1, 1, colornames.Yellow, false)
	}
}
