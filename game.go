package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/starseeker/common"
	"github.com/milk9111/starseeker/config"
	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/input"
	"github.com/milk9111/starseeker/locale"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/session"
	"github.com/milk9111/starseeker/world"
)

const statusTime = 180

type Game struct {
	cfg config.Config

	sess     *session.Session
	world    *world.World
	texts    *locale.Table
	tracker  input.Tracker
	watcher  *prefabs.SpecWatcher
	overlays *overlays

	frames int

	status      string
	statusTimer int
	hint        []string
}

func NewGame(cfg config.Config, allItems bool) (*Game, error) {
	sess, err := session.Open(context.Background(), cfg, allItems)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		sess:  sess,
		world: sess.World,
		texts: sess.Texts,
	}
	g.overlays = newOverlays(func() { g.world.Paused = false })

	if cfg.Debug {
		w, err := prefabs.WatchSpecs("prefabs")
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}

	g.reloadSpecs()
	g.checkLink()

	raw := pollInput()
	for i := 0; i <= g.cfg.FrameSkip; i++ {
		snap := g.tracker.Next(raw)
		g.world.Update(&snap, 1)
	}
	g.handleEvents()

	for _, ui := range g.overlays.active(g.world, g.hint) {
		ui.Update()
	}

	if g.statusTimer > 0 {
		g.statusTimer--
	}
	return nil
}

func (g *Game) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	g.statusTimer = statusTime
}

func (g *Game) handleEvents() {
	for _, evt := range g.world.Events.Drain() {
		switch evt.Kind {
		case event.KindSound, event.KindMusic:
			if g.cfg.Debug {
				log.Printf("%s: %s", evt.Kind, evt.Name)
			}
		case event.KindHint:
			if lines, ok := g.texts.Lookup("hints", evt.Name); ok {
				g.hint = lines
			}
		case event.KindSaved:
			g.setStatus("saved")
		case event.KindEnding:
			log.Printf("ending reached: %d stars", g.world.Progress.SetLen(progress.SetStarsCollected))
		case event.KindNetwork:
			switch evt.Name {
			case "items":
				g.setStatus("received %v item(s)", evt.Data)
			case "error":
				g.setStatus("network error")
			}
		}
	}
}

func (g *Game) checkLink() {
	link := g.sess.Link
	if link == nil {
		return
	}
	select {
	case <-link.Done():
		log.Printf("randomizer: disconnected")
		g.setStatus("disconnected")
		g.sess.Link = nil
	default:
	}
}

// reloadSpecs applies tuning files the watcher reloaded.
func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case r, ok := <-g.watcher.Reloads():
			if !ok {
				g.watcher = nil
				return
			}
			g.sess.Apply(r)
			log.Printf("prefabs: reloaded %s", r.File)
		case err, ok := <-g.watcher.Errors():
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.sess.Close()
}
