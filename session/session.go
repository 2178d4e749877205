// Package session assembles a playable game from the config: progress from
// the save file, texts, tuning, the randomizer link and the starting area.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/milk9111/starseeker/config"
	"github.com/milk9111/starseeker/event"
	"github.com/milk9111/starseeker/levels"
	"github.com/milk9111/starseeker/locale"
	"github.com/milk9111/starseeker/prefabs"
	"github.com/milk9111/starseeker/progress"
	"github.com/milk9111/starseeker/randomizer"
	"github.com/milk9111/starseeker/save"
	"github.com/milk9111/starseeker/world"
)

const dialTimeout = 10 * time.Second

type Session struct {
	World *world.World
	Texts *locale.Table

	PlayerSpec prefabs.PlayerSpec
	EnemySpec  prefabs.EnemySpec

	// Link is nil when no server is configured or the connection failed.
	Link *randomizer.Client
	// LinkErr is why the configured server could not be reached.
	LinkErr error
}

// Open builds the session. A randomizer that cannot be reached is not fatal:
// the game starts offline and the failure is queued as a network error
// event. Locations checked offline stay in progress and are sent as known
// locations by the next session that connects.
func Open(ctx context.Context, cfg config.Config, allItems bool) (*Session, error) {
	prog := progress.NewManager()
	if err := save.Load(cfg.SavePath, prog); err != nil && !errors.Is(err, save.ErrNoSave) {
		return nil, err
	}
	if allItems {
		for i := 0; i < progress.ItemCount; i++ {
			prog.AddToSet(progress.SetItems, i)
		}
	}

	texts, err := locale.Load(locale.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	s := &Session{Texts: texts}
	s.PlayerSpec, s.EnemySpec = LoadSpecs()

	lvl, err := levels.LoadLevelFromFS(LevelFile(cfg))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", LevelFile(cfg), err)
	}

	opts := world.Options{
		PlayerSpec: s.PlayerSpec,
		EnemySpec:  s.EnemySpec,
		Texts:      texts,
		Save: func(p *progress.Manager) error {
			return save.Write(cfg.SavePath, p)
		},
	}

	if cfg.Randomizer.Enabled() {
		s.Link, s.LinkErr = dial(ctx, cfg.Randomizer, prog)
		if s.Link != nil {
			opts.Link = s.Link
		}
	}

	s.World = world.NewFromLevel(lvl, prog, cfg.FinalArea, opts)
	if s.LinkErr != nil {
		s.World.Events.Push(event.Event{Kind: event.KindNetwork, Name: "error", Data: s.LinkErr})
	}
	return s, nil
}

func dial(ctx context.Context, rc config.RandomizerConfig, prog *progress.Manager) (*randomizer.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	link, err := randomizer.Dial(ctx, randomizer.Config{
		Address:  rc.Address,
		Slot:     rc.Slot,
		Password: rc.Password,
	}, randomizer.KnownLocations(prog))
	if err != nil {
		log.Printf("randomizer: playing offline: %v", err)
		return nil, err
	}
	log.Printf("randomizer: connected as %s (session %s)", rc.Slot, link.Session())
	return link, nil
}

// LoadSpecs reads the tuning files, keeping the defaults for any that fail.
func LoadSpecs() (prefabs.PlayerSpec, prefabs.EnemySpec) {
	ps, es := prefabs.DefaultPlayerSpec(), prefabs.DefaultEnemySpec()
	if spec, err := prefabs.LoadPlayerSpec(); err != nil {
		log.Printf("prefabs: %v", err)
	} else {
		ps = *spec
	}
	if spec, err := prefabs.LoadEnemySpec(); err != nil {
		log.Printf("prefabs: %v", err)
	} else {
		es = *spec
	}
	return ps, es
}

// Apply swaps in a reloaded tuning file.
func (s *Session) Apply(r prefabs.Reload) {
	if r.Player != nil {
		s.PlayerSpec = *r.Player
	}
	if r.Enemies != nil {
		s.EnemySpec = *r.Enemies
	}
	s.World.ApplySpecs(s.PlayerSpec, s.EnemySpec)
}

// LevelFile is the embedded level the session starts in.
func LevelFile(cfg config.Config) string {
	if cfg.FinalArea {
		return levels.FinalArea
	}
	name := cfg.Level
	if name == "" {
		return levels.NormalArea
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}

func (s *Session) Close() {
	if s.Link != nil {
		_ = s.Link.Close()
		s.Link = nil
	}
}
