package prefabs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadSettle = 100 * time.Millisecond

// Reload carries the tuning file that changed, decoded over the defaults.
// Exactly one of Player and Enemies is set.
type Reload struct {
	File    string
	Player  *PlayerSpec
	Enemies *EnemySpec
}

// SpecWatcher reloads player.yaml and enemies.yaml when they change in the
// watched directories. Other files are ignored.
type SpecWatcher struct {
	fs      *fsnotify.Watcher
	reloads chan Reload
	errs    chan error
	stop    chan struct{}
	once    sync.Once
}

func WatchSpecs(dirs ...string) (*SpecWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: watch: %w", err)
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
		}
	}

	w := &SpecWatcher{
		fs:      fs,
		reloads: make(chan Reload, 4),
		errs:    make(chan error, 1),
		stop:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Reloads is closed once the watcher stops.
func (w *SpecWatcher) Reloads() <-chan Reload { return w.reloads }

// Errors is closed once the watcher stops. Errors are dropped while one is
// already pending.
func (w *SpecWatcher) Errors() <-chan error { return w.errs }

func (w *SpecWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
	})
	return err
}

// loop reloads a file once no event has touched any tuning file for
// reloadSettle.
func (w *SpecWatcher) loop() {
	defer close(w.errs)
	defer close(w.reloads)

	pending := make(map[string]string)
	var settle <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			if file := SpecFor(ev.Name); file != "" {
				pending[file] = ev.Name
				settle = time.After(reloadSettle)
			}
		case <-settle:
			settle = nil
			for file, path := range pending {
				delete(pending, file)
				r, err := readSpec(path, file)
				if err != nil {
					w.report(err)
					continue
				}
				select {
				case w.reloads <- r:
				case <-w.stop:
					return
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.stop:
			return
		}
	}
}

func (w *SpecWatcher) report(err error) {
	select {
	case w.errs <- err:
	default:
	}
}

// readSpec decodes the changed file. A file that is gone falls back to the
// regular lookup, so deleting an override restores the embedded tuning.
func readSpec(path, file string) (Reload, error) {
	r := Reload{File: file}
	data, err := os.ReadFile(path)
	switch file {
	case PlayerFile:
		spec, err := decodeOrLoad(file, data, err, DefaultPlayerSpec())
		if err != nil {
			return r, err
		}
		r.Player = &spec
	case EnemiesFile:
		spec, err := decodeOrLoad(file, data, err, DefaultEnemySpec())
		if err != nil {
			return r, err
		}
		r.Enemies = &spec
	}
	return r, nil
}

func decodeOrLoad[T any](file string, data []byte, readErr error, def T) (T, error) {
	if readErr != nil {
		return LoadSpec(file, def)
	}
	return decodeSpec(file, data, def)
}

// SpecFor maps a path to the tuning file it overrides, or "" when the path
// is not one.
func SpecFor(path string) string {
	switch base := filepath.Base(path); base {
	case PlayerFile, EnemiesFile:
		return base
	}
	return ""
}
