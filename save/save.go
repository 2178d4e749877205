// Package save writes the progress store to a yaml file.
package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/milk9111/starseeker/progress"
	"gopkg.in/yaml.v3"
)

const Version = 1

var (
	ErrNoSave  = errors.New("save: no save file")
	ErrVersion = errors.New("save: unsupported version")
)

type File struct {
	Version  int               `yaml:"version"`
	SavedAt  time.Time         `yaml:"saved_at"`
	Progress progress.Snapshot `yaml:"progress"`
}

// Write stores prog at path. The file is replaced atomically so a failed
// write keeps the previous save.
func Write(path string, prog *progress.Manager) error {
	data, err := yaml.Marshal(File{
		Version:  Version,
		SavedAt:  time.Now().UTC(),
		Progress: prog.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save: write: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Read loads the save at path. A missing file is ErrNoSave.
func Read(path string) (File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return File{}, ErrNoSave
	}
	if err != nil {
		return File{}, fmt.Errorf("save: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("save: decode %s: %w", path, err)
	}
	if f.Version != Version {
		return File{}, fmt.Errorf("%w: %d", ErrVersion, f.Version)
	}
	return f, nil
}

// Load restores prog from path.
func Load(path string, prog *progress.Manager) error {
	f, err := Read(path)
	if err != nil {
		return err
	}
	prog.Restore(f.Progress)
	return nil
}
