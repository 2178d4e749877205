package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

const (
	NormalArea = "island.json"
	FinalArea  = "final.json"
)

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is the on-disk level format. Layer 0 holds tile codes for collision;
// further layers are decoration and are ignored by the simulation.
type Level struct {
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Layers   [][]int     `json:"layers"`
	Loop     bool        `json:"loop,omitempty"`
	Entities []Entity    `json:"entities,omitempty"`
	Meta     []LayerMeta `json:"layer_meta,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

// Entity is a placed object, in tile coordinates.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// PropInt reads a numeric property. JSON numbers decode as float64.
func (e Entity) PropInt(key string, def int) int {
	v, ok := e.Props[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(math.Round(n))
	case int:
		return n
	}
	return def
}

func (e Entity) PropBool(key string) bool {
	v, ok := e.Props[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func LoadLevelFromFS(name string) (*Level, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseLevel(data)
}

func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLevel, lvl.Width, lvl.Height)
	}
	if len(lvl.Layers) == 0 || len(lvl.Layers[0]) != lvl.Width*lvl.Height {
		return nil, fmt.Errorf("%w: collision layer size mismatch", ErrInvalidLevel)
	}
	return &lvl, nil
}
