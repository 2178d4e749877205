// Package locale holds the in-game text. Entries are yaml maps and lists;
// a key path walks maps by name and lists by index.
package locale

import (
	"embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var localeFS embed.FS

const DefaultLanguage = "en"

type Table struct {
	root map[string]any
}

// Load parses the embedded table for lang.
func Load(lang string) (*Table, error) {
	data, err := localeFS.ReadFile(lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("locale: %s: %w", lang, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Table, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("locale: decode: %w", err)
	}
	return &Table{root: root}, nil
}

// Lookup returns the lines at the key path. A string is one line, a list of
// strings is several. Missing keys report false.
func (t *Table) Lookup(key ...string) ([]string, bool) {
	if t == nil || len(key) == 0 {
		return nil, false
	}

	var node any = t.root
	for _, k := range key {
		switch n := node.(type) {
		case map[string]any:
			v, ok := n[k]
			if !ok {
				return nil, false
			}
			node = v
		case []any:
			i, err := strconv.Atoi(k)
			if err != nil || i < 0 || i >= len(n) {
				return nil, false
			}
			node = n[i]
		default:
			return nil, false
		}
	}
	return lines(node)
}

// Text joins a lookup into one string, or returns the key itself.
func (t *Table) Text(key ...string) string {
	l, ok := t.Lookup(key...)
	if !ok || len(l) == 0 {
		return fmt.Sprint(key)
	}
	return l[0]
}

func lines(node any) ([]string, bool) {
	switch n := node.(type) {
	case string:
		return []string{n}, true
	case []any:
		out := make([]string, 0, len(n))
		for _, v := range n {
			s, ok := v.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
