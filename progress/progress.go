// Package progress stores the persistent flags, counters and ID sets that
// gameplay code reads and writes during a tick.
//
// All writes are either set inserts or plain stores, so the order in which
// objects touch the store within one tick never changes the outcome.
package progress

import "slices"

// Well-known keys.
const (
	SetItems          = "items"
	SetOpenChests     = "openChests"
	SetStarsCollected = "starsCollected"
	SetEnemiesKilled  = "enemiesKilled"
	SetRoomVisited    = "roomVisited"
	SetDoors          = "doors"
	SetOrbsDestroyed  = "orbsDestroyed"

	BoolFansEnabled = "fansEnabled"
	BoolSwitchState = "switchState"

	NumCheckpoint    = "checkpoint"
	NumStars         = "stars"
	NumKills         = "kills"
	NumReceivedItems = "receivedItems"
)

// Item ids stored in SetItems.
const (
	ItemRunningShoes = iota
	ItemDownAttack
	ItemKey
	ItemRock
	ItemSlide
	ItemFlap
	ItemDoubleJump
	ItemDiving
	ItemSpinBreak
	ItemExtraHeart
	ItemHeadBreak
	ItemSpinAttack
	ItemMap

	ItemCount
)

type Manager struct {
	bools   map[string]bool
	numbers map[string]float64
	sets    map[string]*idSet
}

type idSet struct {
	order []int
	index map[int]struct{}
}

func NewManager() *Manager {
	return &Manager{
		bools:   make(map[string]bool),
		numbers: make(map[string]float64),
		sets:    make(map[string]*idSet),
	}
}

func (m *Manager) Bool(key string) bool {
	return m.bools[key]
}

func (m *Manager) SetBool(key string, v bool) {
	m.bools[key] = v
}

func (m *Manager) Toggle(key string) bool {
	m.bools[key] = !m.bools[key]
	return m.bools[key]
}

// Number returns def when key has never been set.
func (m *Manager) Number(key string, def float64) float64 {
	if v, ok := m.numbers[key]; ok {
		return v
	}
	return def
}

func (m *Manager) SetNumber(key string, v float64) {
	m.numbers[key] = v
}

func (m *Manager) AddNumber(key string, delta float64) float64 {
	m.numbers[key] += delta
	return m.numbers[key]
}

func (m *Manager) set(key string) *idSet {
	s, ok := m.sets[key]
	if !ok {
		s = &idSet{index: make(map[int]struct{})}
		m.sets[key] = s
	}
	return s
}

// AddToSet inserts v and reports whether it was not present before. Adding an
// existing value is a no-op.
func (m *Manager) AddToSet(key string, v int) bool {
	s := m.set(key)
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

func (m *Manager) Contains(key string, v int) bool {
	s, ok := m.sets[key]
	if !ok {
		return false
	}
	_, ok = s.index[v]
	return ok
}

func (m *Manager) RemoveFromSet(key string, v int) bool {
	s, ok := m.sets[key]
	if !ok {
		return false
	}
	if _, ok := s.index[v]; !ok {
		return false
	}
	delete(s.index, v)
	if i := slices.Index(s.order, v); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// Values returns a copy of the set in insertion order.
func (m *Manager) Values(key string) []int {
	s, ok := m.sets[key]
	if !ok {
		return nil
	}
	return slices.Clone(s.order)
}

func (m *Manager) SetLen(key string) int {
	s, ok := m.sets[key]
	if !ok {
		return 0
	}
	return len(s.order)
}

func (m *Manager) HasItem(id int) bool {
	return m.Contains(SetItems, id)
}

// Snapshot is the serializable form of a Manager.
type Snapshot struct {
	Bools   map[string]bool    `yaml:"bools,omitempty" json:"bools,omitempty"`
	Numbers map[string]float64 `yaml:"numbers,omitempty" json:"numbers,omitempty"`
	Sets    map[string][]int   `yaml:"sets,omitempty" json:"sets,omitempty"`
}

func (m *Manager) Snapshot() Snapshot {
	s := Snapshot{
		Bools:   make(map[string]bool, len(m.bools)),
		Numbers: make(map[string]float64, len(m.numbers)),
		Sets:    make(map[string][]int, len(m.sets)),
	}
	for k, v := range m.bools {
		s.Bools[k] = v
	}
	for k, v := range m.numbers {
		s.Numbers[k] = v
	}
	for k, v := range m.sets {
		s.Sets[k] = slices.Clone(v.order)
	}
	return s
}

// Restore replaces the whole store with s. Duplicate set entries in s collapse.
func (m *Manager) Restore(s Snapshot) {
	m.bools = make(map[string]bool, len(s.Bools))
	m.numbers = make(map[string]float64, len(s.Numbers))
	m.sets = make(map[string]*idSet, len(s.Sets))
	for k, v := range s.Bools {
		m.bools[k] = v
	}
	for k, v := range s.Numbers {
		m.numbers[k] = v
	}
	for k, vs := range s.Sets {
		for _, v := range vs {
			m.AddToSet(k, v)
		}
	}
}
