package presets

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/luca-patrignani/preflop-trainer/domain/hands"
	"github.com/luca-patrignani/preflop-trainer/domain/ranges"
	"github.com/luca-patrignani/preflop-trainer/storage"
)

// Preset is a named snapshot of every position's range.
type Preset struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Ranges ranges.RangeSet `json:"ranges"`
}

func (p Preset) clone() Preset {
	p.Ranges = p.Ranges.Clone()
	return p
}

// Manager owns the preset collection.
type Manager struct {
	presets   []Preset
	activeID  string
	positions []hands.Position
	persister ranges.Persister
	newID     func() string
	logger    *slog.Logger
}

type option func(Manager) Manager

// WithIDGenerator replaces the UUID generator used for new presets.
func WithIDGenerator(gen func() string) option {
	return func(m Manager) Manager {
		m.newID = gen
		return m
	}
}

func WithPositions(positions ...hands.Position) option {
	return func(m Manager) Manager {
		m.positions = positions
		return m
	}
}

func WithLogger(l *slog.Logger) option {
	return func(m Manager) Manager {
		m.logger = l
		return m
	}
}

// NewManager restores the collection and the active pointer. Presets with a
// duplicate id or a malformed range are dropped.
func NewManager(p ranges.Persister, opts ...option) *Manager {
	m := Manager{
		positions: hands.Positions,
		persister: p,
		newID:     uuid.NewString,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		m = opt(m)
	}

	var stored []Preset
	if !p.Load(storage.KeyPresets, &stored) {
		stored = nil
	}
	seen := map[string]bool{}
	for _, pr := range stored {
		if pr.ID == "" || seen[pr.ID] {
			m.logger.Warn("dropping preset with missing or duplicate id", "id", pr.ID, "name", pr.Name)
			continue
		}
		if err := pr.Ranges.Validate(m.positions); err != nil {
			m.logger.Warn("dropping malformed preset", "id", pr.ID, "name", pr.Name, "error", err)
			continue
		}
		seen[pr.ID] = true
		m.presets = append(m.presets, pr)
	}

	var active *string
	if p.Load(storage.KeyLastPreset, &active) && active != nil {
		if seen[*active] {
			m.activeID = *active
		} else {
			m.logger.Warn("clearing unknown active preset", "id", *active)
		}
	}
	return &m
}

// Create stores a copy of rs under name and activates it. A blank name is
// rejected and nothing is created.
func (m *Manager) Create(name string, rs ranges.RangeSet) (Preset, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, false
	}
	if err := rs.Validate(m.positions); err != nil {
		m.logger.Warn("refusing to save malformed ranges", "name", name, "error", err)
		return Preset{}, false
	}
	id := m.newID()
	for m.index(id) != -1 {
		id = m.newID()
	}
	pr := Preset{ID: id, Name: name, Ranges: rs.Clone()}
	m.presets = append(m.presets, pr)
	m.activeID = id
	m.persistPresets()
	m.persistActive()
	return pr.clone(), true
}

// Load activates a preset and returns a copy of its ranges.
func (m *Manager) Load(id string) (ranges.RangeSet, bool) {
	i := m.index(id)
	if i == -1 {
		return nil, false
	}
	m.activeID = id
	m.persistActive()
	return m.presets[i].Ranges.Clone(), true
}

// Update overwrites the ranges of the active preset with a copy of rs.
func (m *Manager) Update(rs ranges.RangeSet) bool {
	i := m.index(m.activeID)
	if i == -1 {
		return false
	}
	if err := rs.Validate(m.positions); err != nil {
		m.logger.Warn("refusing to update with malformed ranges", "id", m.activeID, "error", err)
		return false
	}
	m.presets[i].Ranges = rs.Clone()
	m.persistPresets()
	return true
}

// Delete removes a preset, clearing the active pointer if it named it.
func (m *Manager) Delete(id string) bool {
	i := m.index(id)
	if i == -1 {
		return false
	}
	m.presets = slices.Delete(m.presets, i, i+1)
	if m.activeID == id {
		m.activeID = ""
		m.persistActive()
	}
	m.persistPresets()
	return true
}

// List returns copies of every preset in creation order.
func (m *Manager) List() []Preset {
	out := make([]Preset, len(m.presets))
	for i, p := range m.presets {
		out[i] = p.clone()
	}
	return out
}

// Get returns a copy of a preset.
func (m *Manager) Get(id string) (Preset, bool) {
	i := m.index(id)
	if i == -1 {
		return Preset{}, false
	}
	return m.presets[i].clone(), true
}

// ActiveID returns the active preset id, or "" when none is active.
func (m *Manager) ActiveID() string {
	if m.index(m.activeID) == -1 {
		return ""
	}
	return m.activeID
}

// Active returns a copy of the active preset.
func (m *Manager) Active() (Preset, bool) {
	return m.Get(m.activeID)
}

func (m *Manager) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(m.presets, func(p Preset) bool { return p.ID == id })
}

func (m *Manager) persistPresets() {
	presets := m.presets
	if presets == nil {
		presets = []Preset{}
	}
	m.persister.Save(storage.KeyPresets, presets)
}

func (m *Manager) persistActive() {
	if m.activeID == "" {
		m.persister.Save(storage.KeyLastPreset, nil)
		return
	}
	m.persister.Save(storage.KeyLastPreset, m.activeID)
}
