package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/preflop-trainer/domain/drill"
	"github.com/luca-patrignani/preflop-trainer/domain/hands"
	"github.com/luca-patrignani/preflop-trainer/domain/presets"
	"github.com/luca-patrignani/preflop-trainer/domain/ranges"
)

// Mode is the screen the trainer is on.
type Mode string

const (
	ModeEdit  Mode = "edit"
	ModeDrill Mode = "drill"
)

// ErrDrilling is returned by operations that are not allowed during a drill.
var ErrDrilling = errors.New("not allowed while drilling")

// Trainer wires the range store, the preset manager and the drill engine,
// and keeps the editor state: mode, current position and drill length.
type Trainer struct {
	ranges  *ranges.Store
	presets *presets.Manager
	drill   *drill.Engine
	logger  *slog.Logger

	mode        Mode
	position    hands.Position
	drillLength int
}

type option func(Trainer) Trainer

// WithDrillLength sets the initial drill length.
func WithDrillLength(n int) option {
	return func(t Trainer) Trainer {
		t.drillLength = n
		return t
	}
}

func WithLogger(l *slog.Logger) option {
	return func(t Trainer) Trainer {
		t.logger = l
		return t
	}
}

func New(r *ranges.Store, p *presets.Manager, d *drill.Engine, opts ...option) *Trainer {
	t := Trainer{
		ranges:      r,
		presets:     p,
		drill:       d,
		logger:      slog.Default(),
		mode:        ModeEdit,
		drillLength: drill.Lengths[0],
	}
	for _, opt := range opts {
		t = opt(t)
	}
	if positions := r.Positions(); len(positions) > 0 {
		t.position = positions[0]
	}
	return &t
}

func (t *Trainer) Mode() Mode {
	return t.mode
}

func (t *Trainer) Ranges() *ranges.Store {
	return t.ranges
}

func (t *Trainer) Presets() *presets.Manager {
	return t.presets
}

func (t *Trainer) Drill() *drill.Engine {
	return t.drill
}

// Position returns the seat being edited.
func (t *Trainer) Position() hands.Position {
	return t.position
}

// SetPosition moves the editor to p.
func (t *Trainer) SetPosition(p hands.Position) error {
	if _, ok := t.ranges.Grid(p); !ok {
		return fmt.Errorf("unknown position %s", p)
	}
	t.position = p
	return nil
}

// NextPosition moves the editor to the following managed seat, wrapping around.
func (t *Trainer) NextPosition() hands.Position {
	t.position = t.step(1)
	return t.position
}

// PrevPosition moves the editor to the preceding managed seat, wrapping around.
func (t *Trainer) PrevPosition() hands.Position {
	t.position = t.step(-1)
	return t.position
}

func (t *Trainer) step(delta int) hands.Position {
	positions := t.ranges.Positions()
	if len(positions) == 0 {
		return t.position
	}
	i := 0
	for j, p := range positions {
		if p == t.position {
			i = j
		}
	}
	return positions[(i+delta+len(positions))%len(positions)]
}

// Toggle flips a cell of the current position. Edits are ignored while drilling.
func (t *Trainer) Toggle(row, col int) bool {
	if t.mode == ModeDrill {
		return false
	}
	return t.ranges.Toggle(t.position, row, col)
}

// ToggleHand flips a labelled hand of the current position.
func (t *Trainer) ToggleHand(hand string) bool {
	if t.mode == ModeDrill {
		return false
	}
	return t.ranges.ToggleHand(t.position, hands.Normalize(hand))
}

// SelectAll selects or clears the whole current position.
func (t *Trainer) SelectAll(selected bool) bool {
	if t.mode == ModeDrill {
		return false
	}
	return t.ranges.SetPosition(t.position, selected)
}

// ResetRanges restores the initial ranges of every position.
func (t *Trainer) ResetRanges() error {
	if t.mode == ModeDrill {
		return ErrDrilling
	}
	t.ranges.Reset()
	return nil
}

// DrillLength returns the length used by the next drill.
func (t *Trainer) DrillLength() int {
	return t.drillLength
}

func (t *Trainer) SetDrillLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("drill length must be positive, got %d", n)
	}
	t.drillLength = n
	return nil
}

// StartDrill switches to drill mode and starts a new session. Calling it
// again restarts the session.
func (t *Trainer) StartDrill() error {
	if err := t.drill.Start(t.drillLength); err != nil {
		return err
	}
	t.mode = ModeDrill
	t.logger.Debug("drill started", "length", t.drillLength)
	return nil
}

// Answer submits a raise/fold answer to the running drill.
func (t *Trainer) Answer(raise bool) (correct bool, ok bool) {
	if t.mode != ModeDrill {
		return false, false
	}
	return t.drill.Answer(raise)
}

// ExitDrill discards the drill session and returns to the editor.
func (t *Trainer) ExitDrill() {
	if t.mode != ModeDrill {
		return
	}
	score := t.drill.Score()
	t.logger.Debug("drill finished", "correct", score.Correct, "total", score.Total, "state", t.drill.State())
	t.drill.Reset()
	t.mode = ModeEdit
}

// SavePreset stores the current ranges as a new preset.
func (t *Trainer) SavePreset(name string) (presets.Preset, error) {
	if t.mode == ModeDrill {
		return presets.Preset{}, ErrDrilling
	}
	p, ok := t.presets.Create(name, t.ranges.Snapshot())
	if !ok {
		return presets.Preset{}, fmt.Errorf("preset name must not be empty")
	}
	return p, nil
}

// LoadPreset installs a preset's ranges in the editor.
func (t *Trainer) LoadPreset(id string) error {
	if t.mode == ModeDrill {
		return ErrDrilling
	}
	rs, ok := t.presets.Load(id)
	if !ok {
		return fmt.Errorf("preset %s not found", id)
	}
	return t.ranges.Replace(rs)
}

// UpdatePreset overwrites the active preset with the current ranges.
func (t *Trainer) UpdatePreset() error {
	if t.mode == ModeDrill {
		return ErrDrilling
	}
	if !t.presets.Update(t.ranges.Snapshot()) {
		return fmt.Errorf("no active preset")
	}
	return nil
}

// DeletePreset removes a preset.
func (t *Trainer) DeletePreset(id string) error {
	if t.mode == ModeDrill {
		return ErrDrilling
	}
	if !t.presets.Delete(id) {
		return fmt.Errorf("preset %s not found", id)
	}
	return nil
}

// ImportPreset creates a preset from a YAML document.
func (t *Trainer) ImportPreset(r io.Reader) (presets.Preset, error) {
	if t.mode == ModeDrill {
		return presets.Preset{}, ErrDrilling
	}
	return t.presets.Import(r)
}
