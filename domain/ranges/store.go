package ranges

import (
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/preflop-trainer/domain/hands"
	"github.com/luca-patrignani/preflop-trainer/storage"
)

// Persister is the key/value persistence used by the store.
type Persister interface {
	Load(key string, out any) bool
	Save(key string, value any)
}

// Store holds the RangeSet being edited.
type Store struct {
	positions []hands.Position
	ranges    RangeSet
	persister Persister
	logger    *slog.Logger
}

type option func(Store) Store

// WithPositions overrides the seats managed by the store.
func WithPositions(positions ...hands.Position) option {
	return func(s Store) Store {
		s.positions = positions
		return s
	}
}

func WithLogger(l *slog.Logger) option {
	return func(s Store) Store {
		s.logger = l
		return s
	}
}

// NewStore restores the persisted RangeSet, or generates a fresh one when
// nothing valid is stored.
func NewStore(p Persister, opts ...option) *Store {
	s := Store{
		positions: hands.Positions,
		persister: p,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		s = opt(s)
	}

	var stored RangeSet
	if p.Load(storage.KeyRanges, &stored) {
		if err := stored.Validate(s.positions); err != nil {
			s.logger.Warn("discarding stored ranges", "error", err)
		} else {
			s.ranges = stored
		}
	}
	if s.ranges == nil {
		s.ranges = Initial(s.positions)
	}
	return &s
}

// Positions returns the seats managed by the store.
func (s *Store) Positions() []hands.Position {
	return append([]hands.Position(nil), s.positions...)
}

// Toggle flips the selection of one cell. It returns false, changing
// nothing, when the position or the indices do not exist.
func (s *Store) Toggle(p hands.Position, row, col int) bool {
	g, ok := s.ranges[p]
	if !ok || !hands.InBounds(row, col) {
		return false
	}
	g[row][col].Selected = !g[row][col].Selected
	s.persist()
	return true
}

// ToggleHand flips the cell carrying the given label.
func (s *Store) ToggleHand(p hands.Position, hand string) bool {
	row, col, err := hands.Locate(hand)
	if err != nil {
		return false
	}
	return s.Toggle(p, row, col)
}

// SetPosition selects or clears every hand of a position.
func (s *Store) SetPosition(p hands.Position, selected bool) bool {
	g, ok := s.ranges[p]
	if !ok {
		return false
	}
	for i := range g {
		for j := range g[i] {
			g[i][j].Selected = selected
		}
	}
	s.persist()
	return true
}

// Reset regenerates every grid with nothing selected.
func (s *Store) Reset() {
	s.ranges = Initial(s.positions)
	s.persist()
}

// Replace swaps the whole RangeSet for a copy of rs.
func (s *Store) Replace(rs RangeSet) error {
	if err := rs.Validate(s.positions); err != nil {
		return fmt.Errorf("cannot replace ranges: %w", err)
	}
	s.ranges = rs.Clone()
	s.persist()
	return nil
}

// Snapshot returns a deep copy of the current RangeSet.
func (s *Store) Snapshot() RangeSet {
	return s.ranges.Clone()
}

// Grid returns a copy of the matrix of a position.
func (s *Store) Grid(p hands.Position) (hands.Grid, bool) {
	g, ok := s.ranges[p]
	if !ok {
		return nil, false
	}
	return g.Clone(), true
}

// Cell returns one cell of a position's matrix.
func (s *Store) Cell(p hands.Position, row, col int) (hands.HandCell, bool) {
	g, ok := s.ranges[p]
	if !ok || !hands.InBounds(row, col) {
		return hands.HandCell{}, false
	}
	return g[row][col], true
}

// IsSelected reports whether hand is part of the range of p.
func (s *Store) IsSelected(p hands.Position, hand string) bool {
	for _, row := range s.ranges[p] {
		for _, cell := range row {
			if cell.Hand == hand {
				return cell.Selected
			}
		}
	}
	return false
}

// Count returns how many cells and how many concrete combos of p are selected.
func (s *Store) Count(p hands.Position) (cells, combos int) {
	for _, row := range s.ranges[p] {
		for _, cell := range row {
			if !cell.Selected {
				continue
			}
			cs, err := hands.Combos(cell.Hand)
			if err != nil {
				continue
			}
			cells++
			combos += len(cs)
		}
	}
	return cells, combos
}

func (s *Store) persist() {
	s.persister.Save(storage.KeyRanges, s.ranges)
}
