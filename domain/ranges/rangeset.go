package ranges

import (
	"fmt"

	"github.com/luca-patrignani/preflop-trainer/domain/hands"
)

// RangeSet maps every position to its hand matrix.
type RangeSet map[hands.Position]hands.Grid

// Initial builds a fresh, empty range for each position.
func Initial(positions []hands.Position) RangeSet {
	rs := make(RangeSet, len(positions))
	for _, p := range positions {
		rs[p] = hands.GenerateMatrix()
	}
	return rs
}

// Clone returns a deep copy sharing no grid with rs.
func (rs RangeSet) Clone() RangeSet {
	if rs == nil {
		return nil
	}
	out := make(RangeSet, len(rs))
	for p, g := range rs {
		out[p] = g.Clone()
	}
	return out
}

// Validate checks that rs holds exactly the given positions, each with a
// well formed matrix.
func (rs RangeSet) Validate(positions []hands.Position) error {
	if len(rs) != len(positions) {
		return fmt.Errorf("expected %d positions, got %d", len(positions), len(rs))
	}
	for _, p := range positions {
		g, ok := rs[p]
		if !ok {
			return fmt.Errorf("missing position %s", p)
		}
		if !g.Valid() {
			return fmt.Errorf("invalid hand matrix for position %s", p)
		}
	}
	return nil
}

// Selected lists the selected hand labels of a position in matrix order.
func (rs RangeSet) Selected(p hands.Position) []string {
	var out []string
	for _, row := range rs[p] {
		for _, cell := range row {
			if cell.Selected {
				out = append(out, cell.Hand)
			}
		}
	}
	return out
}
