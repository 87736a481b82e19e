package hands

import (
	"fmt"
	"slices"
	"strings"
)

// Position is a table seat.
type Position string

const (
	UTG Position = "UTG"
	MP  Position = "MP"
	CO  Position = "CO"
	BTN Position = "BTN"
)

// Positions lists the seats in editor navigation order.
var Positions = []Position{UTG, MP, CO, BTN}

// ParsePosition accepts a position name in any letter case.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(Positions, p) {
		return "", fmt.Errorf("unknown position %q", s)
	}
	return p, nil
}

// Index returns the index of p in Positions, or -1.
func (p Position) Index() int {
	return slices.Index(Positions, p)
}

// Next returns the following seat, wrapping around after the last one.
func (p Position) Next() Position {
	i := p.Index()
	if i == -1 {
		return Positions[0]
	}
	return Positions[(i+1)%len(Positions)]
}

// Prev returns the preceding seat, wrapping around before the first one.
func (p Position) Prev() Position {
	i := p.Index()
	if i == -1 {
		return Positions[len(Positions)-1]
	}
	return Positions[(i-1+len(Positions))%len(Positions)]
}
