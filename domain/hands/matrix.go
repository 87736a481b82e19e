package hands

import (
	"fmt"
	"strings"
	"unicode"
)

// HandType is the category of a starting hand.
type HandType string

const (
	Pair    HandType = "pair"
	Suited  HandType = "suited"
	Offsuit HandType = "offsuit"
)

// HandCell is a single cell of the hand matrix.
type HandCell struct {
	Hand     string `json:"hand"`
	Selected bool   `json:"selected"`
}

// Grid is a Size×Size hand matrix.
type Grid [][]HandCell

// GenerateMatrix builds a fresh matrix with every cell unselected.
func GenerateMatrix() Grid {
	grid := make(Grid, Size)
	for i := range Size {
		grid[i] = make([]HandCell, Size)
		for j := range Size {
			grid[i][j] = HandCell{Hand: label(i, j)}
		}
	}
	return grid
}

func label(i, j int) string {
	r1, r2 := Ranks[i], Ranks[j]
	switch {
	case i == j:
		return string([]byte{byte(r1), byte(r1)})
	case i < j:
		return string([]byte{byte(r1), byte(r2), 's'})
	default:
		return string([]byte{byte(r2), byte(r1), 'o'})
	}
}

// Label returns the label of the cell at (row, col).
func Label(row, col int) (string, error) {
	if !InBounds(row, col) {
		return "", fmt.Errorf("cell (%d, %d) out of range", row, col)
	}
	return label(row, col), nil
}

// InBounds reports whether (row, col) indexes the matrix.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Classify returns the hand type of a label.
func Classify(hand string) (HandType, error) {
	if _, _, err := Locate(hand); err != nil {
		return "", err
	}
	if len(hand) == 2 {
		return Pair, nil
	}
	if hand[2] == 's' {
		return Suited, nil
	}
	return Offsuit, nil
}

// Locate returns the matrix coordinates of a label. It is the inverse of Label.
func Locate(hand string) (row, col int, err error) {
	if len(hand) != 2 && len(hand) != 3 {
		return 0, 0, fmt.Errorf("invalid hand %q", hand)
	}
	hi, lo := Rank(hand[0]).Index(), Rank(hand[1]).Index()
	if hi == -1 || lo == -1 {
		return 0, 0, fmt.Errorf("invalid ranks in hand %q", hand)
	}
	if len(hand) == 2 {
		if hi != lo {
			return 0, 0, fmt.Errorf("hand %q needs a suited or offsuit suffix", hand)
		}
		return hi, lo, nil
	}
	if hi >= lo {
		return 0, 0, fmt.Errorf("hand %q must list the higher rank first", hand)
	}
	switch hand[2] {
	case 's':
		return hi, lo, nil
	case 'o':
		return lo, hi, nil
	}
	return 0, 0, fmt.Errorf("invalid suffix in hand %q", hand)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]HandCell(nil), row...)
	}
	return out
}

// Valid reports whether g is a Size×Size grid carrying the generated labels.
func (g Grid) Valid() bool {
	if len(g) != Size {
		return false
	}
	for i, row := range g {
		if len(row) != Size {
			return false
		}
		for j, cell := range row {
			if cell.Hand != label(i, j) {
				return false
			}
		}
	}
	return true
}

// Normalize upper-cases the ranks and lower-cases the suffix of a user typed
// label, so "aks" becomes "AKs".
func Normalize(hand string) string {
	b := []byte(strings.TrimSpace(hand))
	for i := range b {
		if i < 2 {
			b[i] = byte(unicode.ToUpper(rune(b[i])))
		} else {
			b[i] = byte(unicode.ToLower(rune(b[i])))
		}
	}
	return string(b)
}
