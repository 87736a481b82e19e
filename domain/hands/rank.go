package hands

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Rank is a card rank symbol.
type Rank byte

// Ranks lists the 13 ranks in matrix order, Ace high down to 2.
var Ranks = [13]Rank{'A', 'K', 'Q', 'J', 'T', '9', '8', '7', '6', '5', '4', '3', '2'}

// Size is the side of the hand matrix.
const Size = len(Ranks)

func (r Rank) String() string {
	return string(r)
}

// Index returns the matrix index of the rank, or -1 if r is not a rank symbol.
func (r Rank) Index() int {
	for i, rank := range Ranks {
		if rank == r {
			return i
		}
	}
	return -1
}

// Value returns the rank as github.com/paulhankin/poker numbers it: Ace=1,
// 2-10, Jack=11, Queen=12, King=13.
func (r Rank) Value() (poker.Rank, error) {
	switch r {
	case 'A':
		return 1, nil
	case 'K':
		return 13, nil
	case 'Q':
		return 12, nil
	case 'J':
		return 11, nil
	case 'T':
		return 10, nil
	}
	if r >= '2' && r <= '9' {
		return poker.Rank(r - '0'), nil
	}
	return 0, fmt.Errorf("invalid rank %q", rune(r))
}

// RankOf is the inverse of Value. It returns 0 for a number outside 1-13.
func RankOf(v poker.Rank) Rank {
	switch {
	case v == 1:
		return 'A'
	case v >= 2 && v <= 13:
		return Ranks[Size-int(v)+1]
	}
	return 0
}
