package hands

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// TotalCombos is the number of distinct two-card starting hands.
const TotalCombos = 1326

// Cards returns the two representative cards displayed for a hand label.
// The first card is always a spade; the second is a spade for suited hands
// and a heart otherwise.
func Cards(hand string) ([2]poker.Card, error) {
	t, err := Classify(hand)
	if err != nil {
		return [2]poker.Card{}, err
	}
	hi, lo, err := values(hand)
	if err != nil {
		return [2]poker.Card{}, err
	}
	second := poker.Suit(poker.Heart)
	if t == Suited {
		second = poker.Spade
	}
	c0, err := poker.MakeCard(poker.Spade, hi)
	if err != nil {
		return [2]poker.Card{}, fmt.Errorf("invalid card in %s: %w", hand, err)
	}
	c1, err := poker.MakeCard(second, lo)
	if err != nil {
		return [2]poker.Card{}, fmt.Errorf("invalid card in %s: %w", hand, err)
	}
	return [2]poker.Card{c0, c1}, nil
}

// Combos enumerates every concrete combination of a hand label: 6 for a pair,
// 4 for a suited hand and 12 for an offsuit hand.
func Combos(hand string) ([][2]poker.Card, error) {
	t, err := Classify(hand)
	if err != nil {
		return nil, err
	}
	hi, lo, err := values(hand)
	if err != nil {
		return nil, err
	}
	var out [][2]poker.Card
	for s1 := poker.Suit(poker.Club); s1 <= poker.Spade; s1++ {
		for s2 := poker.Suit(poker.Club); s2 <= poker.Spade; s2++ {
			switch t {
			case Pair:
				if s2 <= s1 {
					continue
				}
			case Suited:
				if s1 != s2 {
					continue
				}
			case Offsuit:
				if s1 == s2 {
					continue
				}
			}
			c0, err := poker.MakeCard(s1, hi)
			if err != nil {
				return nil, fmt.Errorf("invalid card in %s: %w", hand, err)
			}
			c1, err := poker.MakeCard(s2, lo)
			if err != nil {
				return nil, fmt.Errorf("invalid card in %s: %w", hand, err)
			}
			out = append(out, [2]poker.Card{c0, c1})
		}
	}
	return out, nil
}

// CardLabel renders a card the way hand labels spell ranks, e.g. "T♠".
func CardLabel(c poker.Card) string {
	suit := "?"
	switch c.Suit() {
	case poker.Club:
		suit = "♣"
	case poker.Diamond:
		suit = "♦"
	case poker.Heart:
		suit = "♥"
	case poker.Spade:
		suit = "♠"
	}
	return RankOf(c.Rank()).String() + suit
}

func values(hand string) (poker.Rank, poker.Rank, error) {
	hi, err := Rank(hand[0]).Value()
	if err != nil {
		return 0, 0, err
	}
	lo, err := Rank(hand[1]).Value()
	if err != nil {
		return 0, 0, err
	}
	return hi, lo, nil
}
