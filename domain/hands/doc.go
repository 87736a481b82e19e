// Package hands implements the static vocabulary of the preflop trainer:
// card ranks, table positions and the 13×13 starting-hand matrix.
//
// # Hand Matrix
//
// The matrix is indexed by rank, Ace first. The diagonal holds the pairs,
// the upper triangle (row < column) the suited hands and the lower triangle
// the offsuit hands:
//
//	row A, col A → "AA"
//	row A, col K → "AKs"
//	row K, col A → "AKo"
//
// Every label appears exactly once, so 169 labels cover the whole grid.
//
// # Cards
//
// A label is a hand category, not a concrete deal. Cards returns the two
// representative cards shown to the user, Combos enumerates every concrete
// combination of a category.
package hands
