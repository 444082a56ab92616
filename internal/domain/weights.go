package domain

// jokerWeight is the weight of the wildcard, stronger than every standard
// card in either ordering.
const jokerWeight = 16

// WeightBase returns the effective rank weight with no revolution active:
// joker 16, rank 2 = 15, ace = 14, ranks 3..13 their face value.
func WeightBase(c Card) int {
	switch {
	case c.IsJoker():
		return jokerWeight
	case c.Rank == 2:
		return 15
	case c.Rank == 1:
		return 14
	default:
		return c.Rank // 3..13
	}
}

// Weight returns the effective weight under the given revolution state.
// The joker keeps weight 16; every other weight is mirrored as 18-base, so
// rank 3 and the king trade places and so on.
func Weight(c Card, revolution bool) int {
	base := WeightBase(c)
	if !revolution || base == jokerWeight {
		return base
	}
	return 18 - base
}
