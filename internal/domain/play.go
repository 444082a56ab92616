package domain

import "sort"

// PlayKind tags the legal shapes a selection of cards can take.
type PlayKind int

const (
	PlayInvalid PlayKind = iota
	PlaySingle
	PlayGroup
	PlayRun
)

func (k PlayKind) String() string {
	switch k {
	case PlaySingle:
		return "single"
	case PlayGroup:
		return "group"
	case PlayRun:
		return "run"
	default:
		return "invalid"
	}
}

// Play is a classified set of cards placed on the table. Kind is the
// variant tag, Cards the member cards (sorted at construction), Suit the
// run's suit (NoSuit for other kinds). A Play references card values, not
// hand positions, so it stays valid after the issuing hand is mutated.
type Play struct {
	Kind  PlayKind `json:"kind"`
	Cards []Card   `json:"cards"`
	Suit  Suit     `json:"suit"`
}

// Size returns the number of member cards.
func (p Play) Size() int { return len(p.Cards) }

// ContainsRank reports whether any member card has the given rank.
func (p Play) ContainsRank(rank int) bool {
	for _, c := range p.Cards {
		if c.Rank == rank {
			return true
		}
	}
	return false
}

// Anchor returns the card whose weight represents the play in strength
// comparisons: the lone card of a single, any non-joker member of a group
// (they all share a rank; the joker itself if none), or the highest-rank
// member of a run.
func (p Play) Anchor() Card {
	switch p.Kind {
	case PlayGroup:
		for _, c := range p.Cards {
			if !c.IsJoker() {
				return c
			}
		}
		return p.Cards[0]
	case PlayRun:
		top := p.Cards[0]
		for _, c := range p.Cards[1:] {
			if c.Rank > top.Rank {
				top = c
			}
		}
		return top
	default:
		return p.Cards[0]
	}
}

// Classify determines whether the selected cards form a legal play: a
// single card, a same-rank group of 2..4 (the joker substitutes for any
// rank), or a same-suit run of 3 or more strictly consecutive ranks (joker
// excluded, no wrap-around). A selection matching none of these yields
// PlayInvalid, a normal rejected outcome rather than a fault.
func Classify(selected []Card) Play {
	if len(selected) == 0 {
		return Play{Kind: PlayInvalid, Suit: NoSuit}
	}

	if len(selected) == 1 {
		return Play{Kind: PlaySingle, Cards: copyCards(selected), Suit: NoSuit}
	}

	var nonJokers []Card
	jokers := 0
	for _, c := range selected {
		if c.IsJoker() {
			jokers++
		} else {
			nonJokers = append(nonJokers, c)
		}
	}

	// Group: 2..4 cards of one effective rank, jokers as filler.
	if len(selected) <= 4 && len(nonJokers) > 0 && allSameRank(nonJokers) {
		cards := copyCards(selected)
		sort.Slice(cards, func(i, j int) bool { return WeightBase(cards[i]) < WeightBase(cards[j]) })
		return Play{Kind: PlayGroup, Cards: cards, Suit: NoSuit}
	}

	// Run: joker-free, one suit, 3+ strictly consecutive ranks.
	if jokers == 0 && len(selected) >= 3 && allSameSuit(selected) {
		cards := copyCards(selected)
		sort.Slice(cards, func(i, j int) bool { return cards[i].Rank < cards[j].Rank })
		consecutive := true
		for i := 1; i < len(cards); i++ {
			if cards[i].Rank != cards[i-1].Rank+1 {
				consecutive = false
				break
			}
		}
		if consecutive {
			return Play{Kind: PlayRun, Cards: cards, Suit: cards[0].Suit}
		}
	}

	return Play{Kind: PlayInvalid, Suit: NoSuit}
}

func copyCards(cards []Card) []Card {
	return append([]Card{}, cards...)
}

func allSameRank(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

func allSameSuit(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}
