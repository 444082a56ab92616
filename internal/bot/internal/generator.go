package internal

import (
	"sort"

	"daifugo/internal/domain"
)

// EnumerateCandidates returns every play shape obtainable from the hand:
// all singles (the joker included), all same-rank groups of size 2..4 plus
// the joker-completed pair, and every contiguous sub-run of length >= 3
// inside each maximal same-suit consecutive block. Legality against the
// table is the caller's concern. Order is deterministic: singles in hand
// order, groups by ascending rank, runs by suit then offset then length.
func EnumerateCandidates(hand []domain.Card) []domain.Play {
	var out []domain.Play

	var nonJokers, jokers []domain.Card
	for _, c := range hand {
		if c.IsJoker() {
			jokers = append(jokers, c)
		} else {
			nonJokers = append(nonJokers, c)
		}
	}

	for _, c := range hand {
		out = append(out, domain.Classify([]domain.Card{c}))
	}

	out = append(out, enumerateGroups(nonJokers, jokers)...)
	out = append(out, enumerateRuns(nonJokers)...)
	return out
}

func enumerateGroups(nonJokers, jokers []domain.Card) []domain.Play {
	byRank := make(map[int][]domain.Card)
	var ranks []int
	for _, c := range nonJokers {
		if _, ok := byRank[c.Rank]; !ok {
			ranks = append(ranks, c.Rank)
		}
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	sort.Ints(ranks)

	var out []domain.Play
	for _, r := range ranks {
		cards := byRank[r]
		for size := 2; size <= 4 && size <= len(cards); size++ {
			out = append(out, domain.Classify(cards[:size]))
		}
		// A lone card can borrow the joker to form a pair.
		if len(cards) == 1 && len(jokers) > 0 {
			out = append(out, domain.Classify([]domain.Card{cards[0], jokers[0]}))
		}
	}
	return out
}

func enumerateRuns(nonJokers []domain.Card) []domain.Play {
	bySuit := make(map[domain.Suit][]domain.Card)
	for _, c := range nonJokers {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}

	var out []domain.Play
	for _, s := range []domain.Suit{domain.Clubs, domain.Diamonds, domain.Hearts, domain.Spades} {
		cs := bySuit[s]
		if len(cs) < 3 {
			continue
		}
		sort.Slice(cs, func(i, j int) bool { return cs[i].Rank < cs[j].Rank })

		// Walk maximal consecutive blocks; ranks within one suit are unique.
		i := 0
		for i < len(cs) {
			j := i
			for j+1 < len(cs) && cs[j+1].Rank == cs[j].Rank+1 {
				j++
			}
			if blockLen := j - i + 1; blockLen >= 3 {
				for size := 3; size <= blockLen; size++ {
					for start := i; start+size <= j+1; start++ {
						out = append(out, domain.Classify(cs[start:start+size]))
					}
				}
			}
			i = j + 1
		}
	}
	return out
}

// LegalCandidates enumerates candidates and keeps those placeable over the
// current table state.
func LegalCandidates(hand []domain.Card, table *domain.Play, revolution bool, lock domain.Suit) []domain.Play {
	var legal []domain.Play
	for _, p := range EnumerateCandidates(hand) {
		if domain.Beats(p, table, revolution, lock) {
			legal = append(legal, p)
		}
	}
	return legal
}
