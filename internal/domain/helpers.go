package domain

import "fmt"

// RemoveCards removes the specified cards from a hand using multiset
// semantics and returns the updated hand. Cards not present are ignored;
// callers validate ownership with HandContains before committing.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, c := range toRemove {
		removeCounts[c]++
	}

	updated := make([]Card, 0, len(hand))
	for _, c := range hand {
		if n, ok := removeCounts[c]; ok && n > 0 {
			removeCounts[c] = n - 1
			continue
		}
		updated = append(updated, c)
	}
	return updated
}

// HandContains reports whether the hand holds every card of the selection,
// respecting multiplicity.
func HandContains(hand []Card, selection []Card) bool {
	counts := make(map[Card]int, len(hand))
	for _, c := range hand {
		counts[c]++
	}
	for _, c := range selection {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

// CheckConservation verifies the engine's core invariant: the multiset
// union of all hands, the table play, and the discard pile is exactly the
// full 53-card deck. A violation is a programming fault, never an expected
// runtime condition.
func CheckConservation(g *Game) error {
	counts := make(map[Card]int, DeckSize)
	for _, c := range NewDeck() {
		counts[c]++
	}

	claim := func(c Card, where string) error {
		if counts[c] == 0 {
			return fmt.Errorf("card %+v duplicated or unknown in %s", c, where)
		}
		counts[c]--
		return nil
	}

	for _, p := range g.Players {
		for _, c := range p.Hand {
			if err := claim(c, fmt.Sprintf("hand of player %d", p.ID)); err != nil {
				return err
			}
		}
	}
	if g.Table != nil {
		for _, c := range g.Table.Cards {
			if err := claim(c, "table"); err != nil {
				return err
			}
		}
	}
	for _, c := range g.Discards {
		if err := claim(c, "discards"); err != nil {
			return err
		}
	}

	for c, n := range counts {
		if n != 0 {
			return fmt.Errorf("card %+v missing from all locations", c)
		}
	}
	return nil
}
