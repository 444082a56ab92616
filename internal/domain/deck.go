package domain

import (
	"errors"
	"math/rand"
	"sort"
)

// DeckSize is the number of cards in a full deck: 52 standard plus one joker.
const DeckSize = 53

// ErrNoPlayers is returned when a deal is requested for zero players.
var ErrNoPlayers = errors.New("deal requires at least one player")

// NewDeck returns the canonical 53-card deck in deterministic order: four
// suits of ranks 1..13 followed by the joker.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for r := 1; r <= 13; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return append(deck, Card{Suit: Joker, Rank: JokerRank})
}

// Shuffle permutes the deck in place using the supplied rng. Callers seed
// the rng for reproducibility.
func Shuffle(deck []Card, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

// Deal distributes the whole deck round-robin and returns one hand per
// player. Every hand ends up with either ceil or floor of len(deck)/players.
func Deal(deck []Card, players int) ([][]Card, error) {
	if players <= 0 {
		return nil, ErrNoPlayers
	}
	hands := make([][]Card, players)
	for i, c := range deck {
		hands[i%players] = append(hands[i%players], c)
	}
	return hands, nil
}

// SortHand orders a hand by ascending effective weight. Hand order carries
// no rules meaning; this is for display and stable test output only.
func SortHand(hand []Card, revolution bool) {
	sort.Slice(hand, func(i, j int) bool {
		wi, wj := Weight(hand[i], revolution), Weight(hand[j], revolution)
		if wi != wj {
			return wi < wj
		}
		return hand[i].Suit < hand[j].Suit
	})
}
