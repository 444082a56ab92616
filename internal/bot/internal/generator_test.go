package internal

import (
	"testing"

	"daifugo/internal/domain"
)

func TestEnumerateCandidates_KindCounts(t *testing.T) {
	// 3D, 3H, 4C, 5C, 6C: five singles, one pair, and a single club run
	// (4-5-6 is the only block of length >= 3).
	hand := []domain.Card{
		{Suit: domain.Diamonds, Rank: 3},
		{Suit: domain.Hearts, Rank: 3},
		{Suit: domain.Clubs, Rank: 4},
		{Suit: domain.Clubs, Rank: 5},
		{Suit: domain.Clubs, Rank: 6},
	}

	singles, groups, runs := 0, 0, 0
	for _, p := range EnumerateCandidates(hand) {
		switch p.Kind {
		case domain.PlaySingle:
			singles++
		case domain.PlayGroup:
			groups++
		case domain.PlayRun:
			runs++
		default:
			t.Fatalf("enumerated an invalid play: %+v", p)
		}
	}

	if singles != 5 {
		t.Errorf("singles = %d, want 5", singles)
	}
	if groups != 1 {
		t.Errorf("groups = %d, want 1", groups)
	}
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestEnumerateCandidates_SubRuns(t *testing.T) {
	// A 5-long block yields sub-runs of length 3 (x3), 4 (x2) and 5 (x1).
	hand := []domain.Card{
		{Suit: domain.Spades, Rank: 5},
		{Suit: domain.Spades, Rank: 6},
		{Suit: domain.Spades, Rank: 7},
		{Suit: domain.Spades, Rank: 8},
		{Suit: domain.Spades, Rank: 9},
	}

	runs := 0
	for _, p := range EnumerateCandidates(hand) {
		if p.Kind == domain.PlayRun {
			runs++
		}
	}
	if runs != 6 {
		t.Errorf("runs = %d, want 6", runs)
	}
}

func TestEnumerateCandidates_JokerPair(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.Hearts, Rank: 7},
		{Suit: domain.Joker, Rank: domain.JokerRank},
	}

	foundJokerPair := false
	for _, p := range EnumerateCandidates(hand) {
		if p.Kind == domain.PlayGroup && p.Size() == 2 {
			foundJokerPair = true
		}
	}
	if !foundJokerPair {
		t.Errorf("expected a joker-completed pair candidate")
	}
}

func TestLegalCandidates_FiltersByTable(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.Clubs, Rank: 3},
		{Suit: domain.Clubs, Rank: 9},
		{Suit: domain.Spades, Rank: 2},
	}
	table := domain.Classify([]domain.Card{{Suit: domain.Hearts, Rank: 5}})

	legal := LegalCandidates(hand, &table, false, domain.NoSuit)
	if len(legal) != 2 {
		t.Fatalf("legal = %d, want 2 (the 9 and the 2)", len(legal))
	}
	for _, p := range legal {
		if p.Cards[0].Rank == 3 {
			t.Errorf("the 3 cannot beat a 5")
		}
	}
}

func TestWeaknessKeyOrdering(t *testing.T) {
	single3 := domain.Classify([]domain.Card{{Suit: domain.Clubs, Rank: 3}})
	single2 := domain.Classify([]domain.Card{{Suit: domain.Spades, Rank: 2}})
	pair3 := domain.Classify([]domain.Card{{Suit: domain.Clubs, Rank: 3}, {Suit: domain.Hearts, Rank: 3}})

	if WeaknessKey(single3, false) >= WeaknessKey(single2, false) {
		t.Errorf("a 3 single should be weaker than a 2 single")
	}
	if WeaknessKey(single2, false) >= WeaknessKey(pair3, false) {
		t.Errorf("any single should be weaker than a pair after the size offset")
	}

	// Revolution flips single ordering.
	if WeaknessKey(single2, true) >= WeaknessKey(single3, true) {
		t.Errorf("under revolution the 2 single should score weaker than the 3")
	}
}

func TestIsPremium(t *testing.T) {
	eight := domain.Classify([]domain.Card{{Suit: domain.Clubs, Rank: 8}})
	quad := domain.Classify([]domain.Card{
		{Suit: domain.Clubs, Rank: 11}, {Suit: domain.Diamonds, Rank: 11},
		{Suit: domain.Hearts, Rank: 11}, {Suit: domain.Spades, Rank: 11},
	})
	plain := domain.Classify([]domain.Card{{Suit: domain.Clubs, Rank: 9}})

	if !IsPremium(eight) || !IsPremium(quad) {
		t.Errorf("eights and quads are premium plays")
	}
	if IsPremium(plain) {
		t.Errorf("a plain single is not premium")
	}
}
