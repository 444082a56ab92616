package domain

import "testing"

func single(s Suit, r int) Play {
	return Classify([]Card{{Suit: s, Rank: r}})
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name       string
		card       Card
		revolution bool
		expected   int
	}{
		{"Joker", Card{Suit: Joker, Rank: JokerRank}, false, 16},
		{"Two", Card{Suit: Spades, Rank: 2}, false, 15},
		{"Ace", Card{Suit: Spades, Rank: 1}, false, 14},
		{"Three", Card{Suit: Spades, Rank: 3}, false, 3},
		{"King", Card{Suit: Spades, Rank: 13}, false, 13},
		{"Joker under revolution", Card{Suit: Joker, Rank: JokerRank}, true, 16},
		{"Two under revolution", Card{Suit: Spades, Rank: 2}, true, 3},
		{"Three under revolution", Card{Suit: Spades, Rank: 3}, true, 15},
		{"King under revolution", Card{Suit: Spades, Rank: 13}, true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Weight(tt.card, tt.revolution); got != tt.expected {
				t.Errorf("Weight() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestBeatsStrengthOrdering(t *testing.T) {
	tests := []struct {
		name       string
		candidate  Play
		table      Play
		revolution bool
		expected   bool
	}{
		{"Two beats King", single(Spades, 2), single(Hearts, 13), false, true},
		{"King beats Three", single(Hearts, 13), single(Diamonds, 3), false, true},
		{"Three does not beat King", single(Diamonds, 3), single(Hearts, 13), false, false},
		{"Equal rank is a tie and loses", single(Clubs, 9), single(Spades, 9), false, false},
		{"Joker beats Two", single(Joker, JokerRank), single(Spades, 2), false, true},
		{"Three beats King under revolution", single(Diamonds, 3), single(Hearts, 13), true, true},
		{"King does not beat Three under revolution", single(Hearts, 13), single(Diamonds, 3), true, false},
		{"Joker still beats everything under revolution", single(Joker, JokerRank), single(Diamonds, 3), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := tt.table
			if got := Beats(tt.candidate, &table, tt.revolution, NoSuit); got != tt.expected {
				t.Errorf("Beats() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBeatsShapeMatching(t *testing.T) {
	pair := Classify([]Card{{Suit: Clubs, Rank: 10}, {Suit: Hearts, Rank: 10}})
	triple := Classify([]Card{{Suit: Clubs, Rank: 12}, {Suit: Hearts, Rank: 12}, {Suit: Spades, Rank: 12}})
	table := single(Clubs, 5)

	if Beats(pair, &table, false, NoSuit) {
		t.Errorf("a group must not beat a single regardless of strength")
	}
	if Beats(triple, &pair, false, NoSuit) {
		t.Errorf("a 3-group must not beat a 2-group")
	}

	higherPair := Classify([]Card{{Suit: Clubs, Rank: 13}, {Suit: Hearts, Rank: 13}})
	if !Beats(higherPair, &pair, false, NoSuit) {
		t.Errorf("a higher pair should beat a lower pair")
	}
}

func TestBeatsOpenTable(t *testing.T) {
	if !Beats(single(Clubs, 3), nil, false, NoSuit) {
		t.Errorf("any play should open an empty table")
	}
	if Beats(single(Clubs, 3), nil, false, Hearts) {
		t.Errorf("opening plays still obey an active suit lock")
	}
}

func TestBeatsSuitLock(t *testing.T) {
	table := single(Hearts, 5)

	if Beats(single(Clubs, 9), &table, false, Hearts) {
		t.Errorf("off-suit single must not satisfy a hearts lock")
	}
	if !Beats(single(Hearts, 9), &table, false, Hearts) {
		t.Errorf("on-suit higher single should satisfy the lock")
	}
	if Beats(single(Joker, JokerRank), &table, false, Hearts) {
		t.Errorf("a lone joker carries no suit and cannot satisfy a lock")
	}

	tablePair := Classify([]Card{{Suit: Hearts, Rank: 5}, {Suit: Diamonds, Rank: 5}})
	lockedPair := Classify([]Card{{Suit: Hearts, Rank: 9}, {Suit: Joker, Rank: JokerRank}})
	if !Beats(lockedPair, &tablePair, false, Hearts) {
		t.Errorf("the joker member of a group is exempt from the lock")
	}
	offPair := Classify([]Card{{Suit: Clubs, Rank: 9}, {Suit: Joker, Rank: JokerRank}})
	if Beats(offPair, &tablePair, false, Hearts) {
		t.Errorf("non-joker group members must match the locked suit")
	}
}

func TestPlayEffects(t *testing.T) {
	tests := []struct {
		name       string
		play       Play
		clears     bool
		revolution bool
	}{
		{"Plain single", single(Clubs, 5), false, false},
		{"Eight single clears", single(Clubs, 8), true, false},
		{"Run through eight clears", Classify([]Card{{Suit: Clubs, Rank: 7}, {Suit: Clubs, Rank: 8}, {Suit: Clubs, Rank: 9}}), true, false},
		{"Quad toggles revolution", Classify([]Card{
			{Suit: Clubs, Rank: 11}, {Suit: Diamonds, Rank: 11},
			{Suit: Hearts, Rank: 11}, {Suit: Spades, Rank: 11},
		}), false, true},
		{"Quad of eights does both", Classify([]Card{
			{Suit: Clubs, Rank: 8}, {Suit: Diamonds, Rank: 8},
			{Suit: Hearts, Rank: 8}, {Suit: Spades, Rank: 8},
		}), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := PlayEffects(tt.play)
			if fx.ClearsTable != tt.clears {
				t.Errorf("ClearsTable = %v, want %v", fx.ClearsTable, tt.clears)
			}
			if fx.TogglesRevolution != tt.revolution {
				t.Errorf("TogglesRevolution = %v, want %v", fx.TogglesRevolution, tt.revolution)
			}
		})
	}
}

func TestUpdateSuitLock(t *testing.T) {
	hearts5 := single(Hearts, 5)
	hearts9 := single(Hearts, 9)
	spades9 := single(Spades, 9)
	jokerPair := Classify([]Card{{Suit: Hearts, Rank: 7}, {Suit: Joker, Rank: JokerRank}})

	tests := []struct {
		name     string
		prev     *Play
		next     *Play
		expected Suit
	}{
		{"No previous play", nil, &hearts9, NoSuit},
		{"No next play", &hearts5, nil, NoSuit},
		{"Same suit engages", &hearts5, &hearts9, Hearts},
		{"Different suit clears", &hearts5, &spades9, NoSuit},
		{"Joker group never binds", &hearts5, &jokerPair, NoSuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpdateSuitLock(tt.prev, tt.next, NoSuit); got != tt.expected {
				t.Errorf("UpdateSuitLock() = %v, want %v", got, tt.expected)
			}
		})
	}
}
