package bot

import (
	"testing"

	"daifugo/internal/domain"
)

func gameWithTable(table *domain.Play, players ...*domain.Player) *domain.Game {
	return &domain.Game{
		Phase:      domain.PhasePlaying,
		Players:    players,
		Table:      table,
		TableOwner: -1,
		SuitLock:   domain.NoSuit,
	}
}

func TestSmartBotPassesWithNoLegalMove(t *testing.T) {
	table := domain.Classify([]domain.Card{{Suit: domain.Spades, Rank: 2}})
	player := &domain.Player{ID: 0, Hand: []domain.Card{
		{Suit: domain.Clubs, Rank: 3},
		{Suit: domain.Hearts, Rank: 4},
	}}
	game := gameWithTable(&table, player)

	move, err := (&SmartBot{}).CalculateMove(game, player)
	if err != nil {
		t.Fatalf("calculate move: %v", err)
	}
	if !move.Pass {
		t.Errorf("expected a pass, got %+v", move.Cards)
	}
}

func TestSmartBotPlaysWeakestLegal(t *testing.T) {
	table := domain.Classify([]domain.Card{{Suit: domain.Hearts, Rank: 5}})
	player := &domain.Player{ID: 0, Hand: []domain.Card{
		{Suit: domain.Clubs, Rank: 9},
		{Suit: domain.Diamonds, Rank: 6},
		{Suit: domain.Spades, Rank: 2},
	}}
	game := gameWithTable(&table, player)

	move, err := (&SmartBot{}).CalculateMove(game, player)
	if err != nil {
		t.Fatalf("calculate move: %v", err)
	}
	if move.Pass || len(move.Cards) != 1 || move.Cards[0].Rank != 6 {
		t.Errorf("expected the 6 single, got %+v", move)
	}
}

func TestSmartBotConservesPremium(t *testing.T) {
	// Both the 8 and the 9 beat the table 5; the 8 is weaker but premium.
	table := domain.Classify([]domain.Card{{Suit: domain.Hearts, Rank: 5}})
	player := &domain.Player{ID: 0, Hand: []domain.Card{
		{Suit: domain.Clubs, Rank: 8},
		{Suit: domain.Diamonds, Rank: 9},
	}}
	game := gameWithTable(&table, player)

	move, err := (&SmartBot{}).CalculateMove(game, player)
	if err != nil {
		t.Fatalf("calculate move: %v", err)
	}
	if move.Pass || move.Cards[0].Rank != 9 {
		t.Errorf("expected the 9 to be played over the premium 8, got %+v", move)
	}
}

func TestSmartBotFallsBackToPremium(t *testing.T) {
	table := domain.Classify([]domain.Card{{Suit: domain.Hearts, Rank: 5}})
	player := &domain.Player{ID: 0, Hand: []domain.Card{
		{Suit: domain.Clubs, Rank: 8},
		{Suit: domain.Diamonds, Rank: 3},
	}}
	game := gameWithTable(&table, player)

	move, err := (&SmartBot{}).CalculateMove(game, player)
	if err != nil {
		t.Fatalf("calculate move: %v", err)
	}
	if move.Pass || move.Cards[0].Rank != 8 {
		t.Errorf("only the premium 8 beats the 5, expected it played, got %+v", move)
	}
}

func TestSmartBotLeadTieBreakIsDeterministic(t *testing.T) {
	// On an open table with two equally weak singles of the same rank the
	// first-enumerated (hand-order) candidate wins.
	player := &domain.Player{ID: 0, Hand: []domain.Card{
		{Suit: domain.Hearts, Rank: 4},
		{Suit: domain.Clubs, Rank: 4},
	}}
	game := gameWithTable(nil, player)

	for i := 0; i < 5; i++ {
		move, err := (&SmartBot{}).CalculateMove(game, player)
		if err != nil {
			t.Fatalf("calculate move: %v", err)
		}
		if move.Pass || move.Cards[0].Suit != domain.Hearts {
			t.Fatalf("run %d: expected the first-enumerated 4 of hearts, got %+v", i, move)
		}
	}
}

func TestBasicBotSpendsPremiumFreely(t *testing.T) {
	table := domain.Classify([]domain.Card{{Suit: domain.Hearts, Rank: 5}})
	player := &domain.Player{ID: 0, Hand: []domain.Card{
		{Suit: domain.Clubs, Rank: 8},
		{Suit: domain.Diamonds, Rank: 9},
	}}
	game := gameWithTable(&table, player)

	move, err := (&BasicBot{}).CalculateMove(game, player)
	if err != nil {
		t.Fatalf("calculate move: %v", err)
	}
	if move.Pass || move.Cards[0].Rank != 8 {
		t.Errorf("basic bot should play the weaker 8, got %+v", move)
	}
}

func TestNewBrainLevels(t *testing.T) {
	if b, err := NewBrain(BotLevelBasic); err != nil || b == nil {
		t.Errorf("basic brain: %v", err)
	}
	if b, err := NewBrain(BotLevelSmart); err != nil || b == nil {
		t.Errorf("smart brain: %v", err)
	}
	if _, err := NewBrain(BotLevel(99)); err == nil {
		t.Errorf("expected error for unknown level")
	}
}
