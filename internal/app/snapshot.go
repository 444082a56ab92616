package app

import "daifugo/internal/domain"

// PhaseView tells a client what it is waiting on.
type PhaseView string

const (
	PhaseAwaitingHuman     PhaseView = "awaiting_human"
	PhaseAwaitingAutomated PhaseView = "awaiting_automated"
	PhaseRoundOver         PhaseView = "round_over"
)

// PlayerSummary is the public view of a seat. It never exposes hand
// contents, only the count.
type PlayerSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Human     bool   `json:"human"`
	CardCount int    `json:"card_count"`
	Finished  bool   `json:"finished"`
	Rank      int    `json:"rank"`
}

// Snapshot is the full client-facing view of a round, built for the seat
// given to BuildSnapshot. Only that seat's hand is included.
type Snapshot struct {
	Players           []PlayerSummary `json:"players"`
	CurrentTurn       int             `json:"current_turn"`
	ViewerSeat        int             `json:"viewer_seat"`
	ViewerHand        []domain.Card   `json:"viewer_hand,omitempty"`
	Table             *domain.Play    `json:"table,omitempty"`
	TableOwner        int             `json:"table_owner"`
	ConsecutivePasses int             `json:"consecutive_passes"`
	Revolution        bool            `json:"revolution"`
	SuitLock          domain.Suit     `json:"suit_lock"`
	Phase             PhaseView       `json:"phase"`
	FinishOrder       []int           `json:"finish_order,omitempty"`
	Message           string          `json:"message,omitempty"`
}

// BuildSnapshot renders the round from the perspective of viewerSeat. Pass
// -1 for a spectator view with no hand.
func BuildSnapshot(game *domain.Game, viewerSeat int, message string) Snapshot {
	snap := Snapshot{
		Players:           make([]PlayerSummary, len(game.Players)),
		CurrentTurn:       game.CurrentTurn,
		ViewerSeat:        viewerSeat,
		TableOwner:        game.TableOwner,
		ConsecutivePasses: game.ConsecutivePasses,
		Revolution:        game.Revolution,
		SuitLock:          game.SuitLock,
		Phase:             phaseView(game),
		FinishOrder:       append([]int(nil), game.FinishOrder...),
		Message:           message,
	}
	for i, p := range game.Players {
		snap.Players[i] = PlayerSummary{
			ID:        p.ID,
			Name:      p.Name,
			Human:     p.Human,
			CardCount: len(p.Hand),
			Finished:  p.Finished,
			Rank:      p.Rank,
		}
	}
	if viewerSeat >= 0 && viewerSeat < len(game.Players) {
		snap.ViewerHand = append([]domain.Card(nil), game.Players[viewerSeat].Hand...)
	}
	if game.Table != nil {
		table := *game.Table
		table.Cards = append([]domain.Card(nil), game.Table.Cards...)
		snap.Table = &table
	}
	return snap
}

func phaseView(game *domain.Game) PhaseView {
	if game.Phase != domain.PhasePlaying {
		return PhaseRoundOver
	}
	if game.Players[game.CurrentTurn].Human {
		return PhaseAwaitingHuman
	}
	return PhaseAwaitingAutomated
}
