package app

import (
	"fmt"

	"daifugo/internal/domain"
)

// EventKind identifies emitted round events for port dispatch.
type EventKind string

const (
	EventRoundStarted   EventKind = "round_started"
	EventHandDealt      EventKind = "hand_dealt"
	EventCardPlayed     EventKind = "card_played"
	EventTurnPassed     EventKind = "turn_passed"
	EventTableCleared   EventKind = "table_cleared"
	EventPlayerFinished EventKind = "player_finished"
	EventRoundEnded     EventKind = "round_ended"
)

// Event is a round event with optional targeted recipient seats. An empty
// Recipients means broadcast.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int
}

type RoundStartedPayload struct {
	FirstTurnSeat int `json:"first_turn_seat"`
	NumPlayers    int `json:"num_players"`
}

type HandDealtPayload struct {
	Seat int           `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

type CardPlayedPayload struct {
	Seat              int           `json:"seat"`
	Cards             []domain.Card `json:"cards"`
	Kind              string        `json:"kind"`
	ClearedTable      bool          `json:"cleared_table"`
	RevolutionToggled bool          `json:"revolution_toggled"`
	Revolution        bool          `json:"revolution"`
	SuitLock          domain.Suit   `json:"suit_lock"`
	NextTurnSeat      int           `json:"next_turn_seat"`
}

type TurnPassedPayload struct {
	Seat         int `json:"seat"`
	NextTurnSeat int `json:"next_turn_seat"`
}

type TableClearedPayload struct {
	LeadSeat int  `json:"lead_seat"`
	ByEight  bool `json:"by_eight"`
}

type PlayerFinishedPayload struct {
	Seat int `json:"seat"`
	Rank int `json:"rank"`
}

type RoundEndedPayload struct {
	FinishOrder []int `json:"finish_order"` // player IDs, first place onward
}

// Describe renders a human-readable message for an event, suitable for the
// snapshot's message field.
func Describe(g *domain.Game, ev Event) string {
	name := func(seat int) string {
		if seat >= 0 && seat < len(g.Players) {
			return g.Players[seat].Name
		}
		return fmt.Sprintf("seat %d", seat)
	}

	switch p := ev.Payload.(type) {
	case RoundStartedPayload:
		return fmt.Sprintf("Round started, %s leads", name(p.FirstTurnSeat))
	case CardPlayedPayload:
		msg := fmt.Sprintf("%s played %s", name(p.Seat), describeCards(p.Kind, p.Cards))
		if p.RevolutionToggled {
			msg += ", revolution!"
		}
		if p.ClearedTable {
			msg += ", the eight clears the table"
		}
		if p.SuitLock != domain.NoSuit {
			msg += fmt.Sprintf(", %s locked", p.SuitLock)
		}
		return msg
	case TurnPassedPayload:
		return fmt.Sprintf("%s passed", name(p.Seat))
	case TableClearedPayload:
		return fmt.Sprintf("Table cleared, %s leads", name(p.LeadSeat))
	case PlayerFinishedPayload:
		return fmt.Sprintf("%s finished in place %d", name(p.Seat), p.Rank)
	case RoundEndedPayload:
		return "Round over"
	default:
		return ""
	}
}

func describeCards(kind string, cards []domain.Card) string {
	if len(cards) == 1 {
		return cards[0].String()
	}
	return fmt.Sprintf("a %s of %d cards", kind, len(cards))
}
