package nakama

import "daifugo/internal/domain"

// Wire payloads are JSON. Server events reuse the app package's payload
// structs directly; only client requests and lobby messages live here.

// PlayCardsRequest is the client payload for OpPlayCards.
type PlayCardsRequest struct {
	Cards []domain.Card `json:"cards"`
}

// MatchLabel is the queryable label attached to the match.
type MatchLabel struct {
	Game  string `json:"game"`
	Phase string `json:"phase"` // lobby or playing
	Open  int    `json:"open"`
}

// RosterSeat describes one seat in the lobby roster broadcast.
type RosterSeat struct {
	Seat        int    `json:"seat"`
	UserID      string `json:"user_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
}

// RosterUpdate is broadcast on joins, leaves and bot fills.
type RosterUpdate struct {
	Seats     []RosterSeat `json:"seats"`
	OwnerSeat int          `json:"owner_seat"`
}

// GameError is sent privately to the seat whose request was rejected.
type GameError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
