package bot

import "daifugo/internal/domain"

// Move represents the decision made by an automated player: pass, or the
// exact cards to place.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// Brain is the interface every bot strategy implements. Implementations are
// pure over the supplied state and never mutate it; the app service feeds
// the returned move back through the same validation path as human
// commands.
type Brain interface {
	CalculateMove(game *domain.Game, player *domain.Player) (Move, error)
}
