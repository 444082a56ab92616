package bot

import (
	botinternal "daifugo/internal/bot/internal"
	"daifugo/internal/domain"
)

// BasicBot sheds the weakest legal candidate, premium plays included. It
// exists as a baseline opponent and for tuning comparisons.
type BasicBot struct{}

func (b *BasicBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	legal := botinternal.LegalCandidates(player.Hand, game.Table, game.Revolution, game.SuitLock)
	if len(legal) == 0 {
		return Move{Pass: true}, nil
	}

	best := legal[0]
	bestKey := botinternal.WeaknessKey(best, game.Revolution)
	for _, p := range legal[1:] {
		if k := botinternal.WeaknessKey(p, game.Revolution); k < bestKey {
			best, bestKey = p, k
		}
	}
	return Move{Cards: best.Cards}, nil
}
