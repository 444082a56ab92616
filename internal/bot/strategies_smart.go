package bot

import (
	"sort"

	botinternal "daifugo/internal/bot/internal"
	"daifugo/internal/domain"
)

// SmartBot is the default policy: enumerate every legal candidate, rank by
// ascending weakness, and shed the weakest play that does not spend a
// premium (a rank-8 clearer or revolution-toggling 4-group). When only
// premium plays remain it falls back to the globally weakest one.
type SmartBot struct{}

func (b *SmartBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	legal := botinternal.LegalCandidates(player.Hand, game.Table, game.Revolution, game.SuitLock)
	if len(legal) == 0 {
		return Move{Pass: true}, nil
	}

	// Stable sort keeps first-enumerated order at equal scores, which pins
	// the tie-break behavior tests rely on.
	sort.SliceStable(legal, func(i, j int) bool {
		ki := botinternal.WeaknessKey(legal[i], game.Revolution)
		kj := botinternal.WeaknessKey(legal[j], game.Revolution)
		if ki != kj {
			return ki < kj
		}
		return legal[i].Kind < legal[j].Kind
	})

	for _, p := range legal {
		if !botinternal.IsPremium(p) {
			return Move{Cards: p.Cards}, nil
		}
	}
	return Move{Cards: legal[0].Cards}, nil
}
