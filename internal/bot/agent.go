package bot

import "daifugo/internal/domain"

// Agent represents an autonomous bot player bound to a seat.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// PlayAtSeat asks the agent to calculate a move for the given seat. An
// agent with no live player at the seat simply passes.
func (a *Agent) PlayAtSeat(game *domain.Game, seat int) (Move, error) {
	if seat < 0 || seat >= len(game.Players) {
		return Move{Pass: true}, nil
	}
	player := game.Players[seat]
	if player == nil || player.Finished || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}
	move, err := a.Strategy.CalculateMove(game, player)
	if err != nil {
		return Move{Pass: true}, err
	}
	return move, nil
}
