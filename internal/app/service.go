package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"daifugo/internal/bot"
	"daifugo/internal/domain"
)

var (
	ErrNotPlaying       = errors.New("round is not in the playing phase")
	ErrTooFewPlayers    = errors.New("a round needs at least two players")
	ErrUnknownSeat      = errors.New("no such seat")
	ErrNotYourTurn      = errors.New("it is not this seat's turn")
	ErrPlayerFinished   = errors.New("player has already finished")
	ErrCardsNotInHand   = errors.New("selection includes cards not in hand")
	ErrInvalidSelection = errors.New("selection does not form a playable combination")
	ErrCannotBeat       = errors.New("play does not beat the table")
	ErrHumanTurn        = errors.New("current turn belongs to a human seat")
)

// Upper bound on automated steps per resolve call. A 53-card round can
// never take this many turns, so hitting it means the turn loop is stuck.
const maxAutomatedSteps = 1000

// Service implements the Daifugo round use-cases. All game mutation flows
// through it; the domain package stays pure.
type Service struct {
	rng   *rand.Rand
	brain bot.Brain
}

// NewService builds a Service using the given rng for shuffling and the
// given level for automated seats. A nil rng gets a time-based seed.
func NewService(rng *rand.Rand, level bot.BotLevel) (*Service, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	brain, err := bot.NewBrain(level)
	if err != nil {
		return nil, err
	}
	return &Service{rng: rng, brain: brain}, nil
}

// StartRound deals a fresh round for numPlayers seats. humanSeat marks the
// seat controlled by a person; pass -1 for an all-automated round. The first
// turn goes to the holder of the cheapest card, lowest seat on ties.
func (s *Service) StartRound(numPlayers, humanSeat int) (*domain.Game, []Event, error) {
	if numPlayers < 2 {
		return nil, nil, ErrTooFewPlayers
	}
	if humanSeat < -1 || humanSeat >= numPlayers {
		return nil, nil, ErrUnknownSeat
	}

	deck := domain.NewDeck()
	domain.Shuffle(deck, s.rng)
	hands, err := domain.Deal(deck, numPlayers)
	if err != nil {
		return nil, nil, err
	}

	players := make([]*domain.Player, numPlayers)
	for i := range players {
		domain.SortHand(hands[i], false)
		players[i] = &domain.Player{
			ID:    i,
			Name:  seatName(i, i == humanSeat),
			Human: i == humanSeat,
			Hand:  hands[i],
		}
	}

	game := &domain.Game{
		Phase:       domain.PhasePlaying,
		Players:     players,
		CurrentTurn: firstTurnSeat(players),
		TableOwner:  -1,
		SuitLock:    domain.NoSuit,
	}

	events := make([]Event, 0, numPlayers+1)
	for i, p := range players {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: i, Hand: append([]domain.Card(nil), p.Hand...)},
			Recipients: []int{i},
		})
	}
	events = append(events, Event{
		Kind:    EventRoundStarted,
		Payload: RoundStartedPayload{FirstTurnSeat: game.CurrentTurn, NumPlayers: numPlayers},
	})
	return game, events, nil
}

func seatName(seat int, human bool) string {
	if human {
		return "You"
	}
	return bot.GetBotIdentity(seat).DisplayName
}

// firstTurnSeat finds the seat holding the single lowest-weight card under
// normal ordering.
func firstTurnSeat(players []*domain.Player) int {
	best, bestSeat := int(^uint(0)>>1), 0
	for seat, p := range players {
		for _, c := range p.Hand {
			if w := domain.Weight(c, false); w < best {
				best, bestSeat = w, seat
			}
		}
	}
	return bestSeat
}

// PlayCards validates and commits a card play for the given seat. Nothing is
// mutated unless every check passes.
func (s *Service) PlayCards(game *domain.Game, seat int, cards []domain.Card) ([]Event, error) {
	p, err := s.actor(game, seat)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, ErrInvalidSelection
	}
	if !domain.HandContains(p.Hand, cards) {
		return nil, ErrCardsNotInHand
	}
	play := domain.Classify(cards)
	if play.Kind == domain.PlayInvalid {
		return nil, ErrInvalidSelection
	}
	if !domain.Beats(play, game.Table, game.Revolution, game.SuitLock) {
		return nil, ErrCannotBeat
	}

	// Commit.
	p.Hand = domain.RemoveCards(p.Hand, play.Cards)
	fx := domain.PlayEffects(play)
	if fx.TogglesRevolution {
		game.Revolution = !game.Revolution
		for _, pl := range game.Players {
			domain.SortHand(pl.Hand, game.Revolution)
		}
	}

	prev := game.Table
	if prev != nil {
		game.Discards = append(game.Discards, prev.Cards...)
	}
	if fx.ClearsTable {
		game.Discards = append(game.Discards, play.Cards...)
		game.Table = nil
		game.TableOwner = -1
		game.SuitLock = domain.NoSuit
	} else {
		game.SuitLock = domain.UpdateSuitLock(prev, &play, game.SuitLock)
		game.Table = &play
		game.TableOwner = seat
	}
	game.ConsecutivePasses = 0

	events := make([]Event, 0, 3)

	if len(p.Hand) == 0 {
		s.finishPlayer(game, p)
		events = append(events, Event{
			Kind:    EventPlayerFinished,
			Payload: PlayerFinishedPayload{Seat: seat, Rank: p.Rank},
		})
	}

	over := domain.CountUnfinished(game) <= 1
	next := seat
	switch {
	case over:
		// no further turns
	case fx.ClearsTable && !p.Finished:
		// the clearing player leads again
	default:
		next = domain.NextUnfinishedSeat(game, seat)
	}
	if !over {
		game.CurrentTurn = next
	}

	played := Event{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			Seat:              seat,
			Cards:             append([]domain.Card(nil), play.Cards...),
			Kind:              play.Kind.String(),
			ClearedTable:      fx.ClearsTable,
			RevolutionToggled: fx.TogglesRevolution,
			Revolution:        game.Revolution,
			SuitLock:          game.SuitLock,
			NextTurnSeat:      next,
		},
	}
	events = append([]Event{played}, events...)

	if fx.ClearsTable && !over {
		events = append(events, Event{
			Kind:    EventTableCleared,
			Payload: TableClearedPayload{LeadSeat: next, ByEight: true},
		})
	}
	if over {
		events = append(events, s.endRound(game))
	}
	return events, nil
}

// PassTurn records a pass for the given seat. When every other unfinished
// player has passed on the table play, the table flushes and the lead
// returns to its owner, or to the next unfinished seat if the owner already
// went out.
func (s *Service) PassTurn(game *domain.Game, seat int) ([]Event, error) {
	if _, err := s.actor(game, seat); err != nil {
		return nil, err
	}

	game.ConsecutivePasses++
	events := make([]Event, 0, 2)

	flush := game.Table != nil && game.ConsecutivePasses >= domain.CountUnfinished(game)-1
	var next int
	if flush {
		owner := game.TableOwner
		game.Discards = append(game.Discards, game.Table.Cards...)
		game.Table = nil
		game.TableOwner = -1
		game.SuitLock = domain.NoSuit
		game.ConsecutivePasses = 0
		if owner >= 0 && !game.Players[owner].Finished {
			next = owner
		} else {
			next = domain.NextUnfinishedSeat(game, owner)
		}
	} else {
		next = domain.NextUnfinishedSeat(game, seat)
	}
	game.CurrentTurn = next

	events = append(events, Event{
		Kind:    EventTurnPassed,
		Payload: TurnPassedPayload{Seat: seat, NextTurnSeat: next},
	})
	if flush {
		events = append(events, Event{
			Kind:    EventTableCleared,
			Payload: TableClearedPayload{LeadSeat: next},
		})
	}
	return events, nil
}

// StepAutomated advances the round by exactly one automated turn.
func (s *Service) StepAutomated(game *domain.Game) ([]Event, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	seat := game.CurrentTurn
	p := game.Players[seat]
	if p.Human {
		return nil, ErrHumanTurn
	}

	move, err := s.brain.CalculateMove(game, p)
	if err != nil || move.Pass {
		return s.PassTurn(game, seat)
	}
	return s.PlayCards(game, seat, move.Cards)
}

// ResolveAutomated steps automated turns until the round ends or a human
// seat holds the turn.
func (s *Service) ResolveAutomated(game *domain.Game) ([]Event, error) {
	var events []Event
	for i := 0; i < maxAutomatedSteps; i++ {
		if game.Phase != domain.PhasePlaying || game.Players[game.CurrentTurn].Human {
			return events, nil
		}
		evs, err := s.StepAutomated(game)
		events = append(events, evs...)
		if err != nil {
			return events, err
		}
	}
	return events, fmt.Errorf("automated turns did not converge after %d steps", maxAutomatedSteps)
}

func (s *Service) actor(game *domain.Game, seat int) (*domain.Player, error) {
	if game.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	if seat < 0 || seat >= len(game.Players) {
		return nil, ErrUnknownSeat
	}
	p := game.Players[seat]
	if p.Finished {
		return nil, ErrPlayerFinished
	}
	if seat != game.CurrentTurn {
		return nil, ErrNotYourTurn
	}
	return p, nil
}

func (s *Service) finishPlayer(game *domain.Game, p *domain.Player) {
	p.Finished = true
	game.FinishOrder = append(game.FinishOrder, p.ID)
	p.Rank = len(game.FinishOrder)
}

// endRound assigns last place to the one remaining player and closes the
// round.
func (s *Service) endRound(game *domain.Game) Event {
	for _, p := range game.Players {
		if !p.Finished {
			s.finishPlayer(game, p)
		}
	}
	game.Phase = domain.PhaseEnded
	game.CurrentTurn = -1
	return Event{
		Kind:    EventRoundEnded,
		Payload: RoundEndedPayload{FinishOrder: append([]int(nil), game.FinishOrder...)},
	}
}
