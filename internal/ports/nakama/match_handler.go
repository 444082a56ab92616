package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"time"

	"daifugo/internal/app"
	"daifugo/internal/bot"
	"daifugo/internal/config"
	"daifugo/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats                []string                    `json:"seats"`      // user IDs, empty string means the seat is open
	OwnerSeat            int                         `json:"owner_seat"` // seat index of the match owner
	Tick                 int64                       `json:"tick"`
	Presences            map[string]runtime.Presence `json:"-"` // userID -> presence for targeted messaging
	App                  *app.Service                `json:"-"`
	Game                 *domain.Game                `json:"-"` // nil while in the lobby
	BotMinDelay          int64                       `json:"bot_min_delay"`           // min ticks a bot waits before acting
	BotMaxDelay          int64                       `json:"bot_max_delay"`           // max ticks a bot waits before acting
	BotAutoFillDelay     int64                       `json:"bot_auto_fill_delay"`     // ticks before filling a solo lobby with bots
	BotWaitUntil         int64                       `json:"bot_wait_until"`          // tick when the pending bot acts
	LastSinglePlayerTick int64                       `json:"last_single_player_tick"` // tick when a lone human started waiting
	Bots                 map[string]*bot.Agent       `json:"-"`                       // active bot agents by user ID
}

// addBot seats a bot identity at seat i and registers its agent.
func (ms *MatchState) addBot(i int, logger runtime.Logger) {
	identity := bot.GetBotIdentity(i)
	ms.Seats[i] = identity.UserID
	agent, err := bot.NewAgent(identity)
	if err != nil {
		logger.Error("addBot: Failed to create agent for %s: %v", identity.UserID, err)
		return
	}
	ms.Bots[identity.UserID] = agent
	logger.Info("addBot: Added bot %s to seat %d", identity.DisplayName, i)
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

// roundActive reports whether a round is currently being played.
func (ms *MatchState) roundActive() bool {
	return ms.Game != nil && ms.Game.Phase == domain.PhasePlaying
}

func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

func findSeat(seats []string, userID string) int {
	for i, uid := range seats {
		if uid == userID {
			return i
		}
	}
	return -1
}

type matchHandler struct{}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	cfg := config.GetGameConfig()

	svc, err := app.NewService(rand.New(rand.NewSource(time.Now().UnixNano())), bot.ParseLevel(cfg.BotLevel))
	if err != nil {
		logger.Error("MatchInit: Failed to build service: %v", err)
		return nil, 0, ""
	}

	state := &MatchState{
		Seats:            make([]string, cfg.NumPlayers),
		OwnerSeat:        -1,
		Tick:             time.Now().Unix(),
		Presences:        make(map[string]runtime.Presence),
		App:              svc,
		BotMinDelay:      delayTicks(cfg.BotMinDelaySeconds),
		BotMaxDelay:      delayTicks(cfg.BotMaxDelaySeconds),
		BotAutoFillDelay: 5,
		Bots:             make(map[string]*bot.Agent),
	}
	if state.BotMaxDelay < state.BotMinDelay {
		state.BotMaxDelay = state.BotMinDelay
	}

	tickRate := 1
	return state, tickRate, marshalLabel(state, logger)
}

// delayTicks converts a configured delay in seconds to match ticks, at least one.
func delayTicks(seconds float64) int64 {
	t := int64(seconds)
	if t < 1 {
		t = 1
	}
	return t
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join when a seat is open, or a bot can be displaced before the
	// round starts.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if !matchState.roundActive() {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}
		if !assigned && !matchState.roundActive() {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
			continue
		}

		// Late joiners of a running round get a spectator snapshot.
		if matchState.Game != nil {
			mh.sendSnapshot(matchState, dispatcher, logger, p.GetUserId(), "round in progress")
		}
	}

	if !isHumanSeat(matchState.Seats, matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats)
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastRoster(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		i := findSeat(matchState.Seats, p.GetUserId())
		if i < 0 {
			continue
		}
		matchState.Seats[i] = ""
		logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)

		// A deserted seat plays on as an automated one so the round can
		// still run to completion.
		if matchState.roundActive() && i < len(matchState.Game.Players) {
			matchState.Game.Players[i].Human = false
		}
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats)
	if matchState.OwnerSeat < 0 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastRoster(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartRound, OpRequestNewRound:
			mh.handleStartRound(matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(matchState, dispatcher, logger, msg)
		case OpPassTurn:
			mh.handlePassTurn(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.processBots(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Fill a solo lobby with bot seats after a grace period.
	if !state.roundActive() {
		if state.GetHumanPlayerCount() == 1 && state.GetOpenSeatsCount() > 0 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}
			if state.Tick-state.LastSinglePlayerTick >= state.BotAutoFillDelay {
				for i, seat := range state.Seats {
					if seat == "" {
						state.addBot(i, logger)
					}
				}
				state.LastSinglePlayerTick = 0
				mh.updateLabel(state, dispatcher, logger)
				mh.broadcastRoster(state, dispatcher, logger)
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// Pace automated turns so they read naturally in a client.
	if state.Game.Players[state.Game.CurrentTurn].Human {
		state.BotWaitUntil = 0
		return
	}
	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if span := state.BotMaxDelay - state.BotMinDelay; span > 0 {
			delay += rand.Int63n(span + 1)
		}
		state.BotWaitUntil = state.Tick + delay
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	seat := state.Game.CurrentTurn
	userID := state.Seats[seat]
	agent, ok := state.Bots[userID]
	if !ok {
		// Deserted human seats play on without a registered agent.
		events, err := state.App.StepAutomated(state.Game)
		if err != nil {
			logger.Error("processBots: Automated turn failed: %v", err)
			return
		}
		for _, ev := range events {
			mh.broadcastEvent(state, dispatcher, logger, ev)
		}
		mh.broadcastSnapshots(state, dispatcher, logger, events)
		return
	}

	move, err := agent.PlayAtSeat(state.Game, seat)
	if err != nil {
		logger.Error("processBots: Bot %s failed to calculate move: %v", userID, err)
	}

	var events []app.Event
	if move.Pass {
		events, err = state.App.PassTurn(state.Game, seat)
	} else {
		events, err = state.App.PlayCards(state.Game, seat, move.Cards)
	}
	if err != nil {
		logger.Error("processBots: Bot %s (seat %d) move rejected: %v", userID, seat, err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.broadcastSnapshots(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleStartRound(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := findSeat(state.Seats, senderID)

	logger.Info("StartRound: Request from %s (seat=%d, owner_seat=%d)", senderID, senderSeat, state.OwnerSeat)

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartRound: User %s is not the owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.roundActive() {
		logger.Warn("StartRound: A round is already running.")
		return
	}

	// Empty seats play as bots so every round is full.
	filled := false
	for i, seat := range state.Seats {
		if seat == "" {
			state.addBot(i, logger)
			filled = true
		}
	}
	if filled {
		mh.broadcastRoster(state, dispatcher, logger)
	}

	game, events, err := state.App.StartRound(len(state.Seats), -1)
	if err != nil {
		logger.Error("StartRound: Failed to start round: %v", err)
		return
	}

	// The service deals seat-agnostic hands; the roster decides which
	// seats are live players.
	for i, uid := range state.Seats {
		if isBotUserId(uid) {
			continue
		}
		game.Players[i].Human = true
		game.Players[i].Name = uid
		if p, ok := state.Presences[uid]; ok {
			game.Players[i].Name = p.GetUsername()
		}
	}

	state.Game = game
	state.BotWaitUntil = 0
	mh.updateLabel(state, dispatcher, logger)

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.broadcastSnapshots(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlayCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := findSeat(state.Seats, senderID)

	if state.Game == nil {
		logger.Warn("handlePlayCards: Round not started.")
		return
	}

	var request PlayCardsRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handlePlayCards: Failed to unmarshal PlayCardsRequest: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed play request")
		return
	}

	events, err := state.App.PlayCards(state.Game, senderSeat, request.Cards)
	if err != nil {
		logger.Warn("handlePlayCards: User %s (seat %d) failed to play: %v. Requested: %+v", senderID, senderSeat, err, request.Cards)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.broadcastSnapshots(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePassTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := findSeat(state.Seats, senderID)

	if state.Game == nil {
		logger.Warn("handlePassTurn: Round not started.")
		return
	}

	events, err := state.App.PassTurn(state.Game, senderSeat)
	if err != nil {
		logger.Warn("handlePassTurn: User %s (seat %d) failed to pass: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.broadcastSnapshots(state, dispatcher, logger, events)
}

// broadcastEvent maps an app event to its opcode and dispatches it.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	switch ev.Kind {
	case app.EventRoundStarted:
		opCode = OpRoundStarted
	case app.EventHandDealt:
		opCode = OpHandDealt
	case app.EventCardPlayed:
		opCode = OpCardPlayed
	case app.EventTurnPassed:
		opCode = OpTurnPassed
	case app.EventTableCleared:
		opCode = OpTableCleared
	case app.EventPlayerFinished:
		opCode = OpPlayerFinished
	case app.EventRoundEnded:
		opCode = OpRoundEnded
		mh.updateLabel(state, dispatcher, logger)
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Targeted events go only to connected human recipients. An event
	// aimed solely at bot seats is dropped, never broadcast.
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, seat := range ev.Recipients {
			if seat < 0 || seat >= len(state.Seats) {
				continue
			}
			if p, ok := state.Presences[state.Seats[seat]]; ok {
				recipients = append(recipients, p)
			}
		}
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// broadcastSnapshots sends every seated human a personal snapshot, with the
// last event's description as the message.
func (mh *matchHandler) broadcastSnapshots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	if state.Game == nil {
		return
	}
	message := ""
	if len(events) > 0 {
		message = app.Describe(state.Game, events[len(events)-1])
	}
	for _, uid := range state.Seats {
		if uid == "" || isBotUserId(uid) {
			continue
		}
		mh.sendSnapshot(state, dispatcher, logger, uid, message)
	}
}

// sendSnapshot sends a personal round snapshot to one user.
func (mh *matchHandler) sendSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID, message string) {
	presence, ok := state.Presences[userID]
	if !ok || state.Game == nil {
		return
	}
	snap := app.BuildSnapshot(state.Game, findSeat(state.Seats, userID), message)
	bytes, err := json.Marshal(snap)
	if err != nil {
		logger.Error("Failed to marshal snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpSnapshot, bytes, []runtime.Presence{presence}, nil, true)
}

// sendError sends a GameError to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(GameError{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal GameError: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}
	dispatcher.BroadcastMessage(OpError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) broadcastRoster(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	roster := RosterUpdate{
		Seats:     make([]RosterSeat, len(state.Seats)),
		OwnerSeat: state.OwnerSeat,
	}
	for i, uid := range state.Seats {
		seat := RosterSeat{Seat: i, UserID: uid, IsOwner: i == state.OwnerSeat}
		switch {
		case uid == "":
		case isBotUserId(uid):
			seat.IsBot = true
			seat.DisplayName = bot.GetBotDisplayName(uid)
		default:
			seat.DisplayName = uid
			if p, ok := state.Presences[uid]; ok {
				seat.DisplayName = p.GetUsername()
			}
		}
		roster.Seats[i] = seat
	}

	bytes, err := json.Marshal(roster)
	if err != nil {
		logger.Error("Failed to marshal roster: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpPlayerJoined, bytes, nil, nil, true)
}

func marshalLabel(state *MatchState, logger runtime.Logger) string {
	phase := "lobby"
	if state.roundActive() {
		phase = "playing"
	}
	label := MatchLabel{Game: "daifugo", Phase: phase, Open: state.GetOpenSeatsCount()}
	bytes, err := json.Marshal(label)
	if err != nil {
		logger.Error("Failed to marshal label: %v", err)
		return "{}"
	}
	return string(bytes)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if err := dispatcher.MatchLabelUpdate(marshalLabel(state, logger)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
