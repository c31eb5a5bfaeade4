package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"shengji/internal/app"
	"shengji/internal/bot"
	"shengji/internal/config"
	"shengji/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

const botUserPrefix = "bot:"

// matchLabel is the indexed JSON label for match listing queries.
type matchLabel struct {
	Game  string `json:"game"`
	Open  int    `json:"open"`
	State string `json:"state"`
}

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats         []string                    `json:"seats"` // user IDs, empty string means seat is empty
	OwnerSeat     int                         `json:"owner_seat"`
	Tick          int64                       `json:"tick"`
	Presences     map[string]runtime.Presence `json:"-"`
	Engine        *app.Engine                 `json:"-"` // nil while the table is in the lobby
	Bots          map[string]*bot.Agent       `json:"-"`
	BotsEnabled   bool                        `json:"bots_enabled"`
	BotMinDelay   int                         `json:"bot_min_delay"`
	BotMaxDelay   int                         `json:"bot_max_delay"`
	BotAutoFill   int                         `json:"bot_auto_fill_delay"`
	BotWaitUntil  int64                       `json:"bot_wait_until"`
	SoloSinceTick int64                       `json:"solo_since_tick"`
	DeadlineTick  int64                       `json:"deadline_tick"` // tick when the engine deadline fires, 0 means unarmed
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

func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
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

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return strings.HasPrefix(userId, botUserPrefix)
}

func botUserId(seat int) string {
	return botUserPrefix + strconv.Itoa(seat)
}

// seatOfUser returns the seat index occupied by userId or -1.
func seatOfUser(seats []string, userId string) int {
	for i, s := range seats {
		if s == userId {
			return i
		}
	}
	return -1
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

type matchHandler struct{}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config, using defaults: %v", err)
	}
	cfg := config.GetGameConfig()
	playerCount := cfg.ToDomain().PlayerCount

	state := &MatchState{
		Seats:       make([]string, playerCount),
		OwnerSeat:   -1,
		Presences:   make(map[string]runtime.Presence),
		Bots:        make(map[string]*bot.Agent),
		BotMinDelay: 1,
		BotMaxDelay: 3,
		BotAutoFill: 5,
	}
	if cfg != nil && cfg.BotAutoFillDelaySecs > 0 {
		state.BotAutoFill = cfg.BotAutoFillDelaySecs
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["shengji_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["shengji_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["shengji_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i >= state.BotMinDelay {
			state.BotMaxDelay = i
		}
	}

	label, err := marshalLabel(state)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, label
}

func marshalLabel(state *MatchState) (string, error) {
	phase := "lobby"
	if state.Engine != nil {
		phase = "playing"
	}
	b, err := json.Marshal(matchLabel{
		Game:  "shengji",
		Open:  state.GetOpenSeatsCount(),
		State: phase,
	})
	if err != nil {
		return "", fmt.Errorf("marshal match label: %w", err)
	}
	return string(b), nil
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace (if game hasn't started)
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Engine == nil {
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

		// Assign seat: try empty seats first, then bots (if lobby)
		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Engine == nil {
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
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
			continue
		}
	}

	// Owner seat must belong to a human player.
	if matchState.OwnerSeat < 0 || !isHumanSeat(matchState.Seats, matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats)
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	// A rejoining player needs their hand again.
	if matchState.Engine != nil {
		for _, p := range presences {
			seat := seatOfUser(matchState.Seats, p.GetUserId())
			if seat < 0 {
				continue
			}
			hand := matchState.Engine.Hand(seat)
			if len(hand) == 0 {
				continue
			}
			mh.broadcastEvents(matchState, dispatcher, logger, []app.Event{{
				Kind:       app.EventHandDealt,
				Payload:    app.HandDealtPayload{Seat: seat, Hand: hand},
				Recipients: []int{seat},
			}})
		}
	}

	return matchState
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
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

		for i, seatUserId := range matchState.Seats {
			if seatUserId != p.GetUserId() {
				continue
			}
			if matchState.Engine != nil {
				// Mid-game the seat cannot stay empty; a bot takes over.
				botID := botUserId(i)
				matchState.Seats[i] = botID
				matchState.Bots[botID] = &bot.Agent{Seat: i}
				logger.Info("MatchLeave: User %s left mid-game, seat %d handed to %s.", p.GetUserId(), i, botID)
			} else {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
			}
			break
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats)
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		}
	}

	if shouldTerminateNoHumans(matchState.Seats) {
		if matchState.Engine != nil {
			mh.applyAndBroadcast(matchState, dispatcher, logger, app.Terminate{})
		}
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

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
		case OpStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case OpDeclareTrump:
			mh.handleCardAction(matchState, dispatcher, logger, msg, func(seat int, ids []int) app.Action {
				return app.Declare{Seat: seat, CardIDs: ids}
			})
		case OpNoSnatch:
			seat := seatOfUser(matchState.Seats, msg.GetUserId())
			if seat < 0 || matchState.Engine == nil {
				continue
			}
			mh.applyAndBroadcast(matchState, dispatcher, logger, app.NoSnatch{Seat: seat})
		case OpBuryKitty:
			mh.handleCardAction(matchState, dispatcher, logger, msg, func(seat int, ids []int) app.Action {
				return app.Bury{Seat: seat, CardIDs: ids}
			})
		case OpPlayCards:
			mh.handleCardAction(matchState, dispatcher, logger, msg, func(seat int, ids []int) app.Action {
				return app.Play{Seat: seat, CardIDs: ids}
			})
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	// Deadline enforcement for the blocking seat.
	if matchState.Engine != nil && matchState.DeadlineTick > 0 && tick >= matchState.DeadlineTick {
		logger.Debug("MatchLoop: Deadline elapsed at tick %d (phase %s).", tick, matchState.Engine.Phase())
		mh.applyAndBroadcast(matchState, dispatcher, logger, app.DeadlineElapsed{})
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	return matchState
}

// handleCardAction decodes a card-ids frame and routes it into the engine.
func (mh *matchHandler) handleCardAction(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData, build func(seat int, ids []int) app.Action) {
	senderID := msg.GetUserId()
	seat := seatOfUser(state.Seats, senderID)
	if seat < 0 {
		logger.Warn("handleCardAction: User %s has no seat.", senderID)
		return
	}
	if state.Engine == nil {
		logger.Warn("handleCardAction: Game not started.")
		return
	}

	var req cardIDsRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("handleCardAction: Invalid frame from %s: %v", senderID, err)
		return
	}

	mh.applyAndBroadcast(state, dispatcher, logger, build(seat, req.CardIDs))
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := seatOfUser(state.Seats, senderID)

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.Engine != nil {
		logger.Warn("StartGame: Game already in progress.")
		return
	}

	// Empty seats are filled with bots when allowed, otherwise the table
	// must be full.
	if state.GetOpenSeatsCount() > 0 {
		if !state.BotsEnabled {
			logger.Warn("StartGame: Cannot start with %d open seats.", state.GetOpenSeatsCount())
			return
		}
		mh.fillWithBots(state, logger)
	}

	cfg := config.GetGameConfig()
	state.Engine = app.NewEngine(cfg.ToDomain(), nil)
	events := state.Engine.StartRound()

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastMatchState(state, dispatcher, logger)
	mh.broadcastEvents(state, dispatcher, logger, events)
	mh.armDeadline(state)

	logger.Info("StartGame: Round dealt to %d players.", len(state.Seats))
}

func (mh *matchHandler) fillWithBots(state *MatchState, logger runtime.Logger) {
	for i, seat := range state.Seats {
		if seat != "" {
			continue
		}
		botID := botUserId(i)
		state.Seats[i] = botID
		state.Bots[botID] = &bot.Agent{Seat: i}
		logger.Info("fillWithBots: Added bot %s to seat %d", botID, i)
	}
}

// applyAndBroadcast feeds one action to the engine, fans out the
// resulting events and re-arms the deadline when state advanced.
func (mh *matchHandler) applyAndBroadcast(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, act app.Action) {
	if state.Engine == nil {
		return
	}
	events := state.Engine.Apply(act)
	mh.broadcastEvents(state, dispatcher, logger, events)

	advanced := false
	for _, ev := range events {
		if ev.Kind != app.EventActionRejected {
			advanced = true
			break
		}
	}
	if advanced {
		mh.armDeadline(state)
		state.BotWaitUntil = 0
	}
}

// armDeadline schedules the phase timeout relative to the current tick.
func (mh *matchHandler) armDeadline(state *MatchState) {
	if state.Engine == nil {
		state.DeadlineTick = 0
		return
	}
	cfg := config.GetGameConfig()
	switch state.Engine.Phase() {
	case app.PhaseDeclaringTrump:
		state.DeadlineTick = state.Tick + int64(cfg.DeclareWindow())
	case app.PhaseBuryingKitty, app.PhasePlayingTricks:
		state.DeadlineTick = state.Tick + int64(cfg.TurnDuration())
	default:
		state.DeadlineTick = 0
	}
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill the lobby when a single human has waited long enough.
	if state.Engine == nil {
		if state.GetHumanPlayerCount() == 1 && state.GetOpenSeatsCount() > 0 {
			if state.SoloSinceTick == 0 {
				state.SoloSinceTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}
			if state.Tick-state.SoloSinceTick >= int64(state.BotAutoFill) {
				mh.fillWithBots(state, logger)
				mh.updateLabel(state, dispatcher, logger)
				mh.broadcastMatchState(state, dispatcher, logger)
				state.SoloSinceTick = 0
			}
		} else {
			state.SoloSinceTick = 0
		}
		return
	}

	switch state.Engine.Phase() {
	case app.PhaseDeclaringTrump:
		// Bots never claim trump; their decline lets the window close as
		// soon as the humans have spoken.
		for seat, userID := range state.Seats {
			if isBotUserId(userID) {
				mh.applyAndBroadcast(state, dispatcher, logger, app.NoSnatch{Seat: seat})
				if state.Engine == nil || state.Engine.Phase() != app.PhaseDeclaringTrump {
					return
				}
			}
		}
	case app.PhaseBuryingKitty:
		banker := state.Engine.BankerSeat()
		if !isBotUserId(state.Seats[banker]) {
			return
		}
		if !mh.botReady(state, logger, state.Seats[banker]) {
			return
		}
		hand := state.Engine.Hand(banker)
		kittySize := config.GetGameConfig().ToDomain().KittySize()
		if kittySize <= 0 || kittySize > len(hand) {
			return
		}
		mh.applyAndBroadcast(state, dispatcher, logger, app.Bury{
			Seat: banker, CardIDs: domain.IDsOf(hand[:kittySize]),
		})
	case app.PhasePlayingTricks:
		turn := state.Engine.TurnSeat()
		userID := state.Seats[turn]
		if !isBotUserId(userID) {
			state.BotWaitUntil = 0
			return
		}
		if !mh.botReady(state, logger, userID) {
			return
		}

		agent, exists := state.Bots[userID]
		if !exists {
			agent = &bot.Agent{Seat: turn}
			state.Bots[userID] = agent
		}

		ctx := state.Engine.Round().Ctx
		hand := state.Engine.Hand(turn)
		var ids []int
		if trick := state.Engine.Trick(); trick == nil {
			ids = agent.ChooseLead(ctx, hand)
		} else {
			ids = agent.ChooseFollow(ctx, trick.Lead, hand)
		}
		if len(ids) == 0 {
			logger.Error("processBots: Bot %s produced no move, forcing deadline.", userID)
			mh.applyAndBroadcast(state, dispatcher, logger, app.DeadlineElapsed{})
			return
		}
		mh.applyAndBroadcast(state, dispatcher, logger, app.Play{Seat: turn, CardIDs: ids})
	}
}

// botReady applies the humanizing delay before a bot acts.
func (mh *matchHandler) botReady(state *MatchState, logger runtime.Logger, userID string) bool {
	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if state.BotMaxDelay > state.BotMinDelay {
			delay += rand.Intn(state.BotMaxDelay - state.BotMinDelay + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s will act at tick %d (current %d)", userID, state.BotWaitUntil, state.Tick)
		return false
	}
	if state.Tick < state.BotWaitUntil {
		return false
	}
	state.BotWaitUntil = 0
	return true
}

// broadcastEvents encodes and dispatches engine events, honoring seat
// targeting for private frames.
func (mh *matchHandler) broadcastEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, data, err := encodeEvent(ev)
		if err != nil {
			logger.Error("broadcastEvents: %v", err)
			continue
		}

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
			// Targeted frames with no connected recipient (bot seats)
			// must not leak to the table.
			if len(recipients) == 0 {
				continue
			}
		}

		if err := dispatcher.BroadcastMessage(opCode, data, recipients, nil, true); err != nil {
			logger.Error("broadcastEvents: Broadcast failed for %s: %v", ev.Kind, err)
		}

		if ev.Kind == app.EventGameOver {
			state.Engine = nil
			state.DeadlineTick = 0
			state.BotWaitUntil = 0
			mh.updateLabel(state, dispatcher, logger)
		}
	}
}

// wirePlayer is one seat entry in the table snapshot.
type wirePlayer struct {
	UserID         string `json:"user_id"`
	Seat           int    `json:"seat"`
	IsOwner        bool   `json:"is_owner"`
	IsBot          bool   `json:"is_bot"`
	DisplayName    string `json:"display_name"`
	CardsRemaining int    `json:"cards_remaining"`
}

type matchSnapshot struct {
	Seats      []string     `json:"seats"`
	OwnerSeat  int          `json:"owner_seat"`
	Tick       int64        `json:"tick"`
	Phase      string       `json:"phase"`
	TurnSeat   int          `json:"turn_seat"`
	BankerSeat int          `json:"banker_seat"`
	Levels     [2]int       `json:"levels"`
	Players    []wirePlayer `json:"players"`
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot := matchSnapshot{
		Seats:      state.Seats,
		OwnerSeat:  state.OwnerSeat,
		Tick:       state.Tick,
		Phase:      "lobby",
		TurnSeat:   -1,
		BankerSeat: -1,
	}
	if state.Engine != nil {
		snapshot.Phase = string(state.Engine.Phase())
		snapshot.TurnSeat = state.Engine.TurnSeat()
		snapshot.BankerSeat = state.Engine.BankerSeat()
		snapshot.Levels = toWireLevels(state.Engine.Levels())
	}

	for i, userId := range state.Seats {
		if userId == "" {
			continue
		}
		displayName := userId
		if p, exists := state.Presences[userId]; exists {
			displayName = p.GetUsername()
		}
		cardsRemaining := 0
		if state.Engine != nil {
			cardsRemaining = len(state.Engine.Hand(i))
		}
		snapshot.Players = append(snapshot.Players, wirePlayer{
			UserID:         userId,
			Seat:           i,
			IsOwner:        i == state.OwnerSeat,
			IsBot:          isBotUserId(userId),
			DisplayName:    displayName,
			CardsRemaining: cardsRemaining,
		})
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastMatchState: Failed to marshal snapshot: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpMatchSnapshot, data, nil, nil, true); err != nil {
		logger.Error("broadcastMatchState: Broadcast failed: %v", err)
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := marshalLabel(state)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
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
