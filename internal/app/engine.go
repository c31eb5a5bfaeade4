package app

import (
	"math/rand"
	"time"

	"shengji/internal/domain"
)

// Phase is the lifecycle stage of the round state machine. Transitions
// are one-directional except the round loop back to dealing.
type Phase string

const (
	PhaseDealing        Phase = "dealing"
	PhaseDeclaringTrump Phase = "declaring_trump"
	PhaseBuryingKitty   Phase = "burying_kitty"
	PhasePlayingTricks  Phase = "playing_tricks"
	PhaseRoundScoring   Phase = "round_scoring"
	PhaseGameOver       Phase = "game_over"
)

// TrumpCandidate is the current best trump claim during declaration.
type TrumpCandidate struct {
	Seat     int
	Trump    domain.Suit
	Strength int
}

// Engine drives one game: it owns exactly one RoundState at a time plus
// the cross-round accumulators (team levels, banker seat). It is a
// synchronous state machine; the caller serializes all actions. Every
// rejected action leaves state untouched.
type Engine struct {
	cfg domain.GameConfig
	rng *rand.Rand

	phase      Phase
	levels     [2]domain.Rank
	bankerSeat int
	trump      domain.Suit
	firstRound bool

	round     *domain.RoundState
	candidate *TrumpCandidate
	passes    map[int]bool
	trick     *domain.TrickState
	turnSeat  int
}

// NewEngine constructs an Engine with the provided rng or a time-seeded
// default. Call StartRound to deal the first round.
func NewEngine(cfg domain.GameConfig, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		cfg:        cfg,
		rng:        rng,
		phase:      PhaseDealing,
		levels:     cfg.StartingLevels,
		bankerSeat: cfg.StartingBanker,
		firstRound: true,
	}
}

func (e *Engine) Phase() Phase              { return e.phase }
func (e *Engine) BankerSeat() int           { return e.bankerSeat }
func (e *Engine) TurnSeat() int             { return e.turnSeat }
func (e *Engine) Levels() [2]domain.Rank    { return e.levels }
func (e *Engine) Round() *domain.RoundState { return e.round }
func (e *Engine) Trick() *domain.TrickState { return e.trick }

// Hand returns a copy of a seat's current hand.
func (e *Engine) Hand(seat int) []domain.Card {
	if e.round == nil || seat < 0 || seat >= len(e.round.Hands) {
		return nil
	}
	return append([]domain.Card(nil), e.round.Hands[seat]...)
}

// StartRound deals a fresh round and opens the declare window.
func (e *Engine) StartRound() []Event {
	level := e.levels[domain.TeamOfSeat(e.bankerSeat)]
	e.round = &domain.RoundState{
		Ctx:        domain.RoundContext{Level: level, Trump: e.trump},
		BankerSeat: e.bankerSeat,
		Hands:      make([][]domain.Card, e.cfg.PlayerCount),
	}

	deck := domain.NewDoubleDeck()
	e.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	handSize := e.cfg.HandSize()
	events := make([]Event, 0, e.cfg.PlayerCount)
	for seat := 0; seat < e.cfg.PlayerCount; seat++ {
		hand := append([]domain.Card(nil), deck[seat*handSize:(seat+1)*handSize]...)
		e.round.Ctx.SortHand(hand)
		e.round.Hands[seat] = hand
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: hand},
			Recipients: []int{seat},
		})
	}
	e.round.Kitty = append([]domain.Card(nil), deck[e.cfg.PlayerCount*handSize:]...)

	e.candidate = nil
	e.passes = make(map[int]bool)
	e.trick = nil
	e.phase = PhaseDeclaringTrump
	return events
}

func reject(seat int, reason domain.RejectReason, expected []int) Event {
	return Event{
		Kind:    EventActionRejected,
		Payload: ActionRejectedPayload{Seat: seat, Reason: reason, ExpectedIDs: expected},
	}
}

// Apply runs one inbound action to completion and returns the resulting
// events. Rejections are events too; they never mutate state.
func (e *Engine) Apply(act Action) []Event {
	switch a := act.(type) {
	case Declare:
		return e.applyDeclare(a.Seat, a.CardIDs)
	case Snatch:
		return e.applyDeclare(a.Seat, a.CardIDs)
	case NoSnatch:
		return e.applyNoSnatch(a.Seat)
	case Bury:
		return e.applyBury(a.Seat, a.CardIDs)
	case Play:
		return e.applyPlay(a.Seat, a.CardIDs)
	case DeadlineElapsed:
		return e.applyDeadline()
	case Terminate:
		return e.terminate()
	}
	return []Event{reject(act.ActorSeat(), domain.ReasonMalformedInput, nil)}
}

func (e *Engine) validSeat(seat int) bool {
	return seat >= 0 && seat < e.cfg.PlayerCount
}

// applyDeclare handles both DECLARE and SNATCH: a claim is the level-rank
// cards of one suit, and a stronger claim (more cards) supersedes the
// candidate and restarts the declare window.
func (e *Engine) applyDeclare(seat int, ids []int) []Event {
	if e.phase != PhaseDeclaringTrump {
		return []Event{reject(seat, domain.ReasonWrongPhase, nil)}
	}
	if !e.validSeat(seat) {
		return []Event{reject(seat, domain.ReasonMalformedInput, nil)}
	}
	picked, ok := domain.PickByID(e.round.Hands[seat], ids)
	if !ok || len(picked) == 0 || len(picked) > 2 {
		return []Event{reject(seat, domain.ReasonMalformedInput, nil)}
	}
	suit := picked[0].Suit
	for _, c := range picked {
		if c.Rank != e.round.Ctx.Level || c.Suit != suit || c.IsJoker() {
			return []Event{reject(seat, domain.ReasonInvalidShape, nil)}
		}
	}

	strength := len(picked)
	if e.candidate != nil && strength <= e.candidate.Strength {
		// Reuses SHAPE_MISMATCH: the claim's shape is too weak to
		// supersede the candidate, the same ladder a follow play fails
		// on an unmet pair requirement.
		return []Event{reject(seat, domain.ReasonShapeMismatch, nil)}
	}

	e.candidate = &TrumpCandidate{Seat: seat, Trump: suit, Strength: strength}
	e.passes = make(map[int]bool) // window restarts, passes are void
	return []Event{{
		Kind: EventTrumpDeclared,
		Payload: TrumpDeclaredPayload{
			Seat: seat, Trump: suit, Strength: strength, WindowReset: true,
		},
	}}
}

func (e *Engine) applyNoSnatch(seat int) []Event {
	if e.phase != PhaseDeclaringTrump {
		return []Event{reject(seat, domain.ReasonWrongPhase, nil)}
	}
	if !e.validSeat(seat) {
		return []Event{reject(seat, domain.ReasonMalformedInput, nil)}
	}
	e.passes[seat] = true

	// Everyone else declining closes the window early.
	for s := 0; s < e.cfg.PlayerCount; s++ {
		if e.candidate != nil && s == e.candidate.Seat {
			continue
		}
		if !e.passes[s] {
			return nil
		}
	}
	return e.settleTrump()
}

// settleTrump finalizes trump and banker when the declare window closes.
// With no claim, the previous round's trump and banker are retained; on
// the very first round the configured banker keeps the seat and the most
// populous suit of the banker's hand stands in for trump.
func (e *Engine) settleTrump() []Event {
	if e.candidate != nil {
		e.trump = e.candidate.Trump
		if e.firstRound {
			e.bankerSeat = e.candidate.Seat
			e.round.BankerSeat = e.bankerSeat
		}
	} else if e.firstRound {
		e.trump = dominantSuit(e.round.Hands[e.bankerSeat])
	}
	e.round.Ctx.Trump = e.trump
	e.firstRound = false

	// The banker picks up the kitty and must bury the same count.
	banker := e.bankerSeat
	hand := append(e.round.Hands[banker], e.round.Kitty...)
	e.round.Ctx.SortHand(hand)
	e.round.Hands[banker] = hand
	e.round.Kitty = nil

	e.candidate = nil
	e.phase = PhaseBuryingKitty
	return []Event{
		{
			Kind: EventTrumpSettled,
			Payload: TrumpSettledPayload{
				BankerSeat: banker, Trump: e.trump, Level: e.round.Ctx.Level,
			},
		},
		{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: banker, Hand: hand},
			Recipients: []int{banker},
		},
	}
}

// dominantSuit picks the most held natural suit, lower suit on ties.
func dominantSuit(hand []domain.Card) domain.Suit {
	var counts [4]int
	for _, c := range hand {
		if !c.IsJoker() {
			counts[c.Suit]++
		}
	}
	best := domain.SuitSpades
	for s := domain.SuitHearts; s <= domain.SuitDiamonds; s++ {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}

func (e *Engine) applyBury(seat int, ids []int) []Event {
	if e.phase != PhaseBuryingKitty {
		return []Event{reject(seat, domain.ReasonWrongPhase, nil)}
	}
	if seat != e.bankerSeat {
		return []Event{reject(seat, domain.ReasonNotYourTurn, nil)}
	}
	if len(ids) != e.cfg.KittySize() {
		return []Event{reject(seat, domain.ReasonMalformedInput, nil)}
	}
	picked, ok := domain.PickByID(e.round.Hands[seat], ids)
	if !ok {
		return []Event{reject(seat, domain.ReasonMalformedInput, nil)}
	}

	e.round.Hands[seat] = domain.RemoveCards(e.round.Hands[seat], picked)
	e.round.Kitty = picked
	e.turnSeat = e.bankerSeat
	e.trick = nil
	e.phase = PhasePlayingTricks
	return []Event{{Kind: EventKittyBuried, Payload: KittyBuriedPayload{Seat: seat}}}
}

func (e *Engine) nextSeat(seat int) int {
	return (seat + 1) % e.cfg.PlayerCount
}

func (e *Engine) applyPlay(seat int, ids []int) []Event {
	if e.phase != PhasePlayingTricks {
		return []Event{reject(seat, domain.ReasonWrongPhase, nil)}
	}
	if seat != e.turnSeat {
		return []Event{reject(seat, domain.ReasonNotYourTurn, nil)}
	}
	picked, ok := domain.PickByID(e.round.Hands[seat], ids)
	if !ok || len(picked) == 0 {
		return []Event{reject(seat, domain.ReasonMalformedInput, nil)}
	}
	ctx := e.round.Ctx

	if e.trick == nil {
		res := ctx.HandleLeaderThrow(picked, e.round.Hands[seat])
		if !res.OK {
			return []Event{reject(seat, res.Reason, nil)}
		}
		if res.Lead.Kind == domain.KindThrow && !e.cfg.ThrowsAllowed {
			return []Event{reject(seat, domain.ReasonInvalidShape, nil)}
		}

		e.round.Hands[seat] = domain.RemoveCards(e.round.Hands[seat], picked)
		e.trick = domain.NewTrick(seat, res.Lead, res.Lead.Cards)
		e.turnSeat = e.nextSeat(seat)
		return []Event{
			{Kind: EventLeadAnnounced, Payload: LeadAnnouncedPayload{Seat: seat, Pattern: res.Lead}},
			{Kind: EventTrickUpdate, Payload: TrickUpdatePayload{Seat: seat, CardIDs: ids, NextSeat: e.turnSeat}},
		}
	}

	v := ctx.ValidateFollowPlay(e.trick.Lead, picked, e.round.Hands[seat])
	if !v.OK {
		return []Event{reject(seat, v.Reason, v.ExpectedIDs)}
	}

	e.round.Hands[seat] = domain.RemoveCards(e.round.Hands[seat], picked)
	e.trick.AddPlay(ctx, domain.SeatPlay{Seat: seat, Cards: picked, Pattern: ctx.Analyze(picked)})

	if e.trick.Complete(e.cfg.PlayerCount) {
		events := []Event{{
			Kind:    EventTrickUpdate,
			Payload: TrickUpdatePayload{Seat: seat, CardIDs: ids, NextSeat: -1},
		}}
		return append(events, e.closeTrick()...)
	}

	e.turnSeat = e.nextSeat(seat)
	return []Event{{
		Kind:    EventTrickUpdate,
		Payload: TrickUpdatePayload{Seat: seat, CardIDs: ids, NextSeat: e.turnSeat},
	}}
}

// closeTrick settles the completed trick: throw standing and punishment,
// point capture, then either the next trick or round scoring.
func (e *Engine) closeTrick() []Event {
	ctx := e.round.Ctx
	trick := e.trick
	var events []Event

	if trick.Lead.Kind == domain.KindThrow {
		standing := ctx.CheckThrowStanding(trick.Lead, trick.Plays[1:])
		if !standing.Stands {
			if e.cfg.PunishBeatenThrow {
				// The surviving component becomes the lead's whole
				// contribution and the trick is re-resolved against it;
				// if nothing beats the survivor the leader keeps the trick.
				pun := ctx.PunishThrow(trick.Lead)
				trick.SetWinner(ctx.ResolveEffectiveLead(trick.LeadSeat, pun.Effective, trick.Plays[1:]))
				events = append(events, Event{
					Kind: EventThrowPunished,
					Payload: ThrowPunishedPayload{
						Seat:         trick.LeadSeat,
						KeptIDs:      domain.IDsOf(pun.Effective.Cards),
						ForfeitedIDs: domain.IDsOf(pun.Forfeited),
					},
				})
			} else {
				trick.SetWinner(standing.BeatenBy)
			}
		}
	}

	winner := trick.WinnerSeat
	points := trick.Points()
	e.round.Points[domain.TeamOfSeat(winner)] += points
	e.round.History = append(e.round.History, *trick)
	events = append(events, Event{
		Kind:    EventTrickEnd,
		Payload: TrickEndPayload{WinnerSeat: winner, Points: points},
	})

	finalLead := trick.Lead
	e.trick = nil
	e.turnSeat = winner

	if len(e.round.Hands[winner]) == 0 {
		events = append(events, e.scoreRound(winner, finalLead)...)
	}
	return events
}

// scoreRound tallies the round, advances levels and either re-deals or
// ends the game.
func (e *Engine) scoreRound(finalWinner int, finalLead domain.Pattern) []Event {
	e.phase = PhaseRoundScoring
	round := e.round

	kittyPoints := domain.CountPoints(round.Kitty) * domain.KittyMultiplier(finalLead)
	round.Points[domain.TeamOfSeat(finalWinner)] += kittyPoints

	attackers := round.AttackerTeam()
	attackerPoints := round.Points[attackers]
	outcome := domain.ScoreRound(attackerPoints)

	winnerTeam := attackers.Opponent()
	if outcome.AttackersWin {
		winnerTeam = attackers
	}
	newLevel, gameOver := domain.AdvanceLevel(e.levels[winnerTeam], outcome.Delta)
	e.levels[winnerTeam] = newLevel

	// The bank moves within the winning side: to the banker's teammate on
	// a defense, across to the next attacker seat on a takeover.
	nextBanker := (e.bankerSeat + 2) % e.cfg.PlayerCount
	if outcome.AttackersWin {
		nextBanker = (e.bankerSeat + 1) % e.cfg.PlayerCount
	}

	events := []Event{{
		Kind: EventRoundResult,
		Payload: RoundResultPayload{
			PlayedBySeat:   round.PlayedBySeat(),
			Kitty:          round.Kitty,
			TrickHistory:   round.History,
			AttackerPoints: attackerPoints,
			Outcome:        outcome,
			Levels:         e.levels,
			NextBankerSeat: nextBanker,
		},
	}}

	if gameOver {
		e.phase = PhaseGameOver
		return append(events, Event{
			Kind:    EventGameOver,
			Payload: GameOverPayload{WinnerTeam: winnerTeam, Levels: e.levels},
		})
	}

	e.bankerSeat = nextBanker
	e.phase = PhaseDealing
	return append(events, e.StartRound()...)
}

// applyDeadline is the scheduler's entry point: it resolves whatever the
// current phase was waiting on, exactly as if the blocking seat had acted.
func (e *Engine) applyDeadline() []Event {
	switch e.phase {
	case PhaseDeclaringTrump:
		return e.settleTrump()
	case PhaseBuryingKitty:
		hand := e.Hand(e.bankerSeat)
		e.round.Ctx.SortHand(hand)
		return e.applyBury(e.bankerSeat, domain.IDsOf(hand[:e.cfg.KittySize()]))
	case PhasePlayingTricks:
		seat := e.turnSeat
		if e.trick == nil {
			hand := e.Hand(seat)
			e.round.Ctx.SortHand(hand)
			return e.applyPlay(seat, []int{hand[0].ID})
		}
		ids := e.round.Ctx.ExpectedFollow(e.trick.Lead, e.round.Hands[seat])
		return e.applyPlay(seat, ids)
	}
	return []Event{reject(-1, domain.ReasonWrongPhase, nil)}
}

func (e *Engine) terminate() []Event {
	e.phase = PhaseGameOver
	winner := domain.TeamEven
	if e.levels[domain.TeamOdd] > e.levels[domain.TeamEven] {
		winner = domain.TeamOdd
	}
	return []Event{{
		Kind:    EventGameOver,
		Payload: GameOverPayload{WinnerTeam: winner, Levels: e.levels, Terminated: true},
	}}
}
