package app

import "shengji/internal/domain"

// EventKind identifies emitted engine events for outbound dispatch.
type EventKind string

const (
	EventHandDealt      EventKind = "hand_dealt"
	EventTrumpDeclared  EventKind = "trump_declared"
	EventTrumpSettled   EventKind = "trump_settled"
	EventKittyBuried    EventKind = "kitty_buried"
	EventLeadAnnounced  EventKind = "lead_announced"
	EventTrickUpdate    EventKind = "trick_update"
	EventTrickEnd       EventKind = "trick_end"
	EventThrowPunished  EventKind = "throw_punished"
	EventRoundResult    EventKind = "round_result"
	EventGameOver       EventKind = "game_over"
	EventActionRejected EventKind = "action_rejected"
)

// Event is an engine event with optional targeted recipients. These
// payloads are the whole contract with the transport and persistence
// collaborators; the engine is agnostic to both.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seat numbers; empty means broadcast
}

type HandDealtPayload struct {
	Seat int
	Hand []domain.Card
}

type TrumpDeclaredPayload struct {
	Seat        int
	Trump       domain.Suit
	Strength    int  // number of level-rank cards shown
	WindowReset bool // declare deadline window restarts
}

// TrumpSettledPayload announces the finalized trump and banker once the
// declare window closes.
type TrumpSettledPayload struct {
	BankerSeat int
	Trump      domain.Suit
	Level      domain.Rank
}

type KittyBuriedPayload struct {
	Seat int
}

type LeadAnnouncedPayload struct {
	Seat    int
	Pattern domain.Pattern
}

type TrickUpdatePayload struct {
	Seat     int
	CardIDs  []int
	NextSeat int // -1 when the trick just closed
}

type TrickEndPayload struct {
	WinnerSeat int
	Points     int
}

type ThrowPunishedPayload struct {
	Seat         int
	KeptIDs      []int // the surviving component
	ForfeitedIDs []int
}

// RoundResultPayload carries everything the persistence collaborator
// append-only logs for a round.
type RoundResultPayload struct {
	PlayedBySeat   [][]domain.Card
	Kitty          []domain.Card
	TrickHistory   []domain.TrickState
	AttackerPoints int
	Outcome        domain.LevelOutcome
	Levels         [2]domain.Rank
	NextBankerSeat int
}

type GameOverPayload struct {
	WinnerTeam domain.TeamID
	Levels     [2]domain.Rank
	Terminated bool
}

type ActionRejectedPayload struct {
	Seat        int
	Reason      domain.RejectReason
	ExpectedIDs []int // optional corrective hint, advisory only
}
