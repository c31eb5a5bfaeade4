package nakama

import (
	"encoding/json"
	"fmt"

	"shengji/internal/app"
	"shengji/internal/domain"
)

// Wire messages are plain JSON frames. Cards always travel with their
// deck id so clients can reference exact copies when acting.
type wireCard struct {
	ID   int `json:"id"`
	Rank int `json:"rank"`
	Suit int `json:"suit"`
}

func toWireCards(cards []domain.Card) []wireCard {
	out := make([]wireCard, len(cards))
	for i, c := range cards {
		out[i] = wireCard{ID: c.ID, Rank: int(c.Rank), Suit: int(c.Suit)}
	}
	return out
}

// cardIDsRequest is the shared client frame for declare, bury and play.
type cardIDsRequest struct {
	CardIDs []int `json:"card_ids"`
}

type handDealtMsg struct {
	Seat  int        `json:"seat"`
	Cards []wireCard `json:"cards"`
}

type trumpDeclaredMsg struct {
	Seat        int  `json:"seat"`
	Trump       int  `json:"trump"`
	Strength    int  `json:"strength"`
	WindowReset bool `json:"window_reset"`
}

type trumpSettledMsg struct {
	BankerSeat int `json:"banker_seat"`
	Trump      int `json:"trump"`
	Level      int `json:"level"`
}

type kittyBuriedMsg struct {
	Seat int `json:"seat"`
}

type leadAnnouncedMsg struct {
	Seat    int     `json:"seat"`
	Kind    int     `json:"kind"`
	CardIDs []int   `json:"card_ids"`
	Parts   [][]int `json:"parts,omitempty"`
}

type trickUpdateMsg struct {
	Seat     int   `json:"seat"`
	CardIDs  []int `json:"card_ids"`
	NextSeat int   `json:"next_seat"`
}

type trickEndMsg struct {
	WinnerSeat int `json:"winner_seat"`
	Points     int `json:"points"`
}

type throwPunishedMsg struct {
	Seat         int   `json:"seat"`
	KeptIDs      []int `json:"kept_ids"`
	ForfeitedIDs []int `json:"forfeited_ids"`
}

type roundResultMsg struct {
	AttackerPoints int        `json:"attacker_points"`
	AttackersWin   bool       `json:"attackers_win"`
	LevelDelta     int        `json:"level_delta"`
	Levels         [2]int     `json:"levels"`
	NextBankerSeat int        `json:"next_banker_seat"`
	Kitty          []wireCard `json:"kitty"`
}

type gameOverMsg struct {
	WinnerTeam int    `json:"winner_team"`
	Levels     [2]int `json:"levels"`
	Terminated bool   `json:"terminated"`
}

type actionRejectedMsg struct {
	Seat        int    `json:"seat"`
	Reason      string `json:"reason"`
	ExpectedIDs []int  `json:"expected_ids,omitempty"`
}

func toWireLevels(levels [2]domain.Rank) [2]int {
	return [2]int{int(levels[0]), int(levels[1])}
}

// encodeEvent maps an engine event to its opcode and JSON frame.
func encodeEvent(ev app.Event) (int64, []byte, error) {
	var opCode int64
	var msg any

	switch ev.Kind {
	case app.EventHandDealt:
		p := ev.Payload.(app.HandDealtPayload)
		opCode = OpHandDealt
		msg = handDealtMsg{Seat: p.Seat, Cards: toWireCards(p.Hand)}
	case app.EventTrumpDeclared:
		p := ev.Payload.(app.TrumpDeclaredPayload)
		opCode = OpTrumpDeclared
		msg = trumpDeclaredMsg{
			Seat: p.Seat, Trump: int(p.Trump), Strength: p.Strength, WindowReset: p.WindowReset,
		}
	case app.EventTrumpSettled:
		p := ev.Payload.(app.TrumpSettledPayload)
		opCode = OpTrumpSettled
		msg = trumpSettledMsg{BankerSeat: p.BankerSeat, Trump: int(p.Trump), Level: int(p.Level)}
	case app.EventKittyBuried:
		p := ev.Payload.(app.KittyBuriedPayload)
		opCode = OpKittyBuried
		msg = kittyBuriedMsg{Seat: p.Seat}
	case app.EventLeadAnnounced:
		p := ev.Payload.(app.LeadAnnouncedPayload)
		opCode = OpLeadAnnounced
		m := leadAnnouncedMsg{
			Seat:    p.Seat,
			Kind:    int(p.Pattern.Kind),
			CardIDs: domain.IDsOf(p.Pattern.Cards),
		}
		for _, part := range p.Pattern.Parts {
			m.Parts = append(m.Parts, domain.IDsOf(part.Cards))
		}
		msg = m
	case app.EventTrickUpdate:
		p := ev.Payload.(app.TrickUpdatePayload)
		opCode = OpTrickUpdate
		msg = trickUpdateMsg{Seat: p.Seat, CardIDs: p.CardIDs, NextSeat: p.NextSeat}
	case app.EventTrickEnd:
		p := ev.Payload.(app.TrickEndPayload)
		opCode = OpTrickEnd
		msg = trickEndMsg{WinnerSeat: p.WinnerSeat, Points: p.Points}
	case app.EventThrowPunished:
		p := ev.Payload.(app.ThrowPunishedPayload)
		opCode = OpThrowPunished
		msg = throwPunishedMsg{Seat: p.Seat, KeptIDs: p.KeptIDs, ForfeitedIDs: p.ForfeitedIDs}
	case app.EventRoundResult:
		p := ev.Payload.(app.RoundResultPayload)
		opCode = OpRoundResult
		msg = roundResultMsg{
			AttackerPoints: p.AttackerPoints,
			AttackersWin:   p.Outcome.AttackersWin,
			LevelDelta:     p.Outcome.Delta,
			Levels:         toWireLevels(p.Levels),
			NextBankerSeat: p.NextBankerSeat,
			Kitty:          toWireCards(p.Kitty),
		}
	case app.EventGameOver:
		p := ev.Payload.(app.GameOverPayload)
		opCode = OpGameOver
		msg = gameOverMsg{WinnerTeam: int(p.WinnerTeam), Levels: toWireLevels(p.Levels), Terminated: p.Terminated}
	case app.EventActionRejected:
		p := ev.Payload.(app.ActionRejectedPayload)
		opCode = OpActionRejected
		msg = actionRejectedMsg{Seat: p.Seat, Reason: string(p.Reason), ExpectedIDs: p.ExpectedIDs}
	default:
		return 0, nil, fmt.Errorf("unknown event kind %q", ev.Kind)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal %s frame: %w", ev.Kind, err)
	}
	return opCode, data, nil
}
