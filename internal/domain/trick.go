package domain

// SeatPlay is one seat's contribution to a trick.
type SeatPlay struct {
	Seat    int
	Cards   []Card
	Pattern Pattern
}

// TrickState tracks the plays made so far in the current trick, the lead
// pattern and the provisional winner.
type TrickState struct {
	LeadSeat   int
	Lead       Pattern
	Plays      []SeatPlay
	WinnerSeat int
}

// NewTrick opens a trick with the leader's validated pattern.
func NewTrick(leadSeat int, lead Pattern, cards []Card) *TrickState {
	return &TrickState{
		LeadSeat:   leadSeat,
		Lead:       lead,
		Plays:      []SeatPlay{{Seat: leadSeat, Cards: cards, Pattern: lead}},
		WinnerSeat: leadSeat,
	}
}

// AddPlay appends a follower's play and updates the provisional winner
// against the lead as played. For throw leads the winner is finalized at
// trick close through CheckThrowStanding, which names the beating seat.
func (t *TrickState) AddPlay(ctx RoundContext, play SeatPlay) {
	t.Plays = append(t.Plays, play)
	t.WinnerSeat = t.resolve(ctx, t.Lead)
}

// SetWinner overrides the resolved winner; used when a beaten throw hands
// the trick to the seat whose component toppled it.
func (t *TrickState) SetWinner(seat int) {
	t.WinnerSeat = seat
}

// resolve scans the plays for the strongest one that matches the lead's
// shape in the lead's group or in trump. Later plays take the trick only
// by beating the current holder outright, so the first-played copy of a
// duplicate card keeps its trick.
func (t *TrickState) resolve(ctx RoundContext, effectiveLead Pattern) int {
	winner := t.LeadSeat
	holding := effectiveLead
	for _, p := range t.Plays[1:] {
		resp := ctx.Analyze(p.Cards)
		if resp.Kind == KindInvalid {
			continue
		}
		if ctx.Beats(holding, resp) {
			winner = p.Seat
			holding = resp
		}
	}
	return winner
}

// Complete reports whether every seat has played.
func (t *TrickState) Complete(seatCount int) bool {
	return len(t.Plays) == seatCount
}

// Points sums the point cards captured in this trick.
func (t *TrickState) Points() int {
	total := 0
	for _, p := range t.Plays {
		total += CountPoints(p.Cards)
	}
	return total
}
