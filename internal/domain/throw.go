package domain

// HandleThrowResult reports whether a leader may lead the given cards.
// For a legal lead, Lead is the analyzed pattern (a plain pattern for a
// one-component play, a composite for a throw). For an illegal throw,
// Offender names the component that a stronger same-shape holding beats.
type HandleThrowResult struct {
	OK       bool
	Reason   RejectReason
	Lead     Pattern
	Offender Pattern
}

// HandleLeaderThrow validates a leader's play. Single patterns are always
// a legal lead. A throw is entitled only if every component is the
// strongest holding of its shape within the leader's same-group cards:
// throwing a weak pair while keeping a stronger pair of the same suit is
// refused, not corrected.
func (ctx RoundContext) HandleLeaderThrow(leadCards, hand []Card) HandleThrowResult {
	lead := ctx.AnalyzeThrow(leadCards)
	if lead.Kind == KindInvalid {
		return HandleThrowResult{Reason: ReasonInvalidShape}
	}
	if lead.Kind != KindThrow {
		return HandleThrowResult{OK: true, Lead: lead}
	}

	var remaining []Card
	thrown := make(map[int]bool, len(leadCards))
	for _, c := range leadCards {
		thrown[c.ID] = true
	}
	for _, c := range hand {
		if !thrown[c.ID] && ctx.Classify(c) == lead.Group {
			remaining = append(remaining, c)
		}
	}
	held := ctx.BestDecomposition(remaining)

	for _, part := range lead.Parts {
		for _, h := range held {
			if ctx.coversShape(h, part) {
				return HandleThrowResult{Reason: ReasonThrowNotHighest, Offender: part}
			}
		}
	}
	return HandleThrowResult{OK: true, Lead: lead}
}

// coversShape reports whether a held pattern contains a strictly stronger
// instance of the part's shape. A long tractor covers any shorter tractor
// or pair inside it.
func (ctx RoundContext) coversShape(held, part Pattern) bool {
	if held.Strength <= part.Strength {
		return false
	}
	switch part.Kind {
	case KindSingle:
		return true
	case KindPair:
		return held.Kind == KindPair || held.Kind == KindTractor
	case KindTractor:
		return held.Kind == KindTractor && held.Pairs >= part.Pairs
	}
	return false
}

// CanBeatPart reports whether a response component beats one component of
// a throw.
func (ctx RoundContext) CanBeatPart(part, response Pattern) bool {
	return ctx.Beats(part, response)
}

// ThrowStandingResult is the outcome of testing a throw against the other
// seats' plays.
type ThrowStandingResult struct {
	Stands     bool
	BeatenBy   int // seat of the strongest beating response
	BeatenPart int // index into the throw's Parts
}

// CheckThrowStanding compares each component of the throw against the
// corresponding components of every response. The throw stands only if
// no single opposing component beats its counterpart outright.
func (ctx RoundContext) CheckThrowStanding(throw Pattern, responses []SeatPlay) ThrowStandingResult {
	best := ThrowStandingResult{Stands: true, BeatenBy: -1, BeatenPart: -1}
	bestRank := -1
	for _, resp := range responses {
		parts := ctx.responseParts(throw.Group, resp.Cards)
		for i, part := range throw.Parts {
			for _, rp := range parts {
				if !ctx.CanBeatPart(part, rp) {
					continue
				}
				// Keep the strongest beating response when several seats
				// beat the throw: trump outranks in-group, then by tier,
				// first play winning ties.
				rank := rp.Strength
				if rp.Group == GroupTrump {
					rank |= 1 << 8
				}
				if rank > bestRank {
					best = ThrowStandingResult{Stands: false, BeatenBy: resp.Seat, BeatenPart: i}
					bestRank = rank
				}
			}
		}
	}
	return best
}

// responseParts decomposes the part of a response that can contend with
// the throw: its cards in the lead's group, and its trump cards.
func (ctx RoundContext) responseParts(leadGroup SuitGroup, cards []Card) []Pattern {
	var inGroup, trumps []Card
	for _, c := range cards {
		switch ctx.Classify(c) {
		case leadGroup:
			inGroup = append(inGroup, c)
		case GroupTrump:
			trumps = append(trumps, c)
		}
	}
	parts := ctx.BestDecomposition(inGroup)
	if leadGroup != GroupTrump {
		parts = append(parts, ctx.BestDecomposition(trumps)...)
	}
	return parts
}

// ThrowPunishResult carries the downgraded lead after a beaten throw:
// only the strongest component keeps trick-taking weight, while the point
// value of every thrown card still goes to whichever seat wins the trick.
type ThrowPunishResult struct {
	Effective   Pattern // surviving component for trick comparison
	Forfeited   []Card  // components stripped of trick-taking weight
	TotalPoints int     // point value of the entire thrown group
}

// PunishThrow applies the multi-throw penalty once a throw has been
// beaten. The highest-ranked component survives as the lead's whole
// contribution; rank decides before length, so an ace pair outlives a
// longer but weaker tractor.
func (ctx RoundContext) PunishThrow(throw Pattern) ThrowPunishResult {
	best := 0
	for i, part := range throw.Parts[1:] {
		cur := throw.Parts[best]
		if part.Strength > cur.Strength ||
			(part.Strength == cur.Strength && part.Size > cur.Size) {
			best = i + 1
		}
	}

	res := ThrowPunishResult{
		Effective:   throw.Parts[best],
		TotalPoints: CountPoints(throw.Cards),
	}
	for i, part := range throw.Parts {
		if i != best {
			res.Forfeited = append(res.Forfeited, part.Cards...)
		}
	}
	return res
}

// ResolveEffectiveLead settles a punished trick: the surviving component
// stands in for the whole lead, and each response contends with its
// matching-shape components from the lead's group or trump. A later play
// takes the trick only by beating the current holder outright, so an
// unbeaten survivor keeps the trick for the leader.
func (ctx RoundContext) ResolveEffectiveLead(leadSeat int, effective Pattern, responses []SeatPlay) int {
	winner := leadSeat
	holding := effective
	for _, resp := range responses {
		for _, rp := range ctx.responseParts(effective.Group, resp.Cards) {
			if ctx.Beats(holding, rp) {
				winner = resp.Seat
				holding = rp
			}
		}
	}
	return winner
}
