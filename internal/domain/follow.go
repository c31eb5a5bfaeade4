package domain

// RejectReason codes every way a player action can be refused. All are
// local and non-fatal: the caller reports them and state stays untouched.
type RejectReason string

const (
	ReasonMalformedInput  RejectReason = "MALFORMED_INPUT"
	ReasonWrongPhase      RejectReason = "WRONG_PHASE"
	ReasonNotYourTurn     RejectReason = "NOT_YOUR_TURN"
	ReasonMustFollowSuit  RejectReason = "MUST_FOLLOW_SUIT"
	ReasonShapeMismatch   RejectReason = "SHAPE_MISMATCH"
	ReasonThrowNotHighest RejectReason = "THROW_NOT_HIGHEST"
	ReasonInvalidShape    RejectReason = "INVALID_SHAPE"
)

// FollowVerdict is the result of validating a follow play. On rejection,
// ExpectedIDs carries one canonical legal alternative as a corrective
// hint; it is advisory, never applied silently.
type FollowVerdict struct {
	OK          bool
	Reason      RejectReason
	ExpectedIDs []int
}

func followOK() FollowVerdict { return FollowVerdict{OK: true} }

func (ctx RoundContext) followReject(reason RejectReason, lead Pattern, hand []Card) FollowVerdict {
	return FollowVerdict{Reason: reason, ExpectedIDs: ctx.ExpectedFollow(lead, hand)}
}

// ValidateFollowPlay decides whether played cards legally follow the lead
// pattern given the player's full hand. The rule ladder, in priority
// order: card count, suit-following, shape matching, then the free-play
// case for a void hand.
func (ctx RoundContext) ValidateFollowPlay(lead Pattern, played, hand []Card) FollowVerdict {
	if len(played) != lead.Size {
		return ctx.followReject(ReasonMalformedInput, lead, hand)
	}

	var suitCards []Card
	for _, c := range hand {
		if ctx.Classify(c) == lead.Group {
			suitCards = append(suitCards, c)
		}
	}

	// Void in the lead's group: any same-count cards go.
	if len(suitCards) == 0 {
		return followOK()
	}

	if len(suitCards) >= lead.Size {
		for _, c := range played {
			if ctx.Classify(c) != lead.Group {
				return ctx.followReject(ReasonMustFollowSuit, lead, hand)
			}
		}
		if !ctx.shapeSatisfied(lead, played, suitCards) {
			return ctx.followReject(ReasonShapeMismatch, lead, hand)
		}
		return followOK()
	}

	// Short in the group: every held group card must be played before any
	// off-group filler.
	playedIDs := make(map[int]bool, len(played))
	for _, c := range played {
		playedIDs[c.ID] = true
	}
	for _, c := range suitCards {
		if !playedIDs[c.ID] {
			return ctx.followReject(ReasonMustFollowSuit, lead, hand)
		}
	}
	return followOK()
}

// shapeSatisfied enforces the pair/tractor matching requirement when the
// play stays inside the lead's group. The hand's best decomposition of
// its group holdings sets the bar; singles may substitute only for the
// shape the hand genuinely lacks.
func (ctx RoundContext) shapeSatisfied(lead Pattern, played, suitCards []Card) bool {
	switch lead.Kind {
	case KindSingle:
		return true
	case KindPair:
		avail := ctx.BestDecomposition(suitCards)
		if totalPairs(avail) == 0 {
			return true
		}
		return ctx.Analyze(played).Kind == KindPair
	case KindTractor:
		avail := ctx.BestDecomposition(suitCards)
		if t := longestTractor(avail); t >= lead.Pairs {
			p := ctx.Analyze(played)
			return p.Kind == KindTractor && p.Pairs == lead.Pairs
		}
		need := totalPairs(avail)
		if need > lead.Pairs {
			need = lead.Pairs
		}
		return totalPairs(ctx.BestDecomposition(played)) >= need
	case KindThrow:
		avail := ctx.BestDecomposition(suitCards)
		need := totalPairs(avail)
		if lp := totalPairs(lead.Parts); need > lp {
			need = lp
		}
		return totalPairs(ctx.BestDecomposition(played)) >= need
	}
	return false
}

// ExpectedFollow computes the canonical legal play for a hand against a
// lead: the lowest cards that satisfy the follow rules. It backs the
// corrective hint on rejections and the bot's fallback move.
func (ctx RoundContext) ExpectedFollow(lead Pattern, hand []Card) []int {
	var suitCards, offCards []Card
	for _, c := range hand {
		if ctx.Classify(c) == lead.Group {
			suitCards = append(suitCards, c)
		} else {
			offCards = append(offCards, c)
		}
	}
	ctx.SortHand(suitCards)
	ctx.SortHand(offCards)

	if len(suitCards) <= lead.Size {
		// Play the whole group holding and pad with the lowest off-group
		// cards.
		play := append([]Card(nil), suitCards...)
		play = append(play, offCards[:lead.Size-len(suitCards)]...)
		return IDsOf(play)
	}

	avail := ctx.BestDecomposition(suitCards)
	var play []Card

	switch lead.Kind {
	case KindTractor:
		// Lowest tractor of the exact length, if the hand holds one.
		for i := len(avail) - 1; i >= 0; i-- {
			if avail[i].Kind == KindTractor && avail[i].Pairs >= lead.Pairs {
				play = avail[i].Cards[:lead.Size]
				return IDsOf(play)
			}
		}
		fallthrough
	case KindPair, KindThrow:
		needPairs := lead.Size / 2
		if lead.Kind == KindTractor {
			needPairs = lead.Pairs
		} else if lead.Kind == KindThrow {
			needPairs = totalPairs(lead.Parts)
		}
		play = lowestShapes(avail, needPairs, lead.Size)
	default:
		play = []Card{suitCards[0]}
	}
	return IDsOf(play)
}

// lowestShapes assembles a play of the given size from a decomposition,
// preferring the weakest pairs up to needPairs and filling the rest with
// the weakest singles.
func lowestShapes(avail []Pattern, needPairs, size int) []Card {
	// Decompositions are ordered biggest and strongest first, so walk
	// backwards for the cheapest material.
	var play []Card
	pairsTaken := 0
	for i := len(avail) - 1; i >= 0 && pairsTaken < needPairs && len(play)+2 <= size; i-- {
		switch avail[i].Kind {
		case KindPair:
			play = append(play, avail[i].Cards...)
			pairsTaken++
		case KindTractor:
			for j := 0; j < len(avail[i].Cards) && pairsTaken < needPairs && len(play)+2 <= size; j += 2 {
				play = append(play, avail[i].Cards[j], avail[i].Cards[j+1])
				pairsTaken++
			}
		}
	}
	if len(play) < size {
		taken := make(map[int]bool, len(play))
		for _, c := range play {
			taken[c.ID] = true
		}
		for i := len(avail) - 1; i >= 0 && len(play) < size; i-- {
			for j := len(avail[i].Cards) - 1; j >= 0 && len(play) < size; j-- {
				c := avail[i].Cards[j]
				if !taken[c.ID] {
					taken[c.ID] = true
					play = append(play, c)
				}
			}
		}
	}
	return play
}
