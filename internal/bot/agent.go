package bot

import (
	"shengji/internal/domain"
)

// Agent picks moves for an automated seat. It is a thin policy over the
// candidate search: win the trick as cheaply as possible, otherwise shed
// the weakest legal cards.
type Agent struct {
	Seat   int
	Budget int
}

// ChooseLead opens a trick with the weakest single component the hand
// decomposes into.
func (a *Agent) ChooseLead(ctx domain.RoundContext, hand []domain.Card) []int {
	cands := LeadCandidates(ctx, hand)
	if len(cands) == 0 {
		return nil
	}
	best := cands[0]
	bestKey := leadWeight(ctx, best)
	for _, c := range cands[1:] {
		if k := leadWeight(ctx, c); k < bestKey {
			best, bestKey = c, k
		}
	}
	return domain.IDsOf(best)
}

// leadWeight prefers small, weak plays.
func leadWeight(ctx domain.RoundContext, cards []domain.Card) int {
	top := 0
	for _, c := range cards {
		if s := ctx.Strength(c); s > top {
			top = s
		}
	}
	return len(cards)*100 + top
}

// ChooseFollow returns the cheapest candidate that beats the lead, or the
// cheapest legal play when the trick cannot be won.
func (a *Agent) ChooseFollow(ctx domain.RoundContext, lead domain.Pattern, hand []domain.Card) []int {
	cands := FollowCandidates(ctx, lead, hand, a.Budget)
	if len(cands) == 0 {
		// The validator-backed hint is always available as a last resort.
		return ctx.ExpectedFollow(lead, hand)
	}

	var cheapestWin, cheapest []domain.Card
	var winKey, anyKey int
	for _, cand := range cands {
		key := leadWeight(ctx, cand)
		if cheapest == nil || key < anyKey {
			cheapest, anyKey = cand, key
		}
		if p := ctx.Analyze(cand); ctx.Beats(lead, p) {
			if cheapestWin == nil || key < winKey {
				cheapestWin, winKey = cand, key
			}
		}
	}
	if cheapestWin != nil {
		return domain.IDsOf(cheapestWin)
	}
	return domain.IDsOf(cheapest)
}
