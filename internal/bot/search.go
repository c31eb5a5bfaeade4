package bot

import (
	"sort"

	"shengji/internal/domain"
)

// DefaultBudget caps how many candidate plays a search may return.
// Enumeration is sufficient, not exhaustive: absence of a combination
// never implies illegality.
const DefaultBudget = 24

// fallbackMaxSize bounds the whole-hand combination fallback; above this
// lead size the n-choose-k space is not worth walking for a bot move.
const fallbackMaxSize = 3

// FollowCandidates enumerates legal follow plays for a hand against a
// lead pattern. The same-suit-group pool is tried first through the
// hand's decomposition; the full hand pool is only swept when that found
// almost nothing and the pattern is small. Every returned combination has
// passed the follow validator.
func FollowCandidates(ctx domain.RoundContext, lead domain.Pattern, hand []domain.Card, budget int) [][]domain.Card {
	if budget <= 0 {
		budget = DefaultBudget
	}
	var out [][]domain.Card
	seen := make(map[string]bool)

	add := func(cards []domain.Card) bool {
		if len(out) >= budget || len(cards) != lead.Size {
			return false
		}
		key := idKey(cards)
		if seen[key] {
			return false
		}
		if v := ctx.ValidateFollowPlay(lead, cards, hand); !v.OK {
			return false
		}
		seen[key] = true
		out = append(out, cards)
		return true
	}

	// The canonical follow is always legal and anchors the result set.
	if ids := ctx.ExpectedFollow(lead, hand); len(ids) == lead.Size {
		if cards, ok := domain.PickByID(hand, ids); ok {
			add(cards)
		}
	}

	var pool []domain.Card
	for _, c := range hand {
		if ctx.Classify(c) == lead.Group {
			pool = append(pool, c)
		}
	}
	parts := ctx.BestDecomposition(pool)

	switch lead.Kind {
	case domain.KindSingle:
		for _, c := range pool {
			add([]domain.Card{c})
		}
	case domain.KindPair:
		for _, pr := range pairsIn(parts) {
			add(pr)
		}
	case domain.KindTractor:
		for _, p := range parts {
			if p.Kind != domain.KindTractor || p.Pairs < lead.Pairs {
				continue
			}
			// Every contiguous cut of the right length.
			for off := 0; off+lead.Pairs <= p.Pairs; off++ {
				add(append([]domain.Card(nil), p.Cards[off*2:off*2+lead.Size]...))
			}
		}
	}

	// Fallback: small patterns may sweep the whole hand when the group
	// pool produced nearly nothing.
	if len(out) < 2 && lead.Size <= fallbackMaxSize {
		combinations(hand, lead.Size, budget*4, func(cards []domain.Card) {
			add(cards)
		})
	}
	return out
}

// LeadCandidates enumerates plays a seat could open a trick with: every
// component of each suit group's decomposition. Single components are
// always an entitled lead.
func LeadCandidates(ctx domain.RoundContext, hand []domain.Card) [][]domain.Card {
	byGroup := make(map[domain.SuitGroup][]domain.Card)
	for _, c := range hand {
		g := ctx.Classify(c)
		byGroup[g] = append(byGroup[g], c)
	}
	var out [][]domain.Card
	for g := domain.GroupSpades; g <= domain.GroupTrump; g++ {
		for _, p := range ctx.BestDecomposition(byGroup[g]) {
			out = append(out, p.Cards)
		}
	}
	sort.Slice(out, func(i, j int) bool { return idKey(out[i]) < idKey(out[j]) })
	return out
}

// pairsIn flattens a decomposition into its individual pairs, tractor
// pairs included.
func pairsIn(parts []domain.Pattern) [][]domain.Card {
	var out [][]domain.Card
	for _, p := range parts {
		switch p.Kind {
		case domain.KindPair:
			out = append(out, p.Cards)
		case domain.KindTractor:
			for i := 0; i+1 < len(p.Cards); i += 2 {
				out = append(out, []domain.Card{p.Cards[i], p.Cards[i+1]})
			}
		}
	}
	return out
}

// combinations walks k-card combinations of the pool with an explicit
// visit cap, guarding against combinatorial blowup on wide hands.
func combinations(pool []domain.Card, k, visitCap int, visit func([]domain.Card)) {
	if k <= 0 || k > len(pool) {
		return
	}
	visited := 0
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if visited >= visitCap {
			return
		}
		visited++
		cards := make([]domain.Card, k)
		for i, j := range idx {
			cards[i] = pool[j]
		}
		visit(cards)

		// Advance the index vector; done when the first position runs out.
		i := k - 1
		for i >= 0 && idx[i] == len(pool)-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func idKey(cards []domain.Card) string {
	ids := append([]int(nil), domain.IDsOf(cards)...)
	sort.Ints(ids)
	key := make([]byte, 0, len(ids)*3)
	for _, id := range ids {
		key = append(key, byte('0'+id/100), byte('0'+(id/10)%10), byte('0'+id%10), ',')
	}
	return string(key)
}
