package domain

import "sort"

// PatternKind classifies the shape of a played card group.
type PatternKind int8

const (
	KindInvalid PatternKind = iota
	KindSingle
	KindPair
	KindTractor
	KindThrow
)

// Pattern describes the shape of a card group: its kind, size, suit group
// and strength. Tractor patterns carry the pair count; throw patterns
// carry their component sub-patterns.
type Pattern struct {
	Kind     PatternKind
	Group    SuitGroup
	Cards    []Card // sorted ascending by StrengthKey
	Size     int
	Strength int // tier of the strongest card
	Pairs    int // number of pairs when Kind == KindTractor

	// Parts holds the components of a throw, strongest shape first.
	Parts []Pattern
}

// groupOf returns the common suit group of the cards, or false if they
// span groups. Trump patterns may mix suits; non-trump patterns are
// mono-suit by construction since two suits never share a group.
func (ctx RoundContext) groupOf(cards []Card) (SuitGroup, bool) {
	if len(cards) == 0 {
		return 0, false
	}
	g := ctx.Classify(cards[0])
	for _, c := range cards[1:] {
		if ctx.Classify(c) != g {
			return 0, false
		}
	}
	return g, true
}

// pairKey identifies cards that can pair up: a pair is two cards of
// identical printed rank and suit, one from each deck.
type pairKey struct {
	Rank Rank
	Suit Suit
}

// Analyze determines whether a fixed card group forms a single, a pair or
// a tractor under the round context. Anything else is KindInvalid.
func (ctx RoundContext) Analyze(cards []Card) Pattern {
	group, ok := ctx.groupOf(cards)
	if !ok {
		return Pattern{Kind: KindInvalid}
	}

	sorted := append([]Card(nil), cards...)
	ctx.SortHand(sorted)
	top := ctx.Strength(sorted[len(sorted)-1])

	switch n := len(sorted); {
	case n == 1:
		return Pattern{Kind: KindSingle, Group: group, Cards: sorted, Size: 1, Strength: top}
	case n == 2:
		if sorted[0].Rank == sorted[1].Rank && sorted[0].Suit == sorted[1].Suit {
			return Pattern{Kind: KindPair, Group: group, Cards: sorted, Size: 2, Strength: top}
		}
		return Pattern{Kind: KindInvalid}
	case n >= 4 && n%2 == 0:
		if !ctx.isTractor(sorted) {
			return Pattern{Kind: KindInvalid}
		}
		return Pattern{Kind: KindTractor, Group: group, Cards: sorted, Size: n, Strength: top, Pairs: n / 2}
	}
	return Pattern{Kind: KindInvalid}
}

// isTractor reports whether sorted same-group cards form consecutive
// pairs on adjacent strength tiers. Distinct off-suit level pairs share a
// tier, so they never chain into a tractor with each other.
func (ctx RoundContext) isTractor(sorted []Card) bool {
	tiers := make([]int, 0, len(sorted)/2)
	for i := 0; i < len(sorted); i += 2 {
		a, b := sorted[i], sorted[i+1]
		if a.Rank != b.Rank || a.Suit != b.Suit {
			return false
		}
		tiers = append(tiers, ctx.Strength(a))
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i] != tiers[i-1]+1 {
			return false
		}
	}
	return true
}

// BestDecomposition splits an arbitrary same-group card set into the
// largest recognizable sub-patterns: maximal tractors first, then loose
// pairs, then singles. The result is invariant to input order; equal
// choices resolve toward the lowest card IDs.
func (ctx RoundContext) BestDecomposition(cards []Card) []Pattern {
	if len(cards) == 0 {
		return nil
	}
	sorted := append([]Card(nil), cards...)
	ctx.SortHand(sorted)

	// Group deck twins into pairs; whatever cannot pair is a single.
	byKey := make(map[pairKey][]Card)
	keys := make([]pairKey, 0, len(sorted))
	for _, c := range sorted {
		k := pairKey{c.Rank, c.Suit}
		if _, seen := byKey[k]; !seen {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], c)
	}

	type pairRun struct {
		tier  int
		cards []Card
	}
	var pairs []pairRun
	var singles []Card
	for _, k := range keys {
		cs := byKey[k]
		if len(cs) == 2 {
			pairs = append(pairs, pairRun{tier: ctx.Strength(cs[0]), cards: cs})
		} else {
			singles = append(singles, cs...)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].tier != pairs[j].tier {
			return pairs[i].tier < pairs[j].tier
		}
		return pairs[i].cards[0].ID < pairs[j].cards[0].ID
	})

	group := ctx.Classify(sorted[0])
	var out []Pattern

	// Greedily extend runs of adjacent tiers into tractors. A duplicate
	// tier (two off-suit level pairs) cannot extend the current run.
	for i := 0; i < len(pairs); {
		j := i + 1
		for j < len(pairs) && pairs[j].tier == pairs[j-1].tier+1 {
			j++
		}
		if j-i >= 2 {
			var cs []Card
			for _, p := range pairs[i:j] {
				cs = append(cs, p.cards...)
			}
			out = append(out, Pattern{
				Kind: KindTractor, Group: group, Cards: cs,
				Size: len(cs), Strength: pairs[j-1].tier, Pairs: j - i,
			})
		} else {
			p := pairs[i]
			out = append(out, Pattern{
				Kind: KindPair, Group: group, Cards: p.cards,
				Size: 2, Strength: p.tier,
			})
		}
		i = j
	}
	for _, c := range singles {
		out = append(out, Pattern{
			Kind: KindSingle, Group: group, Cards: []Card{c},
			Size: 1, Strength: ctx.Strength(c),
		})
	}

	sortParts(out)
	return out
}

// sortParts orders sub-patterns biggest shape first, strongest first,
// with the ID tiebreak keeping the order reproducible.
func sortParts(parts []Pattern) {
	sort.Slice(parts, func(i, j int) bool {
		if parts[i].Size != parts[j].Size {
			return parts[i].Size > parts[j].Size
		}
		if parts[i].Strength != parts[j].Strength {
			return parts[i].Strength > parts[j].Strength
		}
		return parts[i].Cards[0].ID < parts[j].Cards[0].ID
	})
}

// AnalyzeThrow splits a multi-component lead into its constituent
// patterns. A single-component lead comes back as that plain pattern.
// Cards that span suit groups do not form a throw.
func (ctx RoundContext) AnalyzeThrow(cards []Card) Pattern {
	group, ok := ctx.groupOf(cards)
	if !ok {
		return Pattern{Kind: KindInvalid}
	}
	parts := ctx.BestDecomposition(cards)
	if len(parts) == 1 {
		return parts[0]
	}
	sorted := append([]Card(nil), cards...)
	ctx.SortHand(sorted)
	return Pattern{
		Kind:     KindThrow,
		Group:    group,
		Cards:    sorted,
		Size:     len(sorted),
		Strength: ctx.Strength(sorted[len(sorted)-1]),
		Parts:    parts,
	}
}

// totalPairs counts pairs across a decomposition, tractor pairs included.
func totalPairs(parts []Pattern) int {
	n := 0
	for _, p := range parts {
		switch p.Kind {
		case KindPair:
			n++
		case KindTractor:
			n += p.Pairs
		}
	}
	return n
}

// longestTractor returns the largest tractor pair count in a decomposition.
func longestTractor(parts []Pattern) int {
	best := 0
	for _, p := range parts {
		if p.Kind == KindTractor && p.Pairs > best {
			best = p.Pairs
		}
	}
	return best
}

// Beats reports whether a response pattern beats a lead pattern outright:
// the shapes must match (kind, size, tractor length) and the response must
// be strictly stronger in the same group, or trump against a non-trump
// lead. Equal tiers never beat, so the first-played copy of a duplicate
// holds the trick.
func (ctx RoundContext) Beats(lead, response Pattern) bool {
	if response.Kind != lead.Kind || response.Size != lead.Size || response.Pairs != lead.Pairs {
		return false
	}
	if response.Group == lead.Group {
		return response.Strength > lead.Strength
	}
	return response.Group == GroupTrump
}
