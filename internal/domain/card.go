package domain

import "sort"

// Suit identifies a card's printed suit.
type Suit int8

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitClubs
	SuitDiamonds
	SuitJoker
)

// Rank is the printed rank. 2..14 for the standard ranks (Ace high),
// with the two jokers above them.
type Rank int8

const (
	RankTwo   Rank = 2
	RankFive  Rank = 5
	RankTen   Rank = 10
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
	RankAce   Rank = 14

	RankSmallJoker Rank = 15
	RankBigJoker   Rank = 16
)

// Card is a single card from the double deck. Two decks are in play, so
// rank+suit repeats; ID is the stable identity (0..107).
type Card struct {
	ID   int
	Rank Rank
	Suit Suit
}

// IsJoker reports whether the card is one of the two jokers.
func (c Card) IsJoker() bool {
	return c.Suit == SuitJoker
}

// SuitGroup is the derived classification of a card for a round: its
// natural suit, or the trump group.
type SuitGroup int8

const (
	GroupSpades SuitGroup = iota
	GroupHearts
	GroupClubs
	GroupDiamonds
	GroupTrump
)

// RoundContext fixes the level rank and trump suit for a round. All
// classification and ordering is a pure function of (card, context).
type RoundContext struct {
	Level Rank
	Trump Suit
}

// Classify maps a card to its suit group. Jokers, level-rank cards of any
// suit and all cards of the trump suit are trump; everything else keeps
// its natural suit.
func (ctx RoundContext) Classify(c Card) SuitGroup {
	if c.IsJoker() || c.Rank == ctx.Level || c.Suit == ctx.Trump {
		return GroupTrump
	}
	return SuitGroup(c.Suit)
}

// adjustedIndex is the position of a rank in the 2..A sequence with the
// level rank removed. Removing the level shifts adjacency, which is what
// makes e.g. 4-6 a consecutive pair run when playing 5s.
func adjustedIndex(r, level Rank) int {
	idx := int(r) - 2
	if r > level {
		idx--
	}
	return idx
}

// Strength is the in-group strength tier of a card. Tiers are comparable
// only within one suit group (trump included); trick resolution never
// compares tiers across two non-trump groups. Duplicate cards from the
// second deck share a tier.
//
// Trump tiers, low to high: trump-suit naturals by adjusted rank, then
// off-suit level cards (all on one shared tier), the trump-suit level
// card, small joker, big joker.
func (ctx RoundContext) Strength(c Card) int {
	if ctx.Classify(c) != GroupTrump {
		return adjustedIndex(c.Rank, ctx.Level)
	}
	const naturals = 12 // trump suit minus the level rank
	switch {
	case c.Rank == RankBigJoker:
		return naturals + 3
	case c.Rank == RankSmallJoker:
		return naturals + 2
	case c.Rank == ctx.Level && c.Suit == ctx.Trump:
		return naturals + 1
	case c.Rank == ctx.Level:
		return naturals
	default:
		return adjustedIndex(c.Rank, ctx.Level)
	}
}

// StrengthKey defines a strict total order over all 108 cards: suit-group
// major, strength tier, then stable ID. The ID tiebreak makes sorts and
// trick resolution deterministic across the deck twins.
func (ctx RoundContext) StrengthKey(c Card) int {
	return int(ctx.Classify(c))<<11 | ctx.Strength(c)<<7 | c.ID
}

// SortHand orders cards ascending by StrengthKey, in place.
func (ctx RoundContext) SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return ctx.StrengthKey(cards[i]) < ctx.StrengthKey(cards[j])
	})
}

// PointValue returns the scoring value of a card: fives are worth 5,
// tens and kings 10, everything else 0.
func PointValue(c Card) int {
	switch c.Rank {
	case RankFive:
		return 5
	case RankTen, RankKing:
		return 10
	}
	return 0
}

// CountPoints sums the point values of a card set.
func CountPoints(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += PointValue(c)
	}
	return total
}

// NewDoubleDeck returns the 108-card double deck in a fixed order. IDs are
// assigned sequentially so the same shuffle seed always yields the same
// deal.
func NewDoubleDeck() []Card {
	deck := make([]Card, 0, 108)
	id := 0
	for copyNo := 0; copyNo < 2; copyNo++ {
		for s := SuitSpades; s <= SuitDiamonds; s++ {
			for r := RankTwo; r <= RankAce; r++ {
				deck = append(deck, Card{ID: id, Rank: r, Suit: s})
				id++
			}
		}
		deck = append(deck, Card{ID: id, Rank: RankSmallJoker, Suit: SuitJoker})
		id++
		deck = append(deck, Card{ID: id, Rank: RankBigJoker, Suit: SuitJoker})
		id++
	}
	return deck
}

// PickByID resolves card IDs against a hand. The second return is false
// if any ID is missing or repeated.
func PickByID(hand []Card, ids []int) ([]Card, bool) {
	byID := make(map[int]Card, len(hand))
	for _, c := range hand {
		byID[c.ID] = c
	}
	picked := make([]Card, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok || seen[id] {
			return nil, false
		}
		seen[id] = true
		picked = append(picked, c)
	}
	return picked, true
}

// RemoveCards removes the specified cards from a hand by ID and returns
// the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}
	gone := make(map[int]bool, len(toRemove))
	for _, c := range toRemove {
		gone[c.ID] = true
	}
	updated := make([]Card, 0, len(hand))
	for _, c := range hand {
		if gone[c.ID] {
			continue
		}
		updated = append(updated, c)
	}
	return updated
}

// IDsOf extracts the stable IDs of a card set, preserving order.
func IDsOf(cards []Card) []int {
	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
