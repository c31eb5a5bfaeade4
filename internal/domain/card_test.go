package domain

import "testing"

func card(id int, r Rank, s Suit) Card {
	return Card{ID: id, Rank: r, Suit: s}
}

func TestClassify(t *testing.T) {
	ctx := RoundContext{Level: RankTwo, Trump: SuitSpades}
	tests := []struct {
		name string
		card Card
		want SuitGroup
	}{
		{name: "big joker", card: card(0, RankBigJoker, SuitJoker), want: GroupTrump},
		{name: "small joker", card: card(1, RankSmallJoker, SuitJoker), want: GroupTrump},
		{name: "trump suit card", card: card(2, 7, SuitSpades), want: GroupTrump},
		{name: "off-suit level card", card: card(3, RankTwo, SuitHearts), want: GroupTrump},
		{name: "trump suit level card", card: card(4, RankTwo, SuitSpades), want: GroupTrump},
		{name: "plain heart", card: card(5, RankKing, SuitHearts), want: GroupHearts},
		{name: "plain diamond", card: card(6, 3, SuitDiamonds), want: GroupDiamonds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ctx.Classify(tt.card); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrengthOrderingInTrump(t *testing.T) {
	ctx := RoundContext{Level: RankTwo, Trump: SuitSpades}
	// Ascending by the documented policy.
	ladder := []Card{
		card(0, 3, SuitSpades),            // lowest trump natural
		card(1, RankAce, SuitSpades),      // highest trump natural
		card(2, RankTwo, SuitHearts),      // off-suit level card
		card(3, RankTwo, SuitSpades),      // trump-suit level card
		card(4, RankSmallJoker, SuitJoker),
		card(5, RankBigJoker, SuitJoker),
	}
	for i := 1; i < len(ladder); i++ {
		lo, hi := ctx.Strength(ladder[i-1]), ctx.Strength(ladder[i])
		if lo >= hi {
			t.Fatalf("strength(%v)=%d not below strength(%v)=%d", ladder[i-1], lo, ladder[i], hi)
		}
	}
}

func TestOffSuitLevelCardsShareTier(t *testing.T) {
	ctx := RoundContext{Level: RankFive, Trump: SuitSpades}
	h := card(0, RankFive, SuitHearts)
	d := card(1, RankFive, SuitDiamonds)
	if ctx.Strength(h) != ctx.Strength(d) {
		t.Fatalf("off-suit level cards should tie: %d vs %d", ctx.Strength(h), ctx.Strength(d))
	}
	if ctx.StrengthKey(h) == ctx.StrengthKey(d) {
		t.Fatalf("StrengthKey must still separate them")
	}
}

func TestLevelRemovalShiftsAdjacency(t *testing.T) {
	ctx := RoundContext{Level: RankFive, Trump: SuitSpades}
	four := card(0, 4, SuitHearts)
	six := card(1, 6, SuitHearts)
	if ctx.Strength(six) != ctx.Strength(four)+1 {
		t.Fatalf("4 and 6 should be adjacent when playing 5s: %d vs %d",
			ctx.Strength(four), ctx.Strength(six))
	}
}

func TestStrengthKeyTotalOrder(t *testing.T) {
	ctx := RoundContext{Level: RankTwo, Trump: SuitSpades}
	deck := NewDoubleDeck()
	if len(deck) != 108 {
		t.Fatalf("deck size = %d, want 108", len(deck))
	}
	seen := make(map[int]Card, len(deck))
	for _, c := range deck {
		k := ctx.StrengthKey(c)
		if prev, dup := seen[k]; dup {
			t.Fatalf("key collision between %v and %v", prev, c)
		}
		seen[k] = c
		// Purity: same input, same output.
		if ctx.StrengthKey(c) != k {
			t.Fatalf("StrengthKey not deterministic for %v", c)
		}
	}
}

func TestPointValues(t *testing.T) {
	cards := []Card{
		card(0, RankFive, SuitHearts),
		card(1, RankTen, SuitClubs),
		card(2, RankKing, SuitSpades),
		card(3, RankAce, SuitDiamonds),
	}
	if got := CountPoints(cards); got != 25 {
		t.Fatalf("CountPoints() = %d, want 25", got)
	}
}

func TestPickByID(t *testing.T) {
	hand := []Card{card(10, 3, SuitHearts), card(11, 4, SuitHearts)}
	if _, ok := PickByID(hand, []int{10, 10}); ok {
		t.Fatalf("duplicate ids should fail")
	}
	if _, ok := PickByID(hand, []int{99}); ok {
		t.Fatalf("unknown id should fail")
	}
	picked, ok := PickByID(hand, []int{11})
	if !ok || len(picked) != 1 || picked[0].ID != 11 {
		t.Fatalf("PickByID() = %v, %v", picked, ok)
	}
}

func TestRemoveCardsByID(t *testing.T) {
	hand := []Card{card(0, 3, SuitHearts), card(1, 3, SuitHearts), card(2, 4, SuitHearts)}
	left := RemoveCards(hand, []Card{hand[1]})
	if len(left) != 2 || left[0].ID != 0 || left[1].ID != 2 {
		t.Fatalf("RemoveCards() = %v", left)
	}
}
