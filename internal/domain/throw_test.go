package domain

import "testing"

func TestHandleLeaderThrowEntitlement(t *testing.T) {
	t.Run("rejects a throw shadowed by a stronger pair", func(t *testing.T) {
		// Leader throws 6-6 + 9-9 of hearts while keeping J-J of hearts.
		leadCards := []Card{
			card(0, 6, SuitHearts), card(54, 6, SuitHearts),
			card(1, 9, SuitHearts), card(55, 9, SuitHearts),
		}
		hand := append(append([]Card(nil), leadCards...),
			card(2, RankJack, SuitHearts), card(56, RankJack, SuitHearts),
			card(3, 4, SuitClubs),
		)
		res := testCtx.HandleLeaderThrow(leadCards, hand)
		if res.OK || res.Reason != ReasonThrowNotHighest {
			t.Fatalf("result = %+v, want THROW_NOT_HIGHEST", res)
		}
		if res.Offender.Kind != KindPair {
			t.Fatalf("offender = %+v, want one of the thrown pairs", res.Offender)
		}
	})

	t.Run("accepts a throw of top holdings", func(t *testing.T) {
		leadCards := []Card{
			card(2, RankJack, SuitHearts), card(56, RankJack, SuitHearts),
			card(3, RankAce, SuitHearts),
		}
		hand := append(append([]Card(nil), leadCards...),
			card(0, 6, SuitHearts), card(4, 4, SuitClubs),
		)
		res := testCtx.HandleLeaderThrow(leadCards, hand)
		if !res.OK || res.Lead.Kind != KindThrow {
			t.Fatalf("result = %+v, want legal throw", res)
		}
	})

	t.Run("a retained pair blocks a thrown single", func(t *testing.T) {
		leadCards := []Card{
			card(3, RankAce, SuitHearts),
			card(0, 6, SuitHearts), card(54, 6, SuitHearts),
		}
		// A kept K-K outranks nothing thrown here besides... the ace
		// single stands, but a kept queen pair over the 6 pair trips it.
		hand := append(append([]Card(nil), leadCards...),
			card(2, RankQueen, SuitHearts), card(56, RankQueen, SuitHearts),
		)
		res := testCtx.HandleLeaderThrow(leadCards, hand)
		if res.OK || res.Reason != ReasonThrowNotHighest {
			t.Fatalf("result = %+v, want THROW_NOT_HIGHEST", res)
		}
	})

	t.Run("plain lead needs no entitlement", func(t *testing.T) {
		leadCards := []Card{card(0, 6, SuitHearts), card(54, 6, SuitHearts)}
		hand := append(append([]Card(nil), leadCards...),
			card(2, RankJack, SuitHearts), card(56, RankJack, SuitHearts),
		)
		res := testCtx.HandleLeaderThrow(leadCards, hand)
		if !res.OK || res.Lead.Kind != KindPair {
			t.Fatalf("result = %+v, want plain pair lead", res)
		}
	})
}

func TestCheckThrowStanding(t *testing.T) {
	throw := testCtx.AnalyzeThrow([]Card{
		card(0, 6, SuitHearts), card(54, 6, SuitHearts),
		card(1, 9, SuitHearts), card(55, 9, SuitHearts),
	})

	t.Run("stands against weaker responses", func(t *testing.T) {
		responses := []SeatPlay{
			{Seat: 1, Cards: []Card{
				card(2, 3, SuitHearts), card(56, 3, SuitHearts),
				card(3, 5, SuitHearts), card(4, 7, SuitHearts),
			}},
		}
		res := testCtx.CheckThrowStanding(throw, responses)
		if !res.Stands {
			t.Fatalf("throw should stand, got %+v", res)
		}
	})

	t.Run("one beating component topples the throw", func(t *testing.T) {
		responses := []SeatPlay{
			{Seat: 1, Cards: []Card{
				card(2, RankKing, SuitHearts), card(56, RankKing, SuitHearts),
				card(3, 3, SuitHearts), card(4, 5, SuitHearts),
			}},
		}
		res := testCtx.CheckThrowStanding(throw, responses)
		if res.Stands || res.BeatenBy != 1 {
			t.Fatalf("result = %+v, want beaten by seat 1", res)
		}
	})

	t.Run("trump pair beats a plain component", func(t *testing.T) {
		responses := []SeatPlay{
			{Seat: 3, Cards: []Card{
				card(2, 4, SuitSpades), card(56, 4, SuitSpades),
				card(3, 5, SuitClubs), card(4, 8, SuitClubs),
			}},
		}
		res := testCtx.CheckThrowStanding(throw, responses)
		if res.Stands || res.BeatenBy != 3 {
			t.Fatalf("result = %+v, want beaten by trump from seat 3", res)
		}
	})
}

func TestPunishThrow(t *testing.T) {
	// 10-10 + 5-5 thrown: 30 points on the table.
	throw := testCtx.AnalyzeThrow([]Card{
		card(0, RankFive, SuitHearts), card(54, RankFive, SuitHearts),
		card(1, RankTen, SuitHearts), card(55, RankTen, SuitHearts),
	})
	res := testCtx.PunishThrow(throw)

	if res.Effective.Kind != KindPair || res.Effective.Strength != testCtx.Strength(card(1, RankTen, SuitHearts)) {
		t.Fatalf("effective = %+v, want the ten pair", res.Effective)
	}
	if res.TotalPoints != 30 {
		t.Fatalf("TotalPoints = %d, want 30", res.TotalPoints)
	}
	if len(res.Forfeited) != 2 {
		t.Fatalf("forfeited = %v, want the five pair", res.Forfeited)
	}
}

func TestPunishThrowKeepsHighestRankedPart(t *testing.T) {
	// A-A + 3-3-4-4 thrown: the ace pair outranks the longer tractor.
	throw := testCtx.AnalyzeThrow([]Card{
		card(0, RankAce, SuitHearts), card(54, RankAce, SuitHearts),
		card(1, 3, SuitHearts), card(55, 3, SuitHearts),
		card(2, 4, SuitHearts), card(56, 4, SuitHearts),
	})
	if throw.Kind != KindThrow || throw.Parts[0].Kind != KindTractor {
		t.Fatalf("throw = %+v, want tractor-first decomposition", throw)
	}

	res := testCtx.PunishThrow(throw)
	if res.Effective.Kind != KindPair || res.Effective.Cards[0].Rank != RankAce {
		t.Fatalf("effective = %+v, want the ace pair", res.Effective)
	}
	if len(res.Forfeited) != 4 {
		t.Fatalf("forfeited = %v, want the tractor cards", res.Forfeited)
	}
}

func TestResolveEffectiveLead(t *testing.T) {
	throw := testCtx.AnalyzeThrow([]Card{
		card(0, RankAce, SuitHearts), card(54, RankAce, SuitHearts),
		card(1, 3, SuitHearts), card(55, 3, SuitHearts),
	})
	effective := testCtx.PunishThrow(throw).Effective

	t.Run("unbeaten survivor keeps the trick", func(t *testing.T) {
		// Seat 1's 4-4 topples the thrown 3-3 but not the surviving aces.
		responses := []SeatPlay{
			{Seat: 1, Cards: []Card{
				card(2, 4, SuitHearts), card(56, 4, SuitHearts),
				card(3, 6, SuitHearts), card(4, 7, SuitHearts),
			}},
			{Seat: 3, Cards: []Card{
				card(5, RankJack, SuitHearts), card(59, RankJack, SuitHearts),
				card(6, 8, SuitHearts), card(7, 9, SuitHearts),
			}},
		}
		if standing := testCtx.CheckThrowStanding(throw, responses); standing.Stands {
			t.Fatalf("throw should be beaten, got %+v", standing)
		}
		if got := testCtx.ResolveEffectiveLead(0, effective, responses); got != 0 {
			t.Fatalf("winner = %d, want the leader to keep the trick", got)
		}
	})

	t.Run("beating the survivor takes the trick", func(t *testing.T) {
		responses := []SeatPlay{
			{Seat: 1, Cards: []Card{
				card(2, 4, SuitHearts), card(56, 4, SuitHearts),
				card(3, 6, SuitHearts), card(4, 7, SuitHearts),
			}},
			{Seat: 2, Cards: []Card{
				card(8, 5, SuitSpades), card(62, 5, SuitSpades),
				card(9, 6, SuitClubs), card(10, 8, SuitClubs),
			}},
		}
		if got := testCtx.ResolveEffectiveLead(0, effective, responses); got != 2 {
			t.Fatalf("winner = %d, want the trump pair from seat 2", got)
		}
	})

	t.Run("later beat must top the current holder", func(t *testing.T) {
		responses := []SeatPlay{
			{Seat: 1, Cards: []Card{
				card(8, 9, SuitSpades), card(62, 9, SuitSpades),
				card(3, 6, SuitClubs), card(4, 7, SuitClubs),
			}},
			{Seat: 2, Cards: []Card{
				card(11, 5, SuitSpades), card(65, 5, SuitSpades),
				card(9, 6, SuitClubs), card(10, 8, SuitClubs),
			}},
		}
		if got := testCtx.ResolveEffectiveLead(0, effective, responses); got != 1 {
			t.Fatalf("winner = %d, want seat 1's stronger trump to hold", got)
		}
	})
}

func TestTrickResolution(t *testing.T) {
	lead := testCtx.Analyze([]Card{card(0, 9, SuitHearts), card(54, 9, SuitHearts)})
	trick := NewTrick(0, lead, lead.Cards)

	trick.AddPlay(testCtx, SeatPlay{Seat: 1, Cards: []Card{
		card(1, RankQueen, SuitHearts), card(55, RankQueen, SuitHearts),
	}})
	if trick.WinnerSeat != 1 {
		t.Fatalf("queen pair should take the trick, winner = %d", trick.WinnerSeat)
	}

	trick.AddPlay(testCtx, SeatPlay{Seat: 2, Cards: []Card{
		card(2, 3, SuitClubs), card(3, 4, SuitClubs),
	}})
	if trick.WinnerSeat != 1 {
		t.Fatalf("off-suit discard must not win, winner = %d", trick.WinnerSeat)
	}

	trick.AddPlay(testCtx, SeatPlay{Seat: 3, Cards: []Card{
		card(4, 3, SuitSpades), card(58, 3, SuitSpades),
	}})
	if trick.WinnerSeat != 3 {
		t.Fatalf("trump pair should take the trick, winner = %d", trick.WinnerSeat)
	}

	if !trick.Complete(4) {
		t.Fatalf("trick should be complete")
	}
	if got := trick.Points(); got != 0 {
		t.Fatalf("Points() = %d, want 0", got)
	}
}

func TestTrickFirstCopyHolds(t *testing.T) {
	lead := testCtx.Analyze([]Card{card(10, 9, SuitHearts)})
	trick := NewTrick(0, lead, lead.Cards)
	// The deck twin of the led card cannot beat it.
	trick.AddPlay(testCtx, SeatPlay{Seat: 1, Cards: []Card{card(64, 9, SuitHearts)}})
	if trick.WinnerSeat != 0 {
		t.Fatalf("first-played copy should hold, winner = %d", trick.WinnerSeat)
	}
}
