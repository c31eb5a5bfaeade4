package domain

// TeamID splits the table into two fixed teams: even seats against odd
// seats, for 4, 6 or 8 players.
type TeamID int8

const (
	TeamEven TeamID = 0
	TeamOdd  TeamID = 1
)

// TeamOfSeat maps a seat number to its team.
func TeamOfSeat(seat int) TeamID {
	return TeamID(seat % 2)
}

// Opponent returns the other team.
func (t TeamID) Opponent() TeamID {
	return 1 - t
}

// GameConfig fixes the table shape and rule variants for a whole game.
// Variant behavior is switched here, never ad hoc inside the rules.
type GameConfig struct {
	PlayerCount    int     // 4, 6 or 8
	StartingLevels [2]Rank // per-team starting level, indexed by TeamID
	StartingBanker int     // banker seat for the first round

	// ThrowsAllowed gates multi-component leads entirely; when false any
	// multi-pattern lead is rejected as INVALID_SHAPE.
	ThrowsAllowed bool
	// PunishBeatenThrow applies the multi-throw penalty when a throw is
	// beaten; when false a beaten throw simply loses the trick whole.
	PunishBeatenThrow bool
}

// DefaultConfig is the standard four-player double-deck table.
func DefaultConfig() GameConfig {
	return GameConfig{
		PlayerCount:       4,
		StartingLevels:    [2]Rank{RankTwo, RankTwo},
		ThrowsAllowed:     true,
		PunishBeatenThrow: true,
	}
}

// HandSize returns the cards dealt per seat on the fixed 108-card pack.
func (cfg GameConfig) HandSize() int {
	switch cfg.PlayerCount {
	case 6:
		return 17
	case 8:
		return 12
	default:
		return 25
	}
}

// KittySize returns the cards left aside for the banker to bury.
func (cfg GameConfig) KittySize() int {
	return 108 - cfg.PlayerCount*cfg.HandSize()
}

// RoundState is the authoritative state of one round, created at dealing
// and discarded after scoring. Cards only ever move between its
// containers; they are never mutated.
type RoundState struct {
	Ctx        RoundContext
	BankerSeat int
	Hands      [][]Card
	Kitty      []Card
	Points     [2]int // captured points, indexed by TeamID
	History    []TrickState
}

// AttackerTeam is the team opposing the banker this round.
func (r *RoundState) AttackerTeam() TeamID {
	return TeamOfSeat(r.BankerSeat).Opponent()
}

// PlayedBySeat collects each seat's cards across the trick history, for
// the round-result payload.
func (r *RoundState) PlayedBySeat() [][]Card {
	out := make([][]Card, len(r.Hands))
	for _, trick := range r.History {
		for _, p := range trick.Plays {
			out[p.Seat] = append(out[p.Seat], p.Cards...)
		}
	}
	return out
}

// KittyMultiplier scales the buried kitty's points for the side winning
// the final trick: 2 for a single lead, 4 for a pair, doubling again for
// each extra card in the largest lead component.
func KittyMultiplier(finalLead Pattern) int {
	largest := finalLead.Size
	if finalLead.Kind == KindThrow {
		largest = 0
		for _, p := range finalLead.Parts {
			if p.Size > largest {
				largest = p.Size
			}
		}
	}
	return 1 << largest
}

// LevelOutcome is the verdict of a finished round.
type LevelOutcome struct {
	AttackersWin bool
	Delta        int // levels advanced by the winning team
}

// ScoreRound maps the attackers' captured points to the level outcome.
// Zero points is the maximum penalty; every full 40 points past the
// 80-point takeover threshold is one extra level for the attackers.
func ScoreRound(attackerPoints int) LevelOutcome {
	switch {
	case attackerPoints == 0:
		return LevelOutcome{Delta: 3}
	case attackerPoints < 40:
		return LevelOutcome{Delta: 2}
	case attackerPoints < 80:
		return LevelOutcome{Delta: 1}
	default:
		return LevelOutcome{AttackersWin: true, Delta: (attackerPoints - 80) / 40}
	}
}

// AdvanceLevel moves a team's level up by delta, capped at Ace. The
// second return is true when the advance would pass Ace, which ends the
// game.
func AdvanceLevel(level Rank, delta int) (Rank, bool) {
	next := int(level) + delta
	if level == RankAce && delta > 0 {
		return RankAce, true
	}
	if next > int(RankAce) {
		next = int(RankAce)
	}
	return Rank(next), false
}
