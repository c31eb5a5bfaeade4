package app

// Action is the closed set of inbound engine actions. Dispatch over it is
// exhaustive; an unhandled variant is a defect, not a runtime case.
type Action interface {
	isAction()
	ActorSeat() int
}

// Declare claims the trump suit by showing level-rank cards.
type Declare struct {
	Seat    int
	CardIDs []int
}

// Snatch overrides the current trump claim with a stronger one.
type Snatch struct {
	Seat    int
	CardIDs []int
}

// NoSnatch declines to contest the current claim.
type NoSnatch struct {
	Seat int
}

// Bury submits the banker's kitty cards.
type Bury struct {
	Seat    int
	CardIDs []int
}

// Play plays cards into the current trick.
type Play struct {
	Seat    int
	CardIDs []int
}

// DeadlineElapsed is the external scheduler's deadline callback; the
// engine treats it like any other action.
type DeadlineElapsed struct{}

// Terminate force-ends the game.
type Terminate struct{}

func (Declare) isAction()         {}
func (Snatch) isAction()          {}
func (NoSnatch) isAction()        {}
func (Bury) isAction()            {}
func (Play) isAction()            {}
func (DeadlineElapsed) isAction() {}
func (Terminate) isAction()       {}

func (a Declare) ActorSeat() int       { return a.Seat }
func (a Snatch) ActorSeat() int        { return a.Seat }
func (a NoSnatch) ActorSeat() int      { return a.Seat }
func (a Bury) ActorSeat() int          { return a.Seat }
func (a Play) ActorSeat() int          { return a.Seat }
func (DeadlineElapsed) ActorSeat() int { return -1 }
func (Terminate) ActorSeat() int       { return -1 }
