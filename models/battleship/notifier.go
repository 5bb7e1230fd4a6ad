package battleship

// Notifier is told about everything that happens in a game. The
// console, the spectator stream and the analytics recorder all
// implement it. Calls are made from the game loop goroutine.
type Notifier interface {
	// Before every move
	NotifyTurn(g *Game)
	NotifyShot(g *Game, shooter *Player, target Coordinates, outcome ShotOutcome)

	// The shot broke a rule and the shooter has to pick again
	NotifyRejectedShot(g *Game, shooter *Player, target Coordinates, err error)
	NotifyEnd(g *Game)

	// The match stopped before anyone won, e.g. the input closed
	NotifyAbort(g *Game, err error)
}

// Notifiers fans every call out to each of its members in order.
type Notifiers []Notifier

var _ Notifier = Notifiers(nil)

func (ns Notifiers) NotifyTurn(g *Game) {
	for _, n := range ns {
		n.NotifyTurn(g)
	}
}

func (ns Notifiers) NotifyShot(g *Game, shooter *Player, target Coordinates, outcome ShotOutcome) {
	for _, n := range ns {
		n.NotifyShot(g, shooter, target, outcome)
	}
}

func (ns Notifiers) NotifyRejectedShot(g *Game, shooter *Player, target Coordinates, err error) {
	for _, n := range ns {
		n.NotifyRejectedShot(g, shooter, target, err)
	}
}

func (ns Notifiers) NotifyEnd(g *Game) {
	for _, n := range ns {
		n.NotifyEnd(g)
	}
}

func (ns Notifiers) NotifyAbort(g *Game, err error) {
	for _, n := range ns {
		n.NotifyAbort(g, err)
	}
}
