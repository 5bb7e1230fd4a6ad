package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	cerr "github.com/saeidalz13/sea-battle/internal/error"
	mb "github.com/saeidalz13/sea-battle/models/battleship"
)

const greeting = `                         !!!Hello!!!
                   This is the game of sea battle
              Your goal is to sink every enemy ship
       A move is made by typing the X and Y coordinates
           separated by a space, first X and then Y`

var (
	longRule  = strings.Repeat("-", 70)
	shortRule = strings.Repeat("-", 20)
)

// Narrator prints the match for the person at the terminal.
type Narrator struct {
	out io.Writer
}

var _ mb.Notifier = (*Narrator)(nil)

func NewNarrator(out io.Writer) *Narrator {
	return &Narrator{out: out}
}

func (n *Narrator) Greet() {
	fmt.Fprintln(n.out, greeting)
}

func (n *Narrator) Println(a ...any) {
	fmt.Fprintln(n.out, a...)
}

func boardBlock(title string, b *mb.Board) string {
	return fmt.Sprintf("%s:\nships left: %d\n\n%s", title, b.Remaining(), b.String())
}

func (n *Narrator) printBoards(g *mb.Game) {
	fmt.Fprintln(n.out, longRule)
	fmt.Fprint(n.out, VStack(
		boardBlock("User's board", g.Human().Board()),
		boardBlock("Computer's board", g.Bot().Board()),
	))
}

func (n *Narrator) NotifyTurn(g *mb.Game) {
	n.printBoards(g)
	fmt.Fprintln(n.out, shortRule)

	if g.State() == mb.MatchStateTurnHuman {
		fmt.Fprintln(n.out, "User's move!")
	} else {
		fmt.Fprintln(n.out, "Computer's move!")
	}
}

func (n *Narrator) NotifyShot(g *mb.Game, shooter *mb.Player, target mb.Coordinates, outcome mb.ShotOutcome) {
	if !shooter.IsHuman() {
		fmt.Fprintf(n.out, "Computer's move: %s\n", target)
	}

	switch outcome {
	case mb.ShotSunk:
		fmt.Fprintln(n.out, "Ship sunk!")
	case mb.ShotHit:
		fmt.Fprintln(n.out, "Hit! Panic on board!")
	default:
		fmt.Fprintln(n.out, "Miss!")
	}
}

// The computer shoots blind and repeats itself a lot late in a
// match, so only the human hears about rejected shots.
func (n *Narrator) NotifyRejectedShot(g *mb.Game, shooter *mb.Player, target mb.Coordinates, err error) {
	if !shooter.IsHuman() {
		log.Debug("computer shot rejected", "game", g.Uuid(), "target", target.String(), "err", err)
		return
	}

	switch {
	case errors.Is(err, cerr.ErrOutOfBounds):
		fmt.Fprintln(n.out, "You are trying to fire off the board!")
	case errors.Is(err, cerr.ErrAlreadyTargeted):
		fmt.Fprintln(n.out, "You already fired at this cell!")
	default:
		fmt.Fprintln(n.out, err)
	}
}

func (n *Narrator) NotifyEnd(g *mb.Game) {
	n.printBoards(g)
	fmt.Fprintln(n.out, shortRule)

	if g.State() == mb.MatchStateHumanWon {
		fmt.Fprintln(n.out, "User won!")
	} else {
		fmt.Fprintln(n.out, "Computer won!")
	}
}

// cmd says goodbye; only the log hears why the match stopped.
func (n *Narrator) NotifyAbort(g *mb.Game, err error) {
	log.Debug("match aborted", "game", g.Uuid(), "err", err)
}
