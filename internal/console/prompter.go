package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/sea-battle/models/battleship"
)

const (
	promptMove             = "Your move: "
	msgEnterTwoCoordinates = " Enter 2 coordinates! "
	msgEnterNumbers        = " Enter numbers! "
)

// Prompter reads the human's shots line by line. Players type
// 1-indexed "x y"; coordinates come out 0-indexed. Whether they
// fall on the board is left to the board.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ mb.CoordinatesReader = (*Prompter)(nil)

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompter) ReadCoordinates() (mb.Coordinates, error) {
	for {
		fmt.Fprint(p.out, promptMove)

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return mb.Coordinates{}, err
			}
			return mb.Coordinates{}, io.EOF
		}

		tokens := strings.Fields(p.scanner.Text())
		if len(tokens) != 2 {
			fmt.Fprintln(p.out, msgEnterTwoCoordinates)
			continue
		}

		if !isDigits(tokens[0]) || !isDigits(tokens[1]) {
			fmt.Fprintln(p.out, msgEnterNumbers)
			continue
		}

		x, errX := strconv.Atoi(tokens[0])
		y, errY := strconv.Atoi(tokens[1])
		if errX != nil || errY != nil {
			// only digits, so the number is too big for an int
			fmt.Fprintln(p.out, msgEnterNumbers)
			continue
		}

		return mb.NewCoordinates(x-1, y-1), nil
	}
}

// Signs are not digits, so "-1" is refused here
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Confirm asks a yes/no question until it gets "y" or "n".
func (p *Prompter) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s (y/n): ", question)

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return false, err
			}
			return false, io.EOF
		}

		switch strings.ToLower(strings.TrimSpace(p.scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
