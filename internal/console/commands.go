package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/sweeper/internal/mines"
)

var ErrQuit = errors.New("quit")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2, // reveal x y
	"f": 2, // toggle flag x y
	"c": 2, // chord x y
	"r": 0, // restart with current params
	"n": 3, // new game height width mines, or a single h:w:m seed
	"p": 0, // print
	"h": 0, // help
	"q": 0, // quit
}

const help = `o x y    reveal
f x y    flag / unflag
c x y    chord
r        restart
n h w m  new game (height, width, mines)
n h:w:m  new game from a seed
p        print board
h        help
q        quit
`

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func (c *Console) index(args []string) (int, error) {
	x, y, err := parseXY(args)
	if err != nil {
		return 0, err
	}
	params := c.game.Params()
	if !params.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d) on a %dx%d board",
			mines.ErrOutOfBounds, x, y, params.Width, params.Height)
	}
	return params.Index(mines.Coordinate{X: x, Y: y}), nil
}

func (c *Console) execute(command string) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if parts[0] == "n" && len(parts) == 2 {
		params, err := mines.ParseSeed(parts[1])
		if err != nil {
			return err
		}
		return c.game.Reset(*params)
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "o":
		i, err := c.index(parts[1:])
		if err != nil {
			return err
		}
		_, err = c.game.Reveal(i)
		return err
	case "f":
		i, err := c.index(parts[1:])
		if err != nil {
			return err
		}
		return c.game.ToggleFlag(i)
	case "c":
		i, err := c.index(parts[1:])
		if err != nil {
			return err
		}
		_, err = c.game.Chord(i)
		return err
	case "r":
		return c.game.Restart()
	case "n":
		params, err := ParseOptionsForm(map[string][]string{
			"height": {parts[1]},
			"width":  {parts[2]},
			"mines":  {parts[3]},
		})
		if err != nil {
			return err
		}
		return c.game.Reset(params)
	case "p":
		return nil
	case "h":
		_, err := fmt.Fprint(c.out, help)
		return err
	case "q":
		return ErrQuit
	}
	return errors.New("invalid command")
}
