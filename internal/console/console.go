package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweeper/internal/session"
)

type Clock interface {
	Elapsed() int64
}

// Console is a line-oriented front end for one game. It is the only writer
// of the game it drives.
type Console struct {
	in    io.Reader
	out   io.Writer
	game  *session.Manager
	clock Clock
	log   *logrus.Logger
}

func New(
	in io.Reader,
	out io.Writer,
	game *session.Manager,
	clock Clock,
	log *logrus.Logger,
) *Console {
	return &Console{
		in:    in,
		out:   out,
		game:  game,
		clock: clock,
		log:   log,
	}
}

func (c *Console) render() error {
	return Render(c.out, c.game.Snapshot(), c.clock.Elapsed())
}

// Run reads commands until quit, end of input or ctx is done. Quit and end
// of input both return [ErrQuit].
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if err := c.render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("unable to read input: %w", err)
			}
			return ErrQuit
		case line := <-lines:
			err := c.execute(line)
			if errors.Is(err, ErrQuit) {
				return err
			}
			if err != nil {
				c.log.WithFields(logrus.Fields{
					"command": line,
					"error":   err,
				}).Debug("command rejected")
				if _, err := fmt.Fprintf(c.out, "error: %s\n", err); err != nil {
					return err
				}
			}
			if err := c.render(); err != nil {
				return err
			}
		}
	}
}
