package mines

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// MaxCells bounds height*width so that the product cannot overflow and the
// cascade work queue stays allocatable.
const MaxCells = 1 << 24

type BoardParams struct {
	Height, Width, Mines int
}

var DefaultParams = BoardParams{Height: 10, Width: 10, Mines: 10}

func (p BoardParams) Cells() int {
	return p.Height * p.Width
}

// MaxMines is the largest mine count that still leaves one safe cell.
func (p BoardParams) MaxMines() int {
	return p.Cells() - 1
}

// Validate rejects boards without a safe cell as well as non-positive
// dimensions. Every violated bound is reported.
func (p BoardParams) Validate() error {
	var err error
	if p.Height < 1 {
		err = multierr.Append(err, fmt.Errorf("height must be positive, got %d", p.Height))
	}
	if p.Width < 1 {
		err = multierr.Append(err, fmt.Errorf("width must be positive, got %d", p.Width))
	}
	if p.Mines < 0 {
		err = multierr.Append(err, fmt.Errorf("mines must not be negative, got %d", p.Mines))
	}
	if p.Height >= 1 && p.Width >= 1 {
		if p.Height > MaxCells/p.Width {
			err = multierr.Append(err, fmt.Errorf(
				"board %dx%d exceeds %d cells", p.Height, p.Width, MaxCells,
			))
		} else if p.Mines >= p.Cells() {
			err = multierr.Append(err, fmt.Errorf(
				"mines must be at most %d for a %dx%d board, got %d",
				p.MaxMines(), p.Height, p.Width, p.Mines,
			))
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}

func (p BoardParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Height, p.Width, p.Mines)
}

func ParseSeed(seed string) (*BoardParams, error) {
	p := &BoardParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Height, &p.Width, &p.Mines)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid board params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}
