package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Generate builds a fresh session for params. The first params.Mines cells
// become mines, the whole grid is shuffled, and every cell then receives its
// final index, a new instance id and its adjacency count.
func Generate(params BoardParams, r *rand.Rand) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}

	cells := make([]Cell, params.Cells()) /* all Empty, Hidden, 0 */
	for i := range params.Mines {
		cells[i].Kind = Mine
	}

	r.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	for i := range cells {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("unable to generate cell instance id: %w", err)
		}
		cells[i].ID = i
		cells[i].InstanceID = id
	}

	countAdjacent(params, cells)

	Log.WithFields(logrus.Fields{
		"seed": params.Seed(),
	}).Debug("board generated")

	return &Session{params: params, cells: cells, status: InProgress}, nil
}

// NewGame is [Generate] under the name the presentation layer uses.
func NewGame(params BoardParams, r *rand.Rand) (*Session, error) {
	return Generate(params, r)
}

func countAdjacent(params BoardParams, cells []Cell) {
	for i := range cells {
		if cells[i].Kind == Mine {
			continue
		}
		n := 0
		for _, j := range params.Neighbors(i) {
			if cells[j].Kind == Mine {
				n++
			}
		}
		cells[i].AdjacentMines = n
	}
}
