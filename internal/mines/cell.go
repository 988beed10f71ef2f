package mines

import "github.com/google/uuid"

type CellKind int8

const (
	Empty CellKind = iota
	Mine
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Mine:
		return "mine"
	default:
		return "unknown"
	}
}

type CellStatus int8

const (
	Hidden CellStatus = iota
	Revealed
	Flagged
)

func (s CellStatus) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Cell is a single grid position. ID is its flat index and InstanceID a
// per-generation identity; both are fixed at generation, as is
// AdjacentMines. Only Status changes during play.
type Cell struct {
	ID            int
	InstanceID    uuid.UUID
	Kind          CellKind
	Status        CellStatus
	AdjacentMines int
}

func (c Cell) IsMine() bool {
	return c.Kind == Mine
}
