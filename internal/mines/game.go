package mines

import (
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameStatus int8

const (
	InProgress GameStatus = iota
	Won
	Lost
)

func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s GameStatus) Glyph() string {
	switch s {
	case Won:
		return "B)"
	case Lost:
		return "X("
	default:
		return ":)"
	}
}

// Session is one game: the grid, the params it was generated from, the game
// status and the flag counter. It is not safe for concurrent use.
type Session struct {
	params BoardParams
	cells  []Cell
	status GameStatus
	flags  int
}

func (s *Session) Params() BoardParams {
	return s.params
}

func (s *Session) Status() GameStatus {
	return s.status
}

func (s *Session) FlagCount() int {
	return s.flags
}

// MinesLeft is the mine total minus placed flags; over-flagging makes it
// negative.
func (s *Session) MinesLeft() int {
	return s.params.Mines - s.flags
}

func (s *Session) Len() int {
	return len(s.cells)
}

func (s *Session) Cell(i int) (Cell, error) {
	if err := s.checkIndex(i); err != nil {
		return Cell{}, err
	}
	return s.cells[i], nil
}

// Cells returns a copy of the grid in index order.
func (s *Session) Cells() Grid {
	return slices.Clone(s.cells)
}

func (s *Session) String() string {
	return Grid(s.cells).ToString(s.params.Width)
}

func (s *Session) checkIndex(i int) error {
	if !s.params.ValidIndex(i) {
		return BoundsError{Index: i, Len: len(s.cells)}
	}
	return nil
}

// IsWon reports whether no empty cell is still hidden. Mines may stay hidden
// or flagged. The whole grid is scanned on every call.
func (s *Session) IsWon() bool {
	for _, c := range s.cells {
		if c.Kind == Empty && c.Status == Hidden {
			return false
		}
	}
	return true
}

// Reveal opens cell i. A hidden mine loses the game; a hidden empty cell
// with no adjacent mines also opens its connected zero region and the
// numbered cells bordering it. Flagged and revealed cells are left alone,
// and nothing happens once the game is over.
func (s *Session) Reveal(i int) (GameStatus, error) {
	if err := s.checkIndex(i); err != nil {
		return s.status, err
	}
	if s.status != InProgress {
		return s.status, nil
	}
	s.reveal(i, nil)
	s.checkWon()
	return s.status, nil
}

/*
reveal opens cell i and returns the cascade queue, allocating it only when
a zero cell is opened. A queue passed back in keeps its seen marks; every
index it has seen is already revealed.
*/
func (s *Session) reveal(i int, todo *celltodo) *celltodo {
	c := &s.cells[i]
	if c.Status != Hidden {
		return todo
	}

	if c.Kind == Mine {
		c.Status = Revealed
		s.status = Lost
		Log.WithFields(logrus.Fields{
			"seed":  s.params.Seed(),
			"index": i,
		}).Debug("mine revealed")
		return todo
	}

	if c.AdjacentMines != 0 {
		c.Status = Revealed
		return todo
	}

	if todo == nil {
		todo = newCellTodo(len(s.cells))
	}
	todo.add(i)
	opened := 0
	for j, ok := todo.pop(); ok; j, ok = todo.pop() {
		c := &s.cells[j]
		if c.Status != Hidden || c.Kind == Mine {
			continue
		}
		c.Status = Revealed
		opened++
		if c.AdjacentMines != 0 {
			continue
		}
		for _, k := range s.params.Neighbors(j) {
			if k != j && s.cells[k].Status == Hidden {
				todo.add(k)
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"index":  i,
		"opened": opened,
	}).Debug("cascade")
	return todo
}

/* A loss in the same action is never overridden by a win. */
func (s *Session) checkWon() {
	if s.status == InProgress && s.IsWon() {
		s.status = Won
		Log.WithFields(logrus.Fields{
			"seed":  s.params.Seed(),
			"flags": s.flags,
		}).Debug("game won")
	}
}

// ToggleFlag flips cell i between hidden and flagged and keeps the flag
// counter in step. Revealed cells cannot be flagged.
func (s *Session) ToggleFlag(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	c := &s.cells[i]
	switch c.Status {
	case Hidden:
		c.Status = Flagged
		s.flags++
	case Flagged:
		c.Status = Hidden
		s.flags--
	}
	return nil
}

// Chord reveals every hidden neighbour of a revealed numbered cell once the
// player has placed as many flags around it as it has adjacent mines. Each
// neighbour goes through [Session.Reveal] rules, stopping at the first mine.
func (s *Session) Chord(i int) (GameStatus, error) {
	if err := s.checkIndex(i); err != nil {
		return s.status, err
	}
	if s.status != InProgress {
		return s.status, nil
	}
	c := s.cells[i]
	if c.Status != Revealed || c.Kind == Mine {
		return s.status, nil
	}

	neighbors := s.params.Neighbors(i)
	flagged := 0
	for _, j := range neighbors {
		if s.cells[j].Status == Flagged {
			flagged++
		}
	}
	if flagged != c.AdjacentMines {
		return s.status, nil
	}

	var todo *celltodo
	for _, j := range neighbors {
		todo = s.reveal(j, todo)
		if s.status == Lost {
			break
		}
	}
	s.checkWon()
	return s.status, nil
}

// Reset discards the session and generates a replacement from params. The
// receiver is not modified, so a rejected reset leaves the current game
// playable.
func (s *Session) Reset(params BoardParams, r *rand.Rand) (*Session, error) {
	next, err := Generate(params, r)
	if err != nil {
		return nil, err
	}
	Log.WithFields(logrus.Fields{
		"from":   s.params.Seed(),
		"to":     params.Seed(),
		"status": s.status.String(),
	}).Debug("session reset")
	return next, nil
}
