package session

import (
	"math/rand/v2"
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/vancomm/sweeper/internal/mines"
)

// Manager owns the active game. Every engine operation runs under one mutex
// for its whole duration, cascade included. Game status and the grid
// generation are also published atomically so that readers such as the
// elapsed-time counter never take the lock.
type Manager struct {
	mu      sync.Mutex
	session *mines.Session
	rnd     *rand.Rand
	log     *logrus.Logger

	status     atomic.Int32
	generation atomic.Uint64

	subsMu sync.Mutex
	subs   []chan struct{}
}

type Snapshot struct {
	Params     mines.BoardParams
	Cells      mines.Grid
	Status     mines.GameStatus
	FlagCount  int
	MinesLeft  int
	Generation uint64
}

func (s Snapshot) String() string {
	return s.Cells.ToString(s.Params.Width)
}

func New(params mines.BoardParams, rnd *rand.Rand, log *logrus.Logger) (*Manager, error) {
	if rnd == nil {
		rnd = mines.NewRand()
	}
	if log == nil {
		log = mines.Log
	}
	session, err := mines.NewGame(params, rnd)
	if err != nil {
		return nil, err
	}
	m := &Manager{
		session: session,
		rnd:     rnd,
		log:     log,
	}
	m.publish()
	return m, nil
}

/* must hold m.mu */
func (m *Manager) publish() {
	m.status.Store(int32(m.session.Status()))
}

func (m *Manager) Status() mines.GameStatus {
	return mines.GameStatus(m.status.Load())
}

// Generation counts grid replacements since the manager was created.
func (m *Manager) Generation() uint64 {
	return m.generation.Load()
}

// Subscribe returns a channel that receives a value after every grid
// replacement. Notifications coalesce when the receiver lags behind.
func (m *Manager) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	m.subsMu.Lock()
	m.subs = append(m.subs, ch)
	m.subsMu.Unlock()
	return ch
}

func (m *Manager) notify() {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (m *Manager) Params() mines.BoardParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Params()
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Params:     m.session.Params(),
		Cells:      m.session.Cells(),
		Status:     m.session.Status(),
		FlagCount:  m.session.FlagCount(),
		MinesLeft:  m.session.MinesLeft(),
		Generation: m.generation.Load(),
	}
}

func (m *Manager) Reveal(i int) (mines.GameStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := m.session.Status()
	status, err := m.session.Reveal(i)
	if err != nil {
		return status, err
	}
	m.publish()
	if status != before {
		m.log.WithFields(logrus.Fields{
			"index":  i,
			"status": status.String(),
		}).Info("game finished")
	}
	return status, nil
}

func (m *Manager) ToggleFlag(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.ToggleFlag(i)
}

func (m *Manager) Chord(i int) (mines.GameStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := m.session.Status()
	status, err := m.session.Chord(i)
	if err != nil {
		return status, err
	}
	m.publish()
	if status != before {
		m.log.WithFields(logrus.Fields{
			"index":  i,
			"status": status.String(),
		}).Info("game finished")
	}
	return status, nil
}

// Reset replaces the active game with a fresh one generated from params. On
// error the active game is kept as is.
func (m *Manager) Reset(params mines.BoardParams) error {
	m.mu.Lock()
	next, err := m.session.Reset(params, m.rnd)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.session = next
	m.publish()
	gen := m.generation.Inc()
	m.mu.Unlock()

	m.log.WithFields(logrus.Fields{
		"seed":       params.Seed(),
		"generation": gen,
	}).Info("new game")
	m.notify()
	return nil
}

// Restart resets with the active game's own params.
func (m *Manager) Restart() error {
	return m.Reset(m.Params())
}
