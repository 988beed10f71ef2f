package timer

import (
	"context"
	"time"

	"go.uber.org/atomic"

	"github.com/vancomm/sweeper/internal/mines"
)

const DefaultInterval = time.Second

// Source is the read side of the game the counter follows.
type Source interface {
	Status() mines.GameStatus
	Generation() uint64
	Subscribe() <-chan struct{}
}

// Counter counts elapsed intervals while the game is in progress. It is
// zeroed whenever the source replaces its grid, whatever the reason, and
// never writes to the source.
type Counter struct {
	src      Source
	grids    <-chan struct{}
	interval time.Duration
	elapsed  atomic.Int64
	gen      atomic.Uint64 // grid generation elapsed belongs to
}

func New(src Source, interval time.Duration) *Counter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c := &Counter{
		src:      src,
		grids:    src.Subscribe(),
		interval: interval,
	}
	c.gen.Store(src.Generation())
	return c
}

// Elapsed reads 0 as soon as the source has a new grid, before the counter
// goroutine catches up with the replacement.
func (c *Counter) Elapsed() int64 {
	if c.src.Generation() != c.gen.Load() {
		return 0
	}
	return c.elapsed.Load()
}

func (c *Counter) Interval() time.Duration {
	return c.interval
}

func (c *Counter) tick() {
	c.sync()
	if c.src.Status() == mines.InProgress {
		c.elapsed.Inc()
	}
}

/* zeroes elapsed if the source moved to another grid; counter goroutine only */
func (c *Counter) sync() {
	gen := c.src.Generation()
	if gen != c.gen.Load() {
		c.elapsed.Store(0)
		c.gen.Store(gen)
	}
}

// Run ticks until ctx is done.
func (c *Counter) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	return c.run(ctx, ticker.C)
}

func (c *Counter) run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		if err := c.step(ctx, ticks); err != nil {
			return err
		}
	}
}

func (c *Counter) step(ctx context.Context, ticks <-chan time.Time) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.grids:
		c.sync()
	case <-ticks:
		/* a replacement may be pending behind this tick */
		select {
		case <-c.grids:
		default:
		}
		c.tick()
	}
	return nil
}
