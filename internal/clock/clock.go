// Package clock tracks the simulated day counter that drives contract
// settlement. Time only moves when AdvanceDays is called; there is no
// background progression.
package clock

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"stufflending/internal/domain"
)

// Sweeper settles every due contract as of the given day. The settlement
// service implements it.
type Sweeper interface {
	ProcessDueContracts(ctx context.Context, currentDay int) error
}

// Clock holds the current simulated day, starting at 0. Advancing the day
// triggers a settlement sweep synchronously, before AdvanceDays returns.
type Clock struct {
	mu      sync.Mutex
	day     int
	sweeper Sweeper
}

func New(sweeper Sweeper) *Clock {
	return &Clock{sweeper: sweeper}
}

// AdvanceDays moves the clock forward by days and sweeps all contracts due
// by the new day. It returns the new current day. A sweep failure does not
// roll the day back; the error is reported alongside the new day so the
// caller can surface which settlements were skipped.
func (c *Clock) AdvanceDays(ctx context.Context, days int) (int, error) {
	if days < 0 {
		return c.CurrentDay(), errors.Wrapf(domain.ErrNegativeDays, "got %d", days)
	}

	c.mu.Lock()
	c.day += days
	day := c.day
	c.mu.Unlock()

	if err := c.sweeper.ProcessDueContracts(ctx, day); err != nil {
		return day, err
	}
	return day, nil
}

// CurrentDay returns the current simulated day.
func (c *Clock) CurrentDay() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.day
}

// Reset sets the day back to 0. Used at system initialization only.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day = 0
}
