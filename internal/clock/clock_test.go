package clock

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stufflending/internal/domain"
)

// recordingSweeper captures every day a sweep was triggered for.
type recordingSweeper struct {
	days []int
	err  error
}

func (s *recordingSweeper) ProcessDueContracts(_ context.Context, currentDay int) error {
	s.days = append(s.days, currentDay)
	return s.err
}

func TestClock_AdvanceDays(t *testing.T) {
	ctx := context.Background()

	t.Run("Advance Triggers Sweep With New Day", func(t *testing.T) {
		sweeper := &recordingSweeper{}
		c := New(sweeper)

		day, err := c.AdvanceDays(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, day)

		day, err = c.AdvanceDays(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 8, day)
		assert.Equal(t, 8, c.CurrentDay())

		// The sweep runs synchronously on every advance, including a
		// zero-day advance.
		_, err = c.AdvanceDays(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{5, 8, 8}, sweeper.days)
	})

	t.Run("Negative Days Rejected Without Sweep", func(t *testing.T) {
		sweeper := &recordingSweeper{}
		c := New(sweeper)

		day, err := c.AdvanceDays(ctx, -1)
		assert.ErrorIs(t, err, domain.ErrNegativeDays)
		assert.Equal(t, 0, day)
		assert.Empty(t, sweeper.days)
	})

	t.Run("Sweep Failure Keeps Advanced Day", func(t *testing.T) {
		sweeper := &recordingSweeper{err: errors.New("shortfall")}
		c := New(sweeper)

		day, err := c.AdvanceDays(ctx, 2)
		assert.Error(t, err)
		assert.Equal(t, 2, day)
		assert.Equal(t, 2, c.CurrentDay())
	})

	t.Run("Reset", func(t *testing.T) {
		c := New(&recordingSweeper{})
		_, err := c.AdvanceDays(ctx, 4)
		require.NoError(t, err)

		c.Reset()
		assert.Equal(t, 0, c.CurrentDay())
	})
}
