//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-management-service/internal/domain/reservation"
	"hotel-management-service/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(t *testing.T, startDay, endDay int) schedule.Interval {
	t.Helper()
	iv, err := schedule.NewInterval(
		time.Date(2025, 6, startDay, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, endDay, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return iv
}

func TestIsRangeAvailable(t *testing.T) {
	existing := []reservation.Span{
		{ID: uuid.New(), Interval: interval(t, 1, 5), Status: reservation.StatusPending},
	}

	t.Run("overlapping range is unavailable", func(t *testing.T) {
		assert.False(t, reservation.IsRangeAvailable(existing, interval(t, 3, 7), nil))
		assert.False(t, reservation.IsRangeAvailable(existing, interval(t, 1, 5), nil))
		assert.False(t, reservation.IsRangeAvailable(existing, interval(t, 2, 3), nil))
	})

	t.Run("back-to-back range is available", func(t *testing.T) {
		assert.True(t, reservation.IsRangeAvailable(existing, interval(t, 5, 8), nil))
	})

	t.Run("range fully before is available", func(t *testing.T) {
		prior, err := schedule.NewInterval(
			time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.True(t, reservation.IsRangeAvailable(existing, prior, nil))
	})

	t.Run("cancelled and checked-out reservations never block", func(t *testing.T) {
		closed := []reservation.Span{
			{ID: uuid.New(), Interval: interval(t, 1, 5), Status: reservation.StatusCancelled},
			{ID: uuid.New(), Interval: interval(t, 1, 5), Status: reservation.StatusCheckedOut},
		}
		assert.True(t, reservation.IsRangeAvailable(closed, interval(t, 2, 4), nil))
	})

	t.Run("checked-in reservations block", func(t *testing.T) {
		occupied := []reservation.Span{
			{ID: uuid.New(), Interval: interval(t, 1, 5), Status: reservation.StatusCheckedIn},
		}
		assert.False(t, reservation.IsRangeAvailable(occupied, interval(t, 4, 6), nil))
	})

	t.Run("excluded reservation does not conflict with itself", func(t *testing.T) {
		editID := existing[0].ID
		assert.True(t, reservation.IsRangeAvailable(existing, interval(t, 2, 6), &editID))

		otherID := uuid.New()
		assert.False(t, reservation.IsRangeAvailable(existing, interval(t, 2, 6), &otherID))
	})

	t.Run("no existing reservations", func(t *testing.T) {
		assert.True(t, reservation.IsRangeAvailable(nil, interval(t, 1, 5), nil))
	})
}
