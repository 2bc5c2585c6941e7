//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-management-service/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStayPeriod(t *testing.T) {
	t.Run("valid stay", func(t *testing.T) {
		sp, err := reservation.NewStayPeriod(
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, 3, sp.Nights())
	})

	t.Run("start equal to end is rejected", func(t *testing.T) {
		d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		_, err := reservation.NewStayPeriod(d, d)
		assert.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(
			time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		)
		assert.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("same-day hours do not make a night", func(t *testing.T) {
		_, err := reservation.NewStayPeriod(
			time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		)
		assert.ErrorIs(t, err, reservation.ErrInvalidStayPeriod)
	})

	t.Run("nights count calendar days, not elapsed hours", func(t *testing.T) {
		// Check-in late, check-out early: still 3 nights.
		sp, err := reservation.NewStayPeriod(
			time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, 3, sp.Nights())
	})
}

func TestMoney(t *testing.T) {
	t.Run("three nights at 100.00", func(t *testing.T) {
		rate, err := reservation.NewMoney(10000)
		require.NoError(t, err)
		assert.Equal(t, int64(30000), rate.Times(3).Cents())
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := reservation.NewMoney(-1)
		assert.ErrorIs(t, err, reservation.ErrNegativePrice)
	})

	t.Run("add", func(t *testing.T) {
		a, _ := reservation.NewMoney(1500)
		b, _ := reservation.NewMoney(2500)
		assert.Equal(t, int64(4000), a.Add(b).Cents())
	})
}
