//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-management-service/internal/domain/reservation"
	"hotel-management-service/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stay(t *testing.T) reservation.StayPeriod {
	t.Helper()
	sp, err := reservation.NewStayPeriod(
		time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return sp
}

func TestNewReservation(t *testing.T) {
	price, _ := reservation.NewMoney(30000)

	t.Run("starts pending", func(t *testing.T) {
		res, err := reservation.NewReservation(uuid.New(), uuid.New(), stay(t), price, 2)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.NotEqual(t, uuid.Nil, res.ID())
	})

	t.Run("guest count must be positive", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.New(), uuid.New(), stay(t), price, 0)
		assert.ErrorIs(t, err, reservation.ErrInvalidGuestCount)
	})
}

func TestStatusTransitions(t *testing.T) {
	price, _ := reservation.NewMoney(30000)

	newRes := func(t *testing.T) *reservation.Reservation {
		res, err := reservation.NewReservation(uuid.New(), uuid.New(), stay(t), price, 2)
		require.NoError(t, err)
		return res
	}

	t.Run("pending to checked-in to checked-out", func(t *testing.T) {
		res := newRes(t)
		require.NoError(t, res.CheckIn())
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
		require.NoError(t, res.CheckOut())
		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
	})

	t.Run("cancel from pending", func(t *testing.T) {
		res := newRes(t)
		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("cannot check out without check-in", func(t *testing.T) {
		res := newRes(t)
		assert.ErrorIs(t, res.CheckOut(), reservation.ErrNotCheckedIn)
	})

	t.Run("cannot cancel a closed reservation", func(t *testing.T) {
		res := newRes(t)
		require.NoError(t, res.Cancel())
		assert.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyClosed)
	})
}

func TestFactory(t *testing.T) {
	factory := reservation.NewFactory()

	t.Run("prices the stay at nightly rate times nights", func(t *testing.T) {
		rm, err := room.NewRoom(uuid.New(), 101, "Standard", 1, 15000, false, nil)
		require.NoError(t, err)

		res, err := factory.CreateReservation(rm, uuid.New(), stay(t), 2)
		require.NoError(t, err)
		assert.Equal(t, int64(30000), res.Price().Cents())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, rm.ID(), res.RoomID())
	})
}
