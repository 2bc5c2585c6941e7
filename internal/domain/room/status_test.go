//go:build unit

package room_test

import (
	"testing"
	"time"

	"hotel-management-service/internal/domain/room"
	"hotel-management-service/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(t *testing.T, start, end time.Time, checkedIn bool) room.ActiveReservation {
	t.Helper()
	iv, err := schedule.NewInterval(start, end)
	require.NoError(t, err)
	return room.ActiveReservation{Span: iv, CheckedIn: checkedIn}
}

func TestComputeStatus(t *testing.T) {
	d1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	inside := d1.Add(16 * time.Hour)

	t.Run("maintenance overrides any reservation", func(t *testing.T) {
		active := []room.ActiveReservation{span(t, d1, d2, true)}
		got := room.ComputeStatus(true, active, inside)
		assert.Equal(t, room.StatusMaintenance, got)
	})

	t.Run("maintenance with no reservations", func(t *testing.T) {
		got := room.ComputeStatus(true, nil, inside)
		assert.Equal(t, room.StatusMaintenance, got)
	})

	t.Run("checked-in stay covering the instant is occupied", func(t *testing.T) {
		active := []room.ActiveReservation{span(t, d1, d2, true)}
		got := room.ComputeStatus(false, active, inside)
		assert.Equal(t, room.StatusOccupied, got)
	})

	t.Run("pending stay covering the instant is reserved", func(t *testing.T) {
		active := []room.ActiveReservation{span(t, d1, d2, false)}
		got := room.ComputeStatus(false, active, inside)
		assert.Equal(t, room.StatusReserved, got)
	})

	t.Run("stay start is inclusive", func(t *testing.T) {
		active := []room.ActiveReservation{span(t, d1, d2, true)}
		got := room.ComputeStatus(false, active, d1)
		assert.Equal(t, room.StatusOccupied, got)
	})

	t.Run("stay end is exclusive", func(t *testing.T) {
		active := []room.ActiveReservation{span(t, d1, d2, true)}
		got := room.ComputeStatus(false, active, d2)
		assert.Equal(t, room.StatusAvailable, got)
	})

	t.Run("no covering stay means available", func(t *testing.T) {
		active := []room.ActiveReservation{span(t, d2, d2.AddDate(0, 0, 3), false)}
		got := room.ComputeStatus(false, active, inside)
		assert.Equal(t, room.StatusAvailable, got)
	})

	t.Run("empty reservation set means available", func(t *testing.T) {
		got := room.ComputeStatus(false, nil, inside)
		assert.Equal(t, room.StatusAvailable, got)
	})
}

func TestStatusCollapsed(t *testing.T) {
	assert.Equal(t, room.StatusOccupied, room.StatusReserved.Collapsed())
	assert.Equal(t, room.StatusOccupied, room.StatusOccupied.Collapsed())
	assert.Equal(t, room.StatusMaintenance, room.StatusMaintenance.Collapsed())
	assert.Equal(t, room.StatusAvailable, room.StatusAvailable.Collapsed())
}
