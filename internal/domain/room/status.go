package room

import (
	"time"

	"hotel-management-service/internal/domain/schedule"
)

// ActiveReservation is the slice of a reservation that status computation
// needs: its stay interval and whether the guest has checked in. Only
// reservations in an active status (pending or checked-in) belong here.
type ActiveReservation struct {
	Span      schedule.Interval
	CheckedIn bool
}

// ComputeStatus derives a room's status at the check instant. Precedence is
// strict: the maintenance flag wins over any reservation data, then the first
// active reservation containing the instant decides between Occupied and
// Reserved, otherwise the room is Available.
func ComputeStatus(onMaintenance bool, active []ActiveReservation, at time.Time) Status {
	if onMaintenance {
		return StatusMaintenance
	}

	for _, res := range active {
		if res.Span.Contains(at) {
			if res.CheckedIn {
				return StatusOccupied
			}
			return StatusReserved
		}
	}

	return StatusAvailable
}
