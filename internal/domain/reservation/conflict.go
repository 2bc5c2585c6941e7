package reservation

import (
	"hotel-management-service/internal/domain/schedule"

	"github.com/google/uuid"
)

// Span is the conflict-relevant slice of a persisted reservation.
type Span struct {
	ID       uuid.UUID
	Interval schedule.Interval
	Status   Status
}

// IsRangeAvailable reports whether the candidate interval clears every active
// reservation in existing. Cancelled and checked-out reservations never
// block. excludeID skips the reservation being edited so a room cannot
// conflict with itself.
func IsRangeAvailable(existing []Span, candidate schedule.Interval, excludeID *uuid.UUID) bool {
	for _, span := range existing {
		if !span.Status.IsActive() {
			continue
		}
		if excludeID != nil && span.ID == *excludeID {
			continue
		}
		if span.Interval.Overlaps(candidate) {
			return false
		}
	}
	return true
}
