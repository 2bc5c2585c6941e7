package commands

import (
	"context"
	"time"

	"hotel-management-service/internal/domain/reservation"
	"hotel-management-service/internal/domain/room"
	"hotel-management-service/internal/usecase/queries"

	"github.com/google/uuid"
)

// RoomSnapshot is a room read for one command, including the active
// (pending or checked-in) reservations the conflict validator needs.
type RoomSnapshot struct {
	ID               uuid.UUID
	RoomNumber       int
	RoomType         string
	Floor            int
	NightlyRateCents int64
	OnMaintenance    bool
	Amenities        []string
	ActiveSpans      []queries.ReservationSpanRow
}

type CustomerSnapshot struct {
	ID       uuid.UUID
	IDNumber string
	FullName string
}

type RoomRepository interface {
	// FindWithActiveReservations returns the room and only its
	// Pending/Checked-in reservations.
	FindWithActiveReservations(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type CustomerRepository interface {
	FindByIDNumber(ctx context.Context, idNumber string) (*CustomerSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
}

type MaintenanceRepository interface {
	AddIssue(ctx context.Context, issue *room.MaintenanceIssue) (uuid.UUID, error)
	SetRoomMaintenance(ctx context.Context, roomID uuid.UUID, onMaintenance bool, at time.Time) error
}

type StaffRepository interface {
	FindByEmail(ctx context.Context, email string) (*queries.StaffAccountRow, error)
}
