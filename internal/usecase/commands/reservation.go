package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-management-service/internal/domain/reservation"
	"hotel-management-service/internal/domain/room"
	"hotel-management-service/internal/domain/schedule"
	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/pkg/errs"
	"hotel-management-service/internal/pkg/roomlock"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound     = errs.ErrCustomerNotFound
	ErrRoomNotFound         = errs.ErrRoomNotFound
	ErrRoomUnderMaintenance = errs.ErrRoomUnderMaintenance
	ErrRoomUnavailable      = errs.ErrRoomUnavailable
	ErrInvalidStayPeriod    = errs.ErrInvalidStayPeriod
	ErrReservationConflict  = errs.ErrReservationConflict
	ErrDomainValidation     = errs.ErrDomainValidation
)

type CreateReservationParams struct {
	CustomerIDNumber string
	RoomID           uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	GuestCount       int
}

type CreateReservationResult struct {
	ID         uuid.UUID
	PriceCents int64
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error)
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	customerRepo    CustomerRepository
	factory         *reservation.Factory
	roomLocks       *roomlock.KeyedMutex
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	customerRepo CustomerRepository,
	factory *reservation.Factory,
	roomLocks *roomlock.KeyedMutex,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		customerRepo:    customerRepo,
		factory:         factory,
		roomLocks:       roomLocks,
	}
}

// CreateReservation runs the booking workflow. Every gate fails fast; no
// partial reservation is ever persisted and nothing is retried here.
func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error) {
	customerEntity, err := r.resolveCustomer(ctx, params.CustomerIDNumber)
	if err != nil {
		return nil, err
	}

	stay, err := reservation.NewStayPeriod(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayPeriod)
	}

	// The room snapshot and the insert must see the same reservation set;
	// the per-room lock covers the whole validate-and-insert window.
	r.roomLocks.Lock(params.RoomID)
	defer r.roomLocks.Unlock(params.RoomID)

	roomEntity, spans, err := r.resolveRoom(ctx, params.RoomID)
	if err != nil {
		return nil, err
	}

	if roomEntity.OnMaintenance() {
		return nil, ErrRoomUnderMaintenance
	}

	if !reservation.IsRangeAvailable(spans, stay.Interval(), nil) {
		return nil, ErrRoomUnavailable
	}

	reservationEntity, err := r.factory.CreateReservation(roomEntity, customerEntity.ID, stay, params.GuestCount)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	reservationID, err := r.reservationRepo.Create(ctx, reservationEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Another writer beat us to the range despite the pre-flight
			// check; surface distinctly so clients can say "just booked".
			slog.Warn("reservation exclusion constraint hit",
				"room_id", params.RoomID, "stay", stay.Interval().String())
			return nil, ErrReservationConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateReservationResult{
		ID:         reservationID,
		PriceCents: reservationEntity.Price().Cents(),
	}, nil
}

func (r *reservationCommandsImpl) resolveCustomer(ctx context.Context, idNumber string) (*CustomerSnapshot, error) {
	customerEntity, err := r.customerRepo.FindByIDNumber(ctx, idNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return customerEntity, nil
}

func (r *reservationCommandsImpl) resolveRoom(ctx context.Context, roomID uuid.UUID) (*room.Room, []reservation.Span, error) {
	snapshot, err := r.roomRepo.FindWithActiveReservations(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrRoomNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	roomEntity, err := room.NewRoom(
		snapshot.ID,
		snapshot.RoomNumber,
		snapshot.RoomType,
		snapshot.Floor,
		snapshot.NightlyRateCents,
		snapshot.OnMaintenance,
		snapshot.Amenities,
	)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDomainValidation)
	}

	spans := make([]reservation.Span, 0, len(snapshot.ActiveSpans))
	for _, s := range snapshot.ActiveSpans {
		iv, ivErr := schedule.NewInterval(s.StartAt, s.EndAt)
		if ivErr != nil {
			continue
		}
		spans = append(spans, reservation.Span{
			ID:       s.ID,
			Interval: iv,
			Status:   reservation.Status(s.Status),
		})
	}

	return roomEntity, spans, nil
}
