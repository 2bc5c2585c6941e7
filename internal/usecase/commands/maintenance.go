package commands

import (
	"context"
	"time"

	"hotel-management-service/internal/domain/room"
	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/pkg/clock"
	"hotel-management-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type AddMaintenanceIssueParams struct {
	RoomID              uuid.UUID
	Description         string
	EstimatedCompletion time.Time
}

type MaintenanceCommands interface {
	AddIssue(ctx context.Context, params AddMaintenanceIssueParams) (uuid.UUID, error)
	SetRoomMaintenance(ctx context.Context, roomID uuid.UUID, onMaintenance bool) error
}

type maintenanceCommandsImpl struct {
	maintenanceRepo MaintenanceRepository
	roomRepo        RoomRepository
	clock           clock.Clock
}

func NewMaintenanceCommands(
	maintenanceRepo MaintenanceRepository,
	roomRepo RoomRepository,
	clock clock.Clock,
) MaintenanceCommands {
	return &maintenanceCommandsImpl{
		maintenanceRepo: maintenanceRepo,
		roomRepo:        roomRepo,
		clock:           clock,
	}
}

// AddIssue records a maintenance issue. It deliberately does NOT set the
// room's maintenance flag: the flag is managed only through
// SetRoomMaintenance, so reporting a dripping tap never blocks bookings by
// itself.
func (m *maintenanceCommandsImpl) AddIssue(ctx context.Context, params AddMaintenanceIssueParams) (uuid.UUID, error) {
	if _, err := m.roomRepo.FindWithActiveReservations(ctx, params.RoomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrRoomNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	issue, err := room.NewMaintenanceIssue(params.RoomID, params.Description, m.clock.NowUTC(), params.EstimatedCompletion)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	issueID, err := m.maintenanceRepo.AddIssue(ctx, issue)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return issueID, nil
}

func (m *maintenanceCommandsImpl) SetRoomMaintenance(ctx context.Context, roomID uuid.UUID, onMaintenance bool) error {
	err := m.maintenanceRepo.SetRoomMaintenance(ctx, roomID, onMaintenance, m.clock.NowUTC())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
