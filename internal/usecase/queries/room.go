package queries

import (
	"context"
	"time"

	"hotel-management-service/internal/domain/reservation"
	"hotel-management-service/internal/domain/room"
	"hotel-management-service/internal/domain/schedule"
	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/pkg/clock"
	"hotel-management-service/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// RoomFilter narrows the room listing. AvailableFrom/AvailableUntil filter to
// rooms free for the whole range; both must be set together.
type RoomFilter struct {
	RoomType       *string
	Floor          *int
	OnMaintenance  *bool
	AvailableFrom  *time.Time
	AvailableUntil *time.Time
	Page           int
	PageSize       int
}

type ListRoomsParams struct {
	Filter RoomFilter
	// StatusCheckDate is the normalized caller-supplied check input; nil
	// means "right now".
	StatusCheckDate *time.Time
}

type RoomQueries interface {
	ListRooms(ctx context.Context, params ListRoomsParams) (*PagedRooms, error)
	GetRoom(ctx context.Context, id uuid.UUID, statusCheckDate *time.Time) (*RoomDetailView, error)
	IsRoomAvailable(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeReservationID *uuid.UUID) (bool, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomRow, []MaintenanceIssueView, error)
	List(ctx context.Context, filter RoomFilter) ([]*RoomRow, int64, error)
	ActiveSpans(ctx context.Context, roomID uuid.UUID) ([]ReservationSpanRow, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
	clock clock.Clock
}

func NewRoomQueries(store RoomReadStore, clock clock.Clock) RoomQueries {
	return &roomQueriesImpl{store: store, clock: clock}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context, params ListRoomsParams) (*PagedRooms, error) {
	filter := params.Filter
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	checkAt := schedule.NormalizeCheckTime(params.StatusCheckDate, q.clock.NowUTC())

	rows, total, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := make([]*RoomListItem, len(rows))
	for i, row := range rows {
		items[i] = &RoomListItem{
			ID:               row.ID,
			RoomNumber:       row.RoomNumber,
			RoomType:         row.RoomType,
			Floor:            row.Floor,
			NightlyRateCents: row.NightlyRateCents,
			OnMaintenance:    row.OnMaintenance,
			Amenities:        row.Amenities,
			Status:           computeRowStatus(row, checkAt).String(),
		}
	}

	return &PagedRooms{
		Items:           items,
		Page:            filter.Page,
		PageSize:        filter.PageSize,
		TotalRecords:    total,
		StatusCheckTime: checkAt,
	}, nil
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id uuid.UUID, statusCheckDate *time.Time) (*RoomDetailView, error) {
	checkAt := schedule.NormalizeCheckTime(statusCheckDate, q.clock.NowUTC())

	row, issues, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &RoomDetailView{
		ID:               row.ID,
		RoomNumber:       row.RoomNumber,
		RoomType:         row.RoomType,
		Floor:            row.Floor,
		NightlyRateCents: row.NightlyRateCents,
		OnMaintenance:    row.OnMaintenance,
		Amenities:        row.Amenities,
		Issues:           issues,
		Status:           computeRowStatus(row, checkAt).String(),
		StatusCheckTime:  checkAt,
	}, nil
}

func (q *roomQueriesImpl) IsRoomAvailable(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeReservationID *uuid.UUID) (bool, error) {
	candidate, err := schedule.NewInterval(start, end)
	if err != nil {
		return false, errs.Mark(err, errs.ErrInvalidStayPeriod)
	}

	spans, err := q.store.ActiveSpans(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.ErrRoomNotFound
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return reservation.IsRangeAvailable(toSpans(spans), candidate, excludeReservationID), nil
}

func computeRowStatus(row *RoomRow, at time.Time) room.Status {
	active := make([]room.ActiveReservation, 0, len(row.ActiveSpans))
	for _, s := range row.ActiveSpans {
		iv, err := schedule.NewInterval(s.StartAt, s.EndAt)
		if err != nil {
			continue
		}
		active = append(active, room.ActiveReservation{
			Span:      iv,
			CheckedIn: reservation.Status(s.Status) == reservation.StatusCheckedIn,
		})
	}
	return room.ComputeStatus(row.OnMaintenance, active, at)
}

func toSpans(rows []ReservationSpanRow) []reservation.Span {
	spans := make([]reservation.Span, 0, len(rows))
	for _, r := range rows {
		iv, err := schedule.NewInterval(r.StartAt, r.EndAt)
		if err != nil {
			continue
		}
		spans = append(spans, reservation.Span{
			ID:       r.ID,
			Interval: iv,
			Status:   reservation.Status(r.Status),
		})
	}
	return spans
}
