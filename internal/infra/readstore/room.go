package readstore

import (
	"context"
	"errors"
	"fmt"

	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const activeStatusFilter = "status IN ('Pending', 'Checked-in')"

type RoomReadStore struct {
	pool *pgxpool.Pool
}

func NewRoomReadStore(pool *pgxpool.Pool) *RoomReadStore {
	return &RoomReadStore{pool: pool}
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomRow, []queries.MaintenanceIssueView, error) {
	row := &queries.RoomRow{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, room_number, room_type, floor, nightly_rate_cents, on_maintenance
		FROM rooms
		WHERE id = $1`, id,
	).Scan(&row.ID, &row.RoomNumber, &row.RoomType, &row.Floor, &row.NightlyRateCents, &row.OnMaintenance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	if err := s.loadAmenitiesAndSpans(ctx, row); err != nil {
		return nil, nil, err
	}

	issues, err := s.loadIssues(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return row, issues, nil
}

func (s *RoomReadStore) List(ctx context.Context, filter queries.RoomFilter) ([]*queries.RoomRow, int64, error) {
	where := "TRUE"
	args := []any{}

	addArg := func(clause string, value any) {
		args = append(args, value)
		where += fmt.Sprintf(" AND "+clause, len(args))
	}

	if filter.RoomType != nil {
		addArg("room_type = $%d", *filter.RoomType)
	}
	if filter.Floor != nil {
		addArg("floor = $%d", *filter.Floor)
	}
	if filter.OnMaintenance != nil {
		addArg("on_maintenance = $%d", *filter.OnMaintenance)
	}
	if filter.AvailableFrom != nil && filter.AvailableUntil != nil {
		// Free for the whole range: not on maintenance and no active
		// reservation overlapping [from, until).
		args = append(args, *filter.AvailableFrom, *filter.AvailableUntil)
		where += fmt.Sprintf(` AND NOT on_maintenance AND NOT EXISTS (
			SELECT 1 FROM reservations res
			WHERE res.room_id = rooms.id
			  AND res.`+activeStatusFilter+`
			  AND res.start_at < $%d
			  AND res.end_at > $%d
		)`, len(args), len(args)-1)
	}

	var total int64
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM rooms WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count rooms", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(`
		SELECT id, room_number, room_type, floor, nightly_rate_cents, on_maintenance
		FROM rooms
		WHERE %s
		ORDER BY room_number
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomRow
	for rows.Next() {
		row := &queries.RoomRow{}
		if err := rows.Scan(&row.ID, &row.RoomNumber, &row.RoomType, &row.Floor, &row.NightlyRateCents, &row.OnMaintenance); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan room", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate rooms", err)
	}

	for _, row := range result {
		if err := s.loadAmenitiesAndSpans(ctx, row); err != nil {
			return nil, 0, err
		}
	}

	return result, total, nil
}

func (s *RoomReadStore) ActiveSpans(ctx context.Context, roomID uuid.UUID) ([]queries.ReservationSpanRow, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)", roomID).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check room existence", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return s.querySpans(ctx, roomID)
}

func (s *RoomReadStore) loadAmenitiesAndSpans(ctx context.Context, row *queries.RoomRow) error {
	rows, err := s.pool.Query(ctx, "SELECT name FROM room_amenities WHERE room_id = $1 ORDER BY name", row.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to query amenities", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return infra.WrapRepoErr("failed to scan amenity", err)
		}
		row.Amenities = append(row.Amenities, name)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate amenities", err)
	}

	spans, err := s.querySpans(ctx, row.ID)
	if err != nil {
		return err
	}
	row.ActiveSpans = spans
	return nil
}

func (s *RoomReadStore) querySpans(ctx context.Context, roomID uuid.UUID) ([]queries.ReservationSpanRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, start_at, end_at, status
		FROM reservations
		WHERE room_id = $1 AND `+activeStatusFilter+`
		ORDER BY start_at`, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservation spans", err)
	}
	defer rows.Close()

	var spans []queries.ReservationSpanRow
	for rows.Next() {
		var span queries.ReservationSpanRow
		if err := rows.Scan(&span.ID, &span.StartAt, &span.EndAt, &span.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation span", err)
		}
		spans = append(spans, span)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation spans", err)
	}
	return spans, nil
}

func (s *RoomReadStore) loadIssues(ctx context.Context, roomID uuid.UUID) ([]queries.MaintenanceIssueView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, room_id, description, reported_at, estimated_completion, resolved_at
		FROM maintenance_issues
		WHERE room_id = $1
		ORDER BY reported_at DESC`, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query maintenance issues", err)
	}
	defer rows.Close()

	var issues []queries.MaintenanceIssueView
	for rows.Next() {
		var issue queries.MaintenanceIssueView
		if err := rows.Scan(&issue.ID, &issue.RoomID, &issue.Description, &issue.ReportedAt, &issue.EstimatedCompletion, &issue.ResolvedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan maintenance issue", err)
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate maintenance issues", err)
	}
	return issues, nil
}
