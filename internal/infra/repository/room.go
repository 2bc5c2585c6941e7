package repository

import (
	"context"
	"errors"

	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/usecase/commands"
	"hotel-management-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

func (r *RoomRepository) FindWithActiveReservations(ctx context.Context, id uuid.UUID) (*commands.RoomSnapshot, error) {
	snapshot := &commands.RoomSnapshot{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, room_number, room_type, floor, nightly_rate_cents, on_maintenance
		FROM rooms
		WHERE id = $1`, id,
	).Scan(&snapshot.ID, &snapshot.RoomNumber, &snapshot.RoomType, &snapshot.Floor,
		&snapshot.NightlyRateCents, &snapshot.OnMaintenance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	amenityRows, err := r.pool.Query(ctx, "SELECT name FROM room_amenities WHERE room_id = $1 ORDER BY name", id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query amenities", err)
	}
	defer amenityRows.Close()
	for amenityRows.Next() {
		var name string
		if err := amenityRows.Scan(&name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan amenity", err)
		}
		snapshot.Amenities = append(snapshot.Amenities, name)
	}
	if err := amenityRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate amenities", err)
	}

	spanRows, err := r.pool.Query(ctx, `
		SELECT id, start_at, end_at, status
		FROM reservations
		WHERE room_id = $1 AND status IN ('Pending', 'Checked-in')
		ORDER BY start_at`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active reservations", err)
	}
	defer spanRows.Close()
	for spanRows.Next() {
		var span queries.ReservationSpanRow
		if err := spanRows.Scan(&span.ID, &span.StartAt, &span.EndAt, &span.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active reservation", err)
		}
		snapshot.ActiveSpans = append(snapshot.ActiveSpans, span)
	}
	if err := spanRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active reservations", err)
	}

	return snapshot, nil
}
