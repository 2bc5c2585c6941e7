package readstore

import (
	"context"
	"errors"

	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const reservationViewQuery = `
	SELECT res.id, res.room_id, r.room_number, res.customer_id, c.full_name,
	       res.start_at, res.end_at, res.status, res.price_cents, res.guest_count,
	       res.created_at
	FROM reservations res
	JOIN rooms r ON r.id = res.room_id
	JOIN customers c ON c.id = res.customer_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view := &queries.ReservationView{}
	err := s.pool.QueryRow(ctx, reservationViewQuery+" WHERE res.id = $1", id).Scan(
		&view.ID, &view.RoomID, &view.RoomNumber, &view.CustomerID, &view.CustomerFullName,
		&view.StartAt, &view.EndAt, &view.Status, &view.PriceCents, &view.GuestCount,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := s.pool.Query(ctx, reservationViewQuery+" WHERE res.room_id = $1 ORDER BY res.start_at", roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations by room", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view := &queries.ReservationView{}
		if err := rows.Scan(
			&view.ID, &view.RoomID, &view.RoomNumber, &view.CustomerID, &view.CustomerFullName,
			&view.StartAt, &view.EndAt, &view.Status, &view.PriceCents, &view.GuestCount,
			&view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}
