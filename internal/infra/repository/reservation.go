package repository

import (
	"context"

	"hotel-management-service/internal/domain/reservation"
	"hotel-management-service/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, rsv *reservation.Reservation) (uuid.UUID, error) {
	stay := rsv.Stay().Interval()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reservations (id, room_id, customer_id, start_at, end_at, status, price_cents, guest_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rsv.ID(), rsv.RoomID(), rsv.CustomerID(),
		stay.Start(), stay.End(), string(rsv.Status()),
		rsv.Price().Cents(), rsv.GuestCount(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation", err, infra.ClassifyPgErr(err))
	}
	return rsv.ID(), nil
}
