package repository

import (
	"context"
	"errors"

	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) FindByIDNumber(ctx context.Context, idNumber string) (*commands.CustomerSnapshot, error) {
	snapshot := &commands.CustomerSnapshot{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, id_number, full_name
		FROM customers
		WHERE id_number = $1`, idNumber,
	).Scan(&snapshot.ID, &snapshot.IDNumber, &snapshot.FullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by id number", err)
	}
	return snapshot, nil
}
