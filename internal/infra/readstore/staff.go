package readstore

import (
	"context"
	"errors"
	"strings"

	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffReadStore struct {
	pool *pgxpool.Pool
}

func NewStaffReadStore(pool *pgxpool.Pool) *StaffReadStore {
	return &StaffReadStore{pool: pool}
}

func (s *StaffReadStore) FindByEmail(ctx context.Context, email string) (*queries.StaffAccountRow, error) {
	account := &queries.StaffAccountRow{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active
		FROM staff
		WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)),
	).Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Role, &account.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("staff account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by email", err)
	}
	return account, nil
}
