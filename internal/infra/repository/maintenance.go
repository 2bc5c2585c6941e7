package repository

import (
	"context"
	"time"

	"hotel-management-service/internal/domain/room"
	"hotel-management-service/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaintenanceRepository struct {
	pool *pgxpool.Pool
}

func NewMaintenanceRepository(pool *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{pool: pool}
}

func (r *MaintenanceRepository) AddIssue(ctx context.Context, issue *room.MaintenanceIssue) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO maintenance_issues (id, room_id, description, reported_at, estimated_completion, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		issue.ID(), issue.RoomID(), issue.Description(),
		issue.ReportedAt(), issue.EstimatedCompletion(), issue.ResolvedAt(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert maintenance issue", err, infra.ClassifyPgErr(err))
	}
	return issue.ID(), nil
}

func (r *MaintenanceRepository) SetRoomMaintenance(ctx context.Context, roomID uuid.UUID, onMaintenance bool, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE rooms SET on_maintenance = $2, updated_at = $3
		WHERE id = $1`,
		roomID, onMaintenance, at,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update maintenance flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
