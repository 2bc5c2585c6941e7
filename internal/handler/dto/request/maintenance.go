package request

import (
	"time"

	"hotel-management-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddMaintenanceIssueRequest struct {
	Description         string    `json:"description" binding:"required"`
	EstimatedCompletion time.Time `json:"estimated_completion" binding:"required"`
}

func (r AddMaintenanceIssueRequest) ToParams(roomID uuid.UUID) commands.AddMaintenanceIssueParams {
	return commands.AddMaintenanceIssueParams{
		RoomID:              roomID,
		Description:         r.Description,
		EstimatedCompletion: r.EstimatedCompletion.UTC(),
	}
}

type SetMaintenanceRequest struct {
	OnMaintenance *bool `json:"on_maintenance" binding:"required"`
}
