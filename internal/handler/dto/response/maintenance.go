package response

import (
	"github.com/google/uuid"
)

type AddMaintenanceIssueResponse struct {
	ID uuid.UUID `json:"id"`
}
