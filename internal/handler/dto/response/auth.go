package response

import (
	"hotel-management-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	StaffID     uuid.UUID `json:"staff_id"`
	Role        string    `json:"role"`
	AccessToken string    `json:"access_token"`
}

func FromLoginResult(result *commands.LoginResult) LoginResponse {
	return LoginResponse{
		StaffID:     result.StaffID,
		Role:        result.Role.String(),
		AccessToken: result.AccessToken,
	}
}
