package commands

import (
	"context"
	"log/slog"

	"hotel-management-service/internal/domain/staff"
	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/pkg/errs"
	"hotel-management-service/internal/pkg/jwt"
	"hotel-management-service/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrStaffInactive      = errs.New("staff account inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	StaffID     uuid.UUID
	Role        staff.Role
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	staffRepo  StaffRepository
	jwtService *jwt.Service
}

func NewAuthCommands(staffRepo StaffRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	account, err := a.staffRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password; do not leak which accounts exist.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !account.IsActive {
		return nil, ErrStaffInactive
	}

	if err := password.ComparePassword(account.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := staff.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(account.ID, role)
	if err != nil {
		slog.Error("failed to generate access token", "staff_id", account.ID, "error", err.Error())
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		StaffID:     account.ID,
		Role:        role,
		AccessToken: token,
	}, nil
}
