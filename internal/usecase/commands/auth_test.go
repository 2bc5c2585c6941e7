//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/pkg/jwt"
	"hotel-management-service/internal/pkg/password"
	"hotel-management-service/internal/usecase/commands"
	"hotel-management-service/internal/usecase/queries"
	portsmock "hotel-management-service/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	staffRepo *portsmock.MockStaffRepository
	commands  commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.staffRepo = portsmock.NewMockStaffRepository(s.mockCtrl)
	s.commands = commands.NewAuthCommands(s.staffRepo, jwt.NewService("test-secret", time.Hour))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) account(plain string) *queries.StaffAccountRow {
	hash, err := password.HashPassword(plain)
	s.Require().NoError(err)
	return &queries.StaffAccountRow{
		ID:           uuid.New(),
		Email:        "reception@example.com",
		PasswordHash: hash,
		Role:         "receptionist",
		IsActive:     true,
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: valid credentials yield a token", func() {
		account := s.account("password123")
		s.staffRepo.EXPECT().FindByEmail(gomock.Any(), "reception@example.com").
			Return(account, nil).Times(1)

		result, err := s.commands.Login(context.Background(), "reception@example.com", "password123")
		s.Require().NoError(err)
		s.Equal(account.ID, result.StaffID)
		s.Equal("receptionist", result.Role.String())
		s.NotEmpty(result.AccessToken)
	})

	s.Run("error: wrong password", func() {
		s.staffRepo.EXPECT().FindByEmail(gomock.Any(), "reception@example.com").
			Return(s.account("password123"), nil).Times(1)

		_, err := s.commands.Login(context.Background(), "reception@example.com", "wrong")
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: unknown email is indistinguishable from a wrong password", func() {
		s.staffRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, infra.WrapRepoErr("staff not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.Login(context.Background(), "nobody@example.com", "password123")
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: inactive account", func() {
		account := s.account("password123")
		account.IsActive = false
		s.staffRepo.EXPECT().FindByEmail(gomock.Any(), "reception@example.com").
			Return(account, nil).Times(1)

		_, err := s.commands.Login(context.Background(), "reception@example.com", "password123")
		s.ErrorIs(err, commands.ErrStaffInactive)
	})
}
