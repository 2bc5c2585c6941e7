//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-management-service/internal/domain/reservation"
	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/pkg/roomlock"
	"hotel-management-service/internal/usecase/commands"
	"hotel-management-service/tests/common/builder"
	portsmock "hotel-management-service/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	reservationRepo *portsmock.MockReservationRepository
	roomRepo        *portsmock.MockRoomRepository
	customerRepo    *portsmock.MockCustomerRepository
	commands        commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.reservationRepo = portsmock.NewMockReservationRepository(s.mockCtrl)
	s.roomRepo = portsmock.NewMockRoomRepository(s.mockCtrl)
	s.customerRepo = portsmock.NewMockCustomerRepository(s.mockCtrl)
	s.commands = commands.NewReservationCommands(
		s.reservationRepo,
		s.roomRepo,
		s.customerRepo,
		reservation.NewFactory(),
		roomlock.NewKeyedMutex(),
	)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) params(roomID uuid.UUID) commands.CreateReservationParams {
	return commands.CreateReservationParams{
		CustomerIDNumber: "12345678901",
		RoomID:           roomID,
		StartDate:        time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
		GuestCount:       2,
	}
}

func (s *ReservationCommandsTestSuite) customer() *commands.CustomerSnapshot {
	return &commands.CustomerSnapshot{
		ID:       uuid.New(),
		IDNumber: "12345678901",
		FullName: "John Doe",
	}
}

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	s.Run("success: two nights at 150.00 per night cost 300.00, persisted as Pending", func() {
		roomB := builder.NewRoomBuilder()
		customer := s.customer()
		reservationID := uuid.New()

		s.customerRepo.EXPECT().FindByIDNumber(gomock.Any(), "12345678901").
			Return(customer, nil).Times(1)
		s.roomRepo.EXPECT().FindWithActiveReservations(gomock.Any(), roomB.ID).
			Return(roomB.BuildSnapshot(), nil).Times(1)
		s.reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) (uuid.UUID, error) {
				s.Equal(reservation.StatusPending, r.Status())
				s.Equal(int64(30000), r.Price().Cents())
				s.Equal(customer.ID, r.CustomerID())
				s.Equal(roomB.ID, r.RoomID())
				s.Equal(2, r.Stay().Nights())
				return reservationID, nil
			}).Times(1)

		result, err := s.commands.CreateReservation(context.Background(), s.params(roomB.ID))
		s.Require().NoError(err)
		s.Equal(reservationID, result.ID)
		s.Equal(int64(30000), result.PriceCents)
	})

	s.Run("error: unknown customer fails before the room is ever read", func() {
		roomID := uuid.New()
		s.customerRepo.EXPECT().FindByIDNumber(gomock.Any(), "12345678901").
			Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.CreateReservation(context.Background(), s.params(roomID))
		s.ErrorIs(err, commands.ErrCustomerNotFound)
	})

	s.Run("error: unknown room", func() {
		roomID := uuid.New()
		s.customerRepo.EXPECT().FindByIDNumber(gomock.Any(), "12345678901").
			Return(s.customer(), nil).Times(1)
		s.roomRepo.EXPECT().FindWithActiveReservations(gomock.Any(), roomID).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.CreateReservation(context.Background(), s.params(roomID))
		s.ErrorIs(err, commands.ErrRoomNotFound)
	})

	s.Run("error: same-day stay is rejected as an invalid period", func() {
		roomID := uuid.New()
		s.customerRepo.EXPECT().FindByIDNumber(gomock.Any(), "12345678901").
			Return(s.customer(), nil).Times(1)

		params := s.params(roomID)
		params.EndDate = params.StartDate

		_, err := s.commands.CreateReservation(context.Background(), params)
		s.ErrorIs(err, commands.ErrInvalidStayPeriod)
	})

	s.Run("error: room under maintenance blocks booking even when free", func() {
		roomB := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.OnMaintenance = true
		})
		s.customerRepo.EXPECT().FindByIDNumber(gomock.Any(), "12345678901").
			Return(s.customer(), nil).Times(1)
		s.roomRepo.EXPECT().FindWithActiveReservations(gomock.Any(), roomB.ID).
			Return(roomB.BuildSnapshot(), nil).Times(1)

		_, err := s.commands.CreateReservation(context.Background(), s.params(roomB.ID))
		s.ErrorIs(err, commands.ErrRoomUnderMaintenance)
	})

	s.Run("error: overlapping active reservation makes the room unavailable", func() {
		roomB := builder.NewRoomBuilder().WithActiveSpan(
			time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
			"Pending",
		)
		s.customerRepo.EXPECT().FindByIDNumber(gomock.Any(), "12345678901").
			Return(s.customer(), nil).Times(1)
		s.roomRepo.EXPECT().FindWithActiveReservations(gomock.Any(), roomB.ID).
			Return(roomB.BuildSnapshot(), nil).Times(1)

		_, err := s.commands.CreateReservation(context.Background(), s.params(roomB.ID))
		s.ErrorIs(err, commands.ErrRoomUnavailable)
	})

	s.Run("success: back-to-back stays do not collide", func() {
		roomB := builder.NewRoomBuilder().WithActiveSpan(
			time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
			"Checked-in",
		)
		s.customerRepo.EXPECT().FindByIDNumber(gomock.Any(), "12345678901").
			Return(s.customer(), nil).Times(1)
		s.roomRepo.EXPECT().FindWithActiveReservations(gomock.Any(), roomB.ID).
			Return(roomB.BuildSnapshot(), nil).Times(1)
		s.reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.New(), nil).Times(1)

		_, err := s.commands.CreateReservation(context.Background(), s.params(roomB.ID))
		s.NoError(err)
	})

	s.Run("error: storage-level exclusion violation surfaces as a conflict", func() {
		roomB := builder.NewRoomBuilder()
		s.customerRepo.EXPECT().FindByIDNumber(gomock.Any(), "12345678901").
			Return(s.customer(), nil).Times(1)
		s.roomRepo.EXPECT().FindWithActiveReservations(gomock.Any(), roomB.ID).
			Return(roomB.BuildSnapshot(), nil).Times(1)
		s.reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("overlap", nil, infra.KindConflict)).Times(1)

		_, err := s.commands.CreateReservation(context.Background(), s.params(roomB.ID))
		s.ErrorIs(err, commands.ErrReservationConflict)
	})

	s.Run("error: zero guest count fails domain validation", func() {
		roomB := builder.NewRoomBuilder()
		s.customerRepo.EXPECT().FindByIDNumber(gomock.Any(), "12345678901").
			Return(s.customer(), nil).Times(1)
		s.roomRepo.EXPECT().FindWithActiveReservations(gomock.Any(), roomB.ID).
			Return(roomB.BuildSnapshot(), nil).Times(1)

		params := s.params(roomB.ID)
		params.GuestCount = 0

		_, err := s.commands.CreateReservation(context.Background(), params)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})
}
