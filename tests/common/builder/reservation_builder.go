//go:build unit || e2e

package builder

import (
	reqdto "hotel-management-service/internal/handler/dto/request"
	"hotel-management-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	CustomerIDNumber string
	RoomID           uuid.UUID
	StartDate        string
	EndDate          string
	GuestCount       int
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		CustomerIDNumber: "12345678901",
		RoomID:           uuid.New(),
		StartDate:        "2025-07-10",
		EndDate:          "2025-07-12",
		GuestCount:       2,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CustomerIDNumber: b.CustomerIDNumber,
		RoomID:           b.RoomID,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		GuestCount:       b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildParams() (commands.CreateReservationParams, error) {
	return b.BuildDTO().ToParams()
}
