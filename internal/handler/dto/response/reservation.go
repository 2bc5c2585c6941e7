package response

import (
	"time"

	"hotel-management-service/internal/usecase/commands"
	"hotel-management-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	PriceCents int64     `json:"priceCents"`
}

type ReservationResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"roomId"`
	RoomNumber       int       `json:"roomNumber"`
	CustomerID       uuid.UUID `json:"customerId"`
	CustomerFullName string    `json:"customerFullName"`
	StartAt          time.Time `json:"startAt"`
	EndAt            time.Time `json:"endAt"`
	Status           string    `json:"status"`
	PriceCents       int64     `json:"priceCents"`
	GuestCount       int       `json:"guestCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromCreateReservationResult(rm *commands.CreateReservationResult) CreateReservationResponse {
	return CreateReservationResponse{
		ID:         rm.ID,
		PriceCents: rm.PriceCents,
	}
}

func FromReservationView(rm *queries.ReservationView) ReservationResponse {
	return ReservationResponse{
		ID:               rm.ID,
		RoomID:           rm.RoomID,
		RoomNumber:       rm.RoomNumber,
		CustomerID:       rm.CustomerID,
		CustomerFullName: rm.CustomerFullName,
		StartAt:          rm.StartAt,
		EndAt:            rm.EndAt,
		Status:           rm.Status,
		PriceCents:       rm.PriceCents,
		GuestCount:       rm.GuestCount,
		CreatedAt:        rm.CreatedAt,
	}
}
