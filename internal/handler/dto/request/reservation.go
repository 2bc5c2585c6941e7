package request

import (
	"time"

	"hotel-management-service/internal/domain/schedule"
	"hotel-management-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CustomerIDNumber string    `json:"customer_id_number" binding:"required"`
	RoomID           uuid.UUID `json:"room_id" binding:"required"`
	StartDate        string    `json:"start_date" binding:"required"`
	EndDate          string    `json:"end_date" binding:"required"`
	GuestCount       int       `json:"guest_count" binding:"required,min=1"`
}

func (r CreateReservationRequest) ToParams() (commands.CreateReservationParams, error) {
	start, err := parseStayBound(r.StartDate)
	if err != nil {
		return commands.CreateReservationParams{}, err
	}
	end, err := parseStayBound(r.EndDate)
	if err != nil {
		return commands.CreateReservationParams{}, err
	}

	return commands.CreateReservationParams{
		CustomerIDNumber: r.CustomerIDNumber,
		RoomID:           r.RoomID,
		StartDate:        start,
		EndDate:          end,
		GuestCount:       r.GuestCount,
	}, nil
}

func parseStayBound(s string) (time.Time, error) {
	t, err := schedule.ParseStatusCheckInput(s)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, schedule.ErrMalformedDate
	}
	return *t, nil
}
