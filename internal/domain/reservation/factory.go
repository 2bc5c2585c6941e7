package reservation

import (
	"hotel-management-service/internal/domain/room"

	"github.com/google/uuid"
)

// Factory assembles a pending reservation from a room snapshot and a stay
// period, pricing it at nightly rate times nights. Availability and
// maintenance gates run in the workflow before the factory is reached.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) CreateReservation(
	roomEntity *room.Room,
	customerID uuid.UUID,
	stay StayPeriod,
	guestCount int,
) (*Reservation, error) {
	rate, err := NewMoney(roomEntity.NightlyRateCents())
	if err != nil {
		return nil, err
	}

	price := rate.Times(stay.Nights())

	return NewReservation(roomEntity.ID(), customerID, stay, price, guestCount)
}
