//go:build unit || e2e

package builder

import (
	"time"

	"hotel-management-service/internal/usecase/commands"
	"hotel-management-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID               uuid.UUID
	RoomNumber       int
	RoomType         string
	Floor            int
	NightlyRateCents int64
	OnMaintenance    bool
	Amenities        []string
	ActiveSpans      []queries.ReservationSpanRow
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:               uuid.New(),
		RoomNumber:       101,
		RoomType:         "Double",
		Floor:            1,
		NightlyRateCents: 15000,
		Amenities:        []string{"WiFi", "TV"},
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithActiveSpan(start, end time.Time, status string) *RoomBuilder {
	b.ActiveSpans = append(b.ActiveSpans, queries.ReservationSpanRow{
		ID:      uuid.New(),
		StartAt: start,
		EndAt:   end,
		Status:  status,
	})
	return b
}

func (b *RoomBuilder) BuildSnapshot() *commands.RoomSnapshot {
	return &commands.RoomSnapshot{
		ID:               b.ID,
		RoomNumber:       b.RoomNumber,
		RoomType:         b.RoomType,
		Floor:            b.Floor,
		NightlyRateCents: b.NightlyRateCents,
		OnMaintenance:    b.OnMaintenance,
		Amenities:        b.Amenities,
		ActiveSpans:      b.ActiveSpans,
	}
}

func (b *RoomBuilder) BuildRow() *queries.RoomRow {
	return &queries.RoomRow{
		ID:               b.ID,
		RoomNumber:       b.RoomNumber,
		RoomType:         b.RoomType,
		Floor:            b.Floor,
		NightlyRateCents: b.NightlyRateCents,
		OnMaintenance:    b.OnMaintenance,
		Amenities:        b.Amenities,
		ActiveSpans:      b.ActiveSpans,
	}
}
