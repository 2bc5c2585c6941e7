package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RoomListItem struct {
	ID               uuid.UUID `json:"id"`
	RoomNumber       int       `json:"room_number"`
	RoomType         string    `json:"room_type"`
	Floor            int       `json:"floor"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	OnMaintenance    bool      `json:"on_maintenance"`
	Amenities        []string  `json:"amenities"`
	Status           string    `json:"status"`
}

type RoomDetailView struct {
	ID               uuid.UUID              `json:"id"`
	RoomNumber       int                    `json:"room_number"`
	RoomType         string                 `json:"room_type"`
	Floor            int                    `json:"floor"`
	NightlyRateCents int64                  `json:"nightly_rate_cents"`
	OnMaintenance    bool                   `json:"on_maintenance"`
	Amenities        []string               `json:"amenities"`
	Issues           []MaintenanceIssueView `json:"maintenance_issues"`
	Status           string                 `json:"status"`
	StatusCheckTime  time.Time              `json:"status_check_time"`
}

type MaintenanceIssueView struct {
	ID                  uuid.UUID  `json:"id"`
	RoomID              uuid.UUID  `json:"room_id"`
	Description         string     `json:"description"`
	ReportedAt          time.Time  `json:"reported_at"`
	EstimatedCompletion time.Time  `json:"estimated_completion"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
}

type ReservationView struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"room_id"`
	RoomNumber       int       `json:"room_number"`
	CustomerID       uuid.UUID `json:"customer_id"`
	CustomerFullName string    `json:"customer_full_name"`
	StartAt          time.Time `json:"start_at"`
	EndAt            time.Time `json:"end_at"`
	Status           string    `json:"status"`
	PriceCents       int64     `json:"price_cents"`
	GuestCount       int       `json:"guest_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// ReservationSpanRow is a raw active-reservation row used for status
// computation and availability checks.
type ReservationSpanRow struct {
	ID      uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Status  string
}

// RoomRow is the raw room row plus its active reservation spans.
type RoomRow struct {
	ID               uuid.UUID
	RoomNumber       int
	RoomType         string
	Floor            int
	NightlyRateCents int64
	OnMaintenance    bool
	Amenities        []string
	ActiveSpans      []ReservationSpanRow
}

type StaffAccountRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type PagedRooms struct {
	Items        []*RoomListItem `json:"items"`
	Page         int             `json:"page"`
	PageSize     int             `json:"page_size"`
	TotalRecords int64           `json:"total_records"`
	// The instant every status in Items was evaluated at.
	StatusCheckTime time.Time `json:"status_check_time"`
}
