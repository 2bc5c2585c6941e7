package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomNumber  = errors.New("room number must be positive")
	ErrNegativeRate       = errors.New("nightly rate cannot be negative")
	ErrEmptyRoomType      = errors.New("room type cannot be empty")
	ErrEmptyDescription   = errors.New("issue description cannot be empty")
	ErrCompletionInPast   = errors.New("estimated completion cannot precede the report")
	ErrIssueAlreadyClosed = errors.New("maintenance issue already resolved")
)

// Room is an immutable snapshot for one status computation or conflict
// validation. The surrounding CRUD layer owns the entity lifecycle; the core
// only reads it.
type Room struct {
	id               uuid.UUID
	roomNumber       int
	roomType         string
	floor            int
	nightlyRateCents int64
	onMaintenance    bool
	amenities        []string
}

func NewRoom(id uuid.UUID, roomNumber int, roomType string, floor int, nightlyRateCents int64, onMaintenance bool, amenities []string) (*Room, error) {
	if roomNumber <= 0 {
		return nil, ErrInvalidRoomNumber
	}
	if nightlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return nil, ErrEmptyRoomType
	}

	return &Room{
		id:               id,
		roomNumber:       roomNumber,
		roomType:         roomType,
		floor:            floor,
		nightlyRateCents: nightlyRateCents,
		onMaintenance:    onMaintenance,
		amenities:        amenities,
	}, nil
}

func (r *Room) ID() uuid.UUID           { return r.id }
func (r *Room) RoomNumber() int         { return r.roomNumber }
func (r *Room) RoomType() string        { return r.roomType }
func (r *Room) Floor() int              { return r.floor }
func (r *Room) NightlyRateCents() int64 { return r.nightlyRateCents }
func (r *Room) OnMaintenance() bool     { return r.onMaintenance }
func (r *Room) Amenities() []string     { return r.amenities }

// MaintenanceIssue records a reported defect. Adding an issue never flips the
// room's maintenance flag; the flag is managed independently.
type MaintenanceIssue struct {
	id                  uuid.UUID
	roomID              uuid.UUID
	description         string
	reportedAt          time.Time
	estimatedCompletion time.Time
	resolvedAt          *time.Time
}

func NewMaintenanceIssue(roomID uuid.UUID, description string, reportedAt, estimatedCompletion time.Time) (*MaintenanceIssue, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if estimatedCompletion.Before(reportedAt) {
		return nil, ErrCompletionInPast
	}

	return &MaintenanceIssue{
		id:                  uuid.New(),
		roomID:              roomID,
		description:         description,
		reportedAt:          reportedAt.UTC(),
		estimatedCompletion: estimatedCompletion.UTC(),
	}, nil
}

func ReconstructMaintenanceIssue(id, roomID uuid.UUID, description string, reportedAt, estimatedCompletion time.Time, resolvedAt *time.Time) *MaintenanceIssue {
	return &MaintenanceIssue{
		id:                  id,
		roomID:              roomID,
		description:         description,
		reportedAt:          reportedAt,
		estimatedCompletion: estimatedCompletion,
		resolvedAt:          resolvedAt,
	}
}

func (m *MaintenanceIssue) Resolve(at time.Time) error {
	if m.resolvedAt != nil {
		return ErrIssueAlreadyClosed
	}
	t := at.UTC()
	m.resolvedAt = &t
	return nil
}

func (m *MaintenanceIssue) ID() uuid.UUID                  { return m.id }
func (m *MaintenanceIssue) RoomID() uuid.UUID              { return m.roomID }
func (m *MaintenanceIssue) Description() string            { return m.description }
func (m *MaintenanceIssue) ReportedAt() time.Time          { return m.reportedAt }
func (m *MaintenanceIssue) EstimatedCompletion() time.Time { return m.estimatedCompletion }
func (m *MaintenanceIssue) ResolvedAt() *time.Time         { return m.resolvedAt }
