package request

import (
	"time"

	"hotel-management-service/internal/domain/schedule"
	"hotel-management-service/internal/usecase/queries"

	"github.com/google/uuid"
)

// ListRoomsQuery carries the room listing filters. The date parameter accepts
// either a bare date or an RFC 3339 timestamp with an explicit offset; a
// datetime without an offset is rejected.
type ListRoomsQuery struct {
	RoomType      *string `form:"room_type"`
	Floor         *int    `form:"floor"`
	OnMaintenance *bool   `form:"on_maintenance"`
	AvailableFrom string  `form:"available_from"`
	AvailableTo   string  `form:"available_to"`
	Date          string  `form:"date"`
	Page          int     `form:"page"`
	PageSize      int     `form:"page_size"`
}

func (q ListRoomsQuery) ToParams() (queries.ListRoomsParams, error) {
	checkAt, err := schedule.ParseStatusCheckInput(q.Date)
	if err != nil {
		return queries.ListRoomsParams{}, err
	}

	filter := queries.RoomFilter{
		RoomType:      q.RoomType,
		Floor:         q.Floor,
		OnMaintenance: q.OnMaintenance,
		Page:          q.Page,
		PageSize:      q.PageSize,
	}

	if q.AvailableFrom != "" && q.AvailableTo != "" {
		from, err := parseRangeBound(q.AvailableFrom)
		if err != nil {
			return queries.ListRoomsParams{}, err
		}
		to, err := parseRangeBound(q.AvailableTo)
		if err != nil {
			return queries.ListRoomsParams{}, err
		}
		filter.AvailableFrom = &from
		filter.AvailableUntil = &to
	}

	return queries.ListRoomsParams{Filter: filter, StatusCheckDate: checkAt}, nil
}

type RoomStatusQuery struct {
	Date string `form:"date"`
}

func (q RoomStatusQuery) CheckTime() (*time.Time, error) {
	return schedule.ParseStatusCheckInput(q.Date)
}

type RoomAvailabilityQuery struct {
	Start                string `form:"start" binding:"required"`
	End                  string `form:"end" binding:"required"`
	ExcludeReservationID string `form:"exclude_reservation_id"`
}

// ExcludeID returns the reservation to ignore when probing, if one was given.
// Used when validating an edit so the reservation does not conflict with itself.
func (q RoomAvailabilityQuery) ExcludeID() (*uuid.UUID, error) {
	if q.ExcludeReservationID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(q.ExcludeReservationID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (q RoomAvailabilityQuery) Range() (time.Time, time.Time, error) {
	start, err := parseRangeBound(q.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseRangeBound(q.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func parseRangeBound(s string) (time.Time, error) {
	t, err := schedule.ParseStatusCheckInput(s)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, schedule.ErrMalformedDate
	}
	return *t, nil
}
