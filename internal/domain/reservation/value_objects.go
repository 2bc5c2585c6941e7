package reservation

import (
	"errors"
	"time"

	"hotel-management-service/internal/domain/schedule"
)

var (
	ErrInvalidStayPeriod = errors.New("end date must be after start date")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

// StayPeriod is a reservation's [start, end) occupancy window. Instants are
// kept in full for conflict checks; pricing works on the calendar dates alone.
type StayPeriod struct {
	start time.Time
	end   time.Time
}

// NewStayPeriod requires the end date to fall on a strictly later calendar
// day than the start: a stay spans at least one night.
func NewStayPeriod(start, end time.Time) (StayPeriod, error) {
	start, end = start.UTC(), end.UTC()
	if !end.After(start) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	if nightsBetween(start, end) <= 0 {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{start: start, end: end}, nil
}

func (sp StayPeriod) Start() time.Time {
	return sp.start
}

func (sp StayPeriod) End() time.Time {
	return sp.end
}

func (sp StayPeriod) Interval() schedule.Interval {
	iv, _ := schedule.NewInterval(sp.start, sp.end)
	return iv
}

// Nights is the number of whole calendar days between the start and end
// dates, time of day stripped.
func (sp StayPeriod) Nights() int {
	return nightsBetween(sp.start, sp.end)
}

func nightsBetween(start, end time.Time) int {
	startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDate := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDate.Sub(startDate) / (24 * time.Hour))
}

// Money is an exact amount in cents. Currency never passes through floats.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}
