// Package schedule holds the time primitives shared by room status
// computation and reservation conflict validation: half-open intervals and
// the status-check instant convention.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("interval end must be after start")

// Interval is a half-open time range [start, end). Half-open semantics make
// back-to-back stays non-overlapping: checkout and check-in may coincide at
// the same instant without conflicting.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start.UTC(), end: end.UTC()}, nil
}

func (i Interval) Start() time.Time {
	return i.start
}

func (i Interval) End() time.Time {
	return i.end
}

func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

// Contains reports whether t falls inside the interval: start <= t < end.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.start) && t.Before(i.end)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s,%s)", i.start.Format(time.RFC3339), i.end.Format(time.RFC3339))
}
