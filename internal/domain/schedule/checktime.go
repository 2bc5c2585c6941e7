package schedule

import (
	"errors"
	"strings"
	"time"
)

// DefaultCheckTime is the time of day assumed when a status check is requested
// for a bare calendar date. "Status for day D" means "as of the afternoon of
// D", the standard hotel check-in hour, not literal midnight.
const DefaultCheckTime = 16 * time.Hour

var (
	ErrAmbiguousTimestamp = errors.New("timestamp must carry an explicit offset")
	ErrMalformedDate      = errors.New("malformed date input")
)

// NormalizeCheckTime canonicalizes a caller-supplied status-check instant.
// A nil raw value means "right now". A value at exactly midnight is treated
// as date-only and shifted to DefaultCheckTime on that date. Anything with an
// explicit time of day passes through. The result is always UTC.
func NormalizeCheckTime(raw *time.Time, now time.Time) time.Time {
	if raw == nil {
		return now.UTC()
	}

	t := raw.UTC()
	if isMidnight(t) {
		return t.Add(DefaultCheckTime)
	}
	return t
}

// ParseStatusCheckInput parses the status_check_date query input. Accepted
// forms are a bare calendar date (2006-01-02, interpreted as a UTC date) and
// RFC 3339 with an explicit offset. A datetime without an offset is rejected
// rather than guessed at.
func ParseStatusCheckInput(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if t, err := time.ParseInLocation(time.DateOnly, s, time.UTC); err == nil {
		return &t, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		u := t.UTC()
		return &u, nil
	}

	// A parseable naive datetime is ambiguous, everything else is malformed.
	if _, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return nil, ErrAmbiguousTimestamp
	}
	return nil, ErrMalformedDate
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}
