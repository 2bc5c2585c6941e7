package reservation

type Status string

const (
	StatusPending    Status = "Pending"
	StatusCheckedIn  Status = "Checked-in"
	StatusCheckedOut Status = "Checked-out"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the reservation still claims its room. Only active
// reservations participate in occupancy and conflict checks.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusCheckedIn
}
