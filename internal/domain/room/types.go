package room

// Status is a room's operational state at a single check instant. Reserved
// (a pending booking covering the instant) and Occupied (a checked-in stay)
// are kept distinct; displays that want the legacy two-state view collapse
// them with Collapsed.
type Status string

const (
	StatusMaintenance Status = "Maintenance"
	StatusOccupied    Status = "Occupied"
	StatusReserved    Status = "Reserved"
	StatusAvailable   Status = "Available"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusMaintenance, StatusOccupied, StatusReserved, StatusAvailable:
		return true
	default:
		return false
	}
}

// Collapsed folds Reserved into Occupied.
func (s Status) Collapsed() Status {
	if s == StatusReserved {
		return StatusOccupied
	}
	return s
}
