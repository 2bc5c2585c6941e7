package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Room errors
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomUnderMaintenance = errors.New("room under maintenance")
	ErrRoomUnavailable      = errors.New("room not available for range")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("reservation conflict")
	ErrInvalidStayPeriod   = errors.New("end date must be after start date")

	// Date/time input errors
	ErrAmbiguousTimestamp = errors.New("timestamp must carry an explicit offset")
	ErrMalformedDate      = errors.New("malformed date input")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
