package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount = errors.New("guest count must be positive")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrNotPending        = errors.New("reservation is not pending")
	ErrNotCheckedIn      = errors.New("reservation is not checked in")
	ErrAlreadyClosed     = errors.New("reservation is already closed")
)

type Reservation struct {
	id         uuid.UUID
	roomID     uuid.UUID
	customerID uuid.UUID
	stay       StayPeriod
	status     Status
	price      Money
	guestCount int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(roomID, customerID uuid.UUID, stay StayPeriod, price Money, guestCount int) (*Reservation, error) {
	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}

	return &Reservation{
		id:         uuid.New(),
		roomID:     roomID,
		customerID: customerID,
		stay:       stay,
		status:     StatusPending,
		price:      price,
		guestCount: guestCount,
	}, nil
}

func ReconstructReservation(
	id, roomID, customerID uuid.UUID,
	stay StayPeriod,
	status Status,
	price Money,
	guestCount int,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		roomID:     roomID,
		customerID: customerID,
		stay:       stay,
		status:     status,
		price:      price,
		guestCount: guestCount,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// CheckIn moves a pending reservation to checked-in. Transitions never widen
// the stay, so the no-overlap invariant among active reservations holds.
func (r *Reservation) CheckIn() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusCheckedIn
	return nil
}

func (r *Reservation) CheckOut() error {
	if r.status != StatusCheckedIn {
		return ErrNotCheckedIn
	}
	r.status = StatusCheckedOut
	return nil
}

func (r *Reservation) Cancel() error {
	if !r.status.IsActive() {
		return ErrAlreadyClosed
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) Span() Span {
	return Span{ID: r.id, Interval: r.stay.Interval(), Status: r.status}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) RoomID() uuid.UUID     { return r.roomID }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) Stay() StayPeriod      { return r.stay }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Price() Money          { return r.price }
func (r *Reservation) GuestCount() int       { return r.guestCount }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
