package customer

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyIDNumber = errors.New("customer id number cannot be empty")
	ErrEmptyFullName = errors.New("customer full name cannot be empty")
)

// Customer is looked up by its external national ID number when a reservation
// is created; the core never mutates it.
type Customer struct {
	id       uuid.UUID
	idNumber string
	fullName string
}

func NewCustomer(id uuid.UUID, idNumber, fullName string) (*Customer, error) {
	idNumber = strings.TrimSpace(idNumber)
	if idNumber == "" {
		return nil, ErrEmptyIDNumber
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}

	return &Customer{
		id:       id,
		idNumber: idNumber,
		fullName: fullName,
	}, nil
}

func (c *Customer) ID() uuid.UUID    { return c.id }
func (c *Customer) IDNumber() string { return c.idNumber }
func (c *Customer) FullName() string { return c.fullName }
