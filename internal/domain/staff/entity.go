package staff

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errors.New("invalid staff email")

// Staff accounts exist for authentication only; shift scheduling and payroll
// live outside this service.
type Staff struct {
	id           uuid.UUID
	email        string
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
}

func NewStaff(email, passwordHash string, role Role) (*Staff, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &Staff{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}, nil
}

func (s *Staff) ID() uuid.UUID        { return s.id }
func (s *Staff) Email() string        { return s.email }
func (s *Staff) PasswordHash() string { return s.passwordHash }
func (s *Staff) Role() Role           { return s.role }
func (s *Staff) IsActive() bool       { return s.isActive }
func (s *Staff) CreatedAt() time.Time { return s.createdAt }
