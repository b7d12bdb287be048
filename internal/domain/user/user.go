package user

import (
	"fmt"
	"time"

	vo "atgs/internal/domain/user/valueobjects"
)

// User is a portal account. Accounts are created once at signup and are never
// updated or deleted.
type User struct {
	id          uint
	email       string
	displayName string
	role        vo.Role
	createdAt   time.Time
}

// NewUser creates a user for signup. The role is stored as given, even
// outside the known vocabulary; an empty role defaults to student.
func NewUser(email, displayName string, role vo.Role) (*User, error) {
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(displayName) == 0 {
		return nil, fmt.Errorf("display name is required")
	}
	if role == "" {
		role = vo.RoleStudent
	}

	return &User{
		email:       email,
		displayName: displayName,
		role:        role,
		createdAt:   time.Now(),
	}, nil
}

// ReconstructUser rebuilds a user from storage.
func ReconstructUser(id uint, email, displayName string, role vo.Role, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:          id,
		email:       email,
		displayName: displayName,
		role:        role,
		createdAt:   createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) Role() vo.Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// CanViewAllTickets reports whether this user sees every ticket rather than
// only their own submissions.
func (u *User) CanViewAllTickets() bool {
	return u.role.CanViewAllTickets()
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
