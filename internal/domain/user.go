package domain

import (
	"context"
	"time"
)

// User is a registered account of the club system. PasswordHash holds the
// bcrypt hash of the login password and must never leave the backend.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	ProfilePic   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the subset of User that is safe to return to clients and to
// attach to an authenticated request.
type PublicUser struct {
	ID         int64
	FullName   string
	Email      string
	ProfilePic string
}

// Public returns the outward-facing view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
	}
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts the user and fills in ID and timestamps. The email
	// column is UNIQUE; a violation is reported as ErrDuplicateEmail.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateProfilePic sets the profile picture URL and returns the
	// updated record.
	UpdateProfilePic(ctx context.Context, id int64, url string) (*User, error)
	// ListOthers returns every user except the one with the given ID,
	// ordered by full name.
	ListOthers(ctx context.Context, excludeID int64) ([]User, error)
}
