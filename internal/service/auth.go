package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/obazhan/sportclub/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6

// AuthService handles account registration, login, and profile updates.
type AuthService struct {
	users      domain.UserRepository
	tokens     *TokenService
	media      domain.MediaStore
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, tokens *TokenService, media domain.MediaStore, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		media:      media,
		bcryptCost: bcryptCost,
	}
}

// Signup validates inputs, creates the account, and returns it with a signed
// session token.
func (s *AuthService) Signup(ctx context.Context, fullName, email, password string) (*domain.User, string, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: full name, email, and password are required", domain.ErrInvalidInput)
	}

	if len(password) < MinPasswordLength {
		return nil, "", fmt.Errorf("%w: minimum %d characters", domain.ErrWeakPassword, MinPasswordLength)
	}

	// Early duplicate check for a friendly error. Two concurrent signups
	// can both pass it; the UNIQUE constraint in the store is what
	// actually enforces uniqueness, and Create reports its violation as
	// the same ErrDuplicateEmail.
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a signed session
// token. Unknown email and wrong password both fail with
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// GetUserByID retrieves a user by ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfilePic uploads the posted picture through the media store and
// persists the resulting URL.
func (s *AuthService) UpdateProfilePic(ctx context.Context, userID int64, picture string) (*domain.User, error) {
	if picture == "" {
		return nil, fmt.Errorf("%w: profile picture is required", domain.ErrInvalidInput)
	}

	url, err := s.media.Upload(ctx, picture)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("upload profile pic: %w", err)
	}

	user, err := s.users.UpdateProfilePic(ctx, userID, url)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update profile pic: %w", err)
	}

	return user, nil
}
