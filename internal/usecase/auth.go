package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/user/invoicing-dashboard/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so a login form cannot probe which emails exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService performs the basic credential lookup. No sessions or tokens
// are issued here.
type AuthService struct {
	users  domain.UserRepository
	logger *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// GetUser returns the user with the exact email, or NotFoundError.
func (s *AuthService) GetUser(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// VerifyCredentials looks up the user by email and compares the password
// against the stored bcrypt hash.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
