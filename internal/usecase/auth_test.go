package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/user/invoicing-dashboard/internal/domain"
	"github.com/user/invoicing-dashboard/internal/domain/mocks"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_VerifyCredentials(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user := &domain.User{
		ID:       uuid.New(),
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: string(hash),
	}

	t.Run("Correct Password", func(t *testing.T) {
		svc := NewAuthService(&mocks.MockUserRepository{User: user}, logger)

		got, err := svc.VerifyCredentials(context.Background(), "user@nextmail.com", "123456")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("unexpected user: %+v", got)
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		svc := NewAuthService(&mocks.MockUserRepository{User: user}, logger)

		_, err := svc.VerifyCredentials(context.Background(), "user@nextmail.com", "hunter2")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Unknown Email", func(t *testing.T) {
		svc := NewAuthService(&mocks.MockUserRepository{User: user}, logger)

		_, err := svc.VerifyCredentials(context.Background(), "nobody@nextmail.com", "123456")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Store Failure Passes Through", func(t *testing.T) {
		svc := NewAuthService(&mocks.MockUserRepository{
			FindErr: &domain.DataAccessError{Op: "user_by_email"},
		}, logger)

		_, err := svc.VerifyCredentials(context.Background(), "user@nextmail.com", "123456")
		var dae *domain.DataAccessError
		if !errors.As(err, &dae) {
			t.Fatalf("expected DataAccessError, got %v", err)
		}
	})
}

func TestAuthService_GetUser(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Missing User Is Not Found", func(t *testing.T) {
		svc := NewAuthService(&mocks.MockUserRepository{}, logger)

		_, err := svc.GetUser(context.Background(), "nobody@nextmail.com")
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}
