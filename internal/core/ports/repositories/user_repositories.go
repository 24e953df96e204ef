package repositories

import (
	"context"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by store id. Returns apperrors.ErrNotFound when absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves the user owning an email. Returns apperrors.ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// CreateUser inserts a new user and returns it with its assigned id.
	// A second user with the same email yields apperrors.ErrDuplicate.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateUserProfile refreshes the provider-sourced profile fields.
	UpdateUserProfile(ctx context.Context, userID, name, image string) error

	// DeleteUser removes a user. Returns apperrors.ErrNotFound when absent.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
