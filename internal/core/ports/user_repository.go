package ports

import (
	"context"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

// UpdateUserFields is a partial patch: nil fields are left untouched.
type UpdateUserFields struct {
	Name         *string
	Email        *string
	Role         *string
	Avatar       *string
	PasswordHash *string
}

// UserRepository defines persistence operations for dashboard accounts.
type UserRepository interface {
	// List returns all users, newest-first by creation time.
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert assigns a new canonical id and persists the user.
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
	// Update merges the non-nil fields, stamps updated_at, and returns
	// the stored document, or domain.ErrUserNotFound.
	Update(ctx context.Context, id string, fields UpdateUserFields) (*domain.User, error)
	// Delete reports whether a document was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, users []domain.User) error
}
