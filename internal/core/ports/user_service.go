package ports

import (
	"context"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create an account.
// PerformedBy is the acting user recorded in the audit trail; when empty
// the created account itself is recorded as the performer.
type CreateUserInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	Avatar      string
	PerformedBy string
}

// UpdateUserInput is a partial account update. Password, when set, is
// re-hashed before storage.
type UpdateUserInput struct {
	Name        *string
	Email       *string
	Password    *string
	Role        *string
	Avatar      *string
	PerformedBy string
}

// UserService defines account management use cases.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes an account. Deleting the acting user's own account
	// is rejected with domain.ErrSelfDeletion.
	Delete(ctx context.Context, id, actorID string) error
}
