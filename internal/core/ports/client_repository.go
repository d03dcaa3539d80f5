package ports

import (
	"context"
	"time"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

// UpdateClientFields is a partial patch: nil fields are left untouched.
type UpdateClientFields struct {
	Name         *string
	JobTitle     *string
	Email        *string
	Organization *string
	Phone        *string
	Platform     *string
	Stage        *string
	Status       *string
	ProjectValue *float64
	MeetingAt    *time.Time
	NextAction   *string
	Link         *string
}

// ClientRepository defines persistence operations for lead/account records.
type ClientRepository interface {
	// List returns all clients, newest-first by creation time.
	List(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Insert(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id string, fields UpdateClientFields) (*domain.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, clients []domain.Client) error
}
