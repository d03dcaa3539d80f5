package ports

import (
	"context"
	"time"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

// Meeting-recency windows accepted by ClientFilter.MeetingWindow.
const (
	WindowToday    = "today"
	WindowWeek     = "week"
	WindowMonth    = "month"
	WindowUpcoming = "upcoming"
)

// ClientFilter selects a subset of the client list. Every non-empty
// field is an independent predicate; the result is their conjunction.
type ClientFilter struct {
	// Search matches case-insensitively against name, organization and email.
	Search        string
	Status        string
	Stage         string
	Platform      string
	CreatedBy     string
	MeetingWindow string
}

// CreateClientInput carries all data needed to create a client record.
type CreateClientInput struct {
	Name         string
	JobTitle     string
	Email        string
	Organization string
	Phone        string
	Platform     string
	Stage        string
	Status       string
	ProjectValue float64
	MeetingAt    time.Time
	NextAction   string
	Link         string
	CreatedBy    string
}

// UpdateClientInput is a partial client update.
type UpdateClientInput struct {
	Fields      UpdateClientFields
	PerformedBy string
}

// ClientService defines lead/account use cases.
type ClientService interface {
	List(ctx context.Context, filter ClientFilter) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id, actorID string) error
}
