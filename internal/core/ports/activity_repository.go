package ports

import (
	"context"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

// ActivityFilter narrows an activity query; zero values match everything.
type ActivityFilter struct {
	EntityType domain.EntityType
	EntityID   string
}

// ActivityRepository persists the append-only audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error)
	// List returns matching entries, newest-first by timestamp.
	List(ctx context.Context, filter ActivityFilter) ([]domain.ActivityLog, error)
}
