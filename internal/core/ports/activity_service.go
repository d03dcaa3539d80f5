package ports

import (
	"context"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

// ActivityRecorder appends audit entries. Recording is best-effort: a
// failed write must never fail the mutation that triggered it, so Record
// returns nothing and implementations log-and-continue on error.
type ActivityRecorder interface {
	Record(ctx context.Context, entry domain.ActivityLog)
}

// ActivityService exposes the audit trail read side.
type ActivityService interface {
	List(ctx context.Context, filter ActivityFilter) ([]domain.ActivityLog, error)
}
