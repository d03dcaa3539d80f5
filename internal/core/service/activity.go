package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsquad/crm-api/internal/api/metrics"
	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

// ActivityRecorder appends audit entries on behalf of the entity
// services. The audit trail is best-effort: a failed insert is logged
// and counted, never surfaced to the mutation that triggered it.
type ActivityRecorder struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

func NewActivityRecorder(repo ports.ActivityRepository, log zerolog.Logger) *ActivityRecorder {
	return &ActivityRecorder{repo: repo, log: log}
}

// Record stamps and persists one audit entry.
func (r *ActivityRecorder) Record(ctx context.Context, entry domain.ActivityLog) {
	entry.Timestamp = time.Now().UTC()

	if _, err := r.repo.Insert(ctx, &entry); err != nil {
		metrics.ActivityRecordFailuresTotal.Inc()
		r.log.Warn().Err(err).
			Str("entity_type", string(entry.EntityType)).
			Str("entity_id", entry.EntityID).
			Str("action", string(entry.Action)).
			Msg("failed to record activity")
		return
	}

	metrics.EntityWritesTotal.WithLabelValues(string(entry.EntityType), string(entry.Action)).Inc()
}

// ActivityService exposes the audit trail read side.
type ActivityService struct {
	repo ports.ActivityRepository
}

func NewActivityService(repo ports.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) List(ctx context.Context, filter ports.ActivityFilter) ([]domain.ActivityLog, error) {
	return s.repo.List(ctx, filter)
}
