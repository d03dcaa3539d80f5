package ports

import (
	"context"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

// ReminderService maintains the ephemeral set of meeting reminders.
type ReminderService interface {
	// Active returns the current reminder set, urgent entries first.
	Active() []domain.Reminder
	// Dismiss removes one reminder until the next refresh re-adds it if
	// its generating condition still holds. Dismissal is not persisted.
	Dismiss(id string) bool
	// Refresh re-scans the client collection and rebuilds the set.
	Refresh(ctx context.Context) error
}
