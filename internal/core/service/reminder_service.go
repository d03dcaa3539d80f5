package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsquad/crm-api/internal/api/metrics"
	"github.com/expertsquad/crm-api/internal/core/domain"
)

const defaultReminderInterval = 60 * time.Second

// ClientLister is the read-only subset of the client repository used by
// the reminder engine and the stats service.
type ClientLister interface {
	List(ctx context.Context) ([]domain.Client, error)
}

// ReminderEngine periodically re-scans the client book and rebuilds the
// active reminder set. The set is purely derived state: a dismissed
// reminder stays gone only until the next refresh re-generates it.
type ReminderEngine struct {
	clients  ClientLister
	interval time.Duration
	log      zerolog.Logger
	now      func() time.Time

	mu     sync.Mutex
	active map[string]domain.Reminder
}

func NewReminderEngine(clients ClientLister, interval time.Duration, log zerolog.Logger) *ReminderEngine {
	if interval <= 0 {
		interval = defaultReminderInterval
	}
	return &ReminderEngine{
		clients:  clients,
		interval: interval,
		log:      log,
		now:      time.Now,
		active:   make(map[string]domain.Reminder),
	}
}

// Start launches the refresh loop. It refreshes once immediately, then
// on every tick until ctx is cancelled.
func (e *ReminderEngine) Start(ctx context.Context) {
	go func() {
		if err := e.Refresh(ctx); err != nil {
			e.log.Error().Err(err).Msg("reminder refresh failed")
		}

		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := e.Refresh(ctx); err != nil {
					e.log.Error().Err(err).Msg("reminder refresh failed")
				}
			}
		}
	}()
}

// Refresh rebuilds the active set from the current client book.
func (e *ReminderEngine) Refresh(ctx context.Context) error {
	clients, err := e.clients.List(ctx)
	if err != nil {
		return fmt.Errorf("reminder refresh: %w", err)
	}

	reminders := EvaluateReminders(clients, e.now().UTC())

	var urgent, normal float64
	next := make(map[string]domain.Reminder, len(reminders))
	for _, r := range reminders {
		next[r.ID] = r
		if r.Urgent {
			urgent++
		} else {
			normal++
		}
	}

	e.mu.Lock()
	e.active = next
	e.mu.Unlock()

	metrics.RemindersActive.WithLabelValues("urgent").Set(urgent)
	metrics.RemindersActive.WithLabelValues("normal").Set(normal)

	return nil
}

// Active returns the current reminders, urgent first, then by meeting time.
func (e *ReminderEngine) Active() []domain.Reminder {
	e.mu.Lock()
	out := make([]domain.Reminder, 0, len(e.active))
	for _, r := range e.active {
		out = append(out, r)
	}
	e.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Urgent != out[j].Urgent {
			return out[i].Urgent
		}
		if !out[i].MeetingAt.Equal(out[j].MeetingAt) {
			return out[i].MeetingAt.Before(out[j].MeetingAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Dismiss removes one reminder from the active set and reports whether
// it was present.
func (e *ReminderEngine) Dismiss(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.active[id]; !ok {
		return false
	}
	delete(e.active, id)
	return true
}

// EvaluateReminders classifies each client's meeting against now:
// within the next hour → urgent (meeting-1h-<id>), within the next day
// but more than an hour away → normal (meeting-1d-<id>). Meetings at or
// past now produce nothing.
func EvaluateReminders(clients []domain.Client, now time.Time) []domain.Reminder {
	var reminders []domain.Reminder
	for _, c := range clients {
		if c.MeetingAt.IsZero() {
			continue
		}

		hoursDiff := c.MeetingAt.Sub(now).Hours()
		daysDiff := hoursDiff / 24

		switch {
		case hoursDiff > 0 && hoursDiff <= 1:
			reminders = append(reminders, meetingReminder(c, "meeting-1h-", "Meeting in 1 hour", true))
		case daysDiff > 0 && daysDiff <= 1 && hoursDiff > 1:
			reminders = append(reminders, meetingReminder(c, "meeting-1d-", "Meeting tomorrow", false))
		}
	}
	return reminders
}

func meetingReminder(c domain.Client, prefix, title string, urgent bool) domain.Reminder {
	return domain.Reminder{
		ID:           prefix + c.ID,
		Type:         domain.ReminderMeeting,
		Title:        title,
		Message:      fmt.Sprintf("Meeting with %s from %s", c.Name, c.Organization),
		ClientID:     c.ID,
		ClientName:   c.Name,
		Organization: c.Organization,
		MeetingAt:    c.MeetingAt,
		Urgent:       urgent,
	}
}
