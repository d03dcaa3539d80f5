package service

import (
	"strings"
	"time"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

// FilterClients returns the clients matching every active predicate in
// filter, evaluated against the given reference time. Predicates are
// pure; order is preserved.
func FilterClients(clients []domain.Client, filter ports.ClientFilter, now time.Time) []domain.Client {
	matched := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if matchClient(c, filter, now) {
			matched = append(matched, c)
		}
	}
	return matched
}

func matchClient(c domain.Client, f ports.ClientFilter, now time.Time) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Organization), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) {
			return false
		}
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Stage != "" && c.Stage != f.Stage {
		return false
	}
	if f.Platform != "" && c.Platform != f.Platform {
		return false
	}
	if f.CreatedBy != "" && c.CreatedBy != f.CreatedBy {
		return false
	}
	if f.MeetingWindow != "" && !matchMeetingWindow(c.MeetingAt, f.MeetingWindow, now) {
		return false
	}
	return true
}

// matchMeetingWindow buckets a meeting by its distance from now in days,
// where daysDiff = now - meetingDate: past meetings have positive diffs,
// future meetings negative ones. "upcoming" is any future meeting and
// deliberately has no upper bound.
func matchMeetingWindow(meeting time.Time, window string, now time.Time) bool {
	daysDiff := now.Sub(meeting).Hours() / 24

	switch window {
	case ports.WindowToday:
		return daysDiff >= 0 && daysDiff < 1
	case ports.WindowWeek:
		return daysDiff >= 0 && daysDiff <= 7
	case ports.WindowMonth:
		return daysDiff >= 0 && daysDiff <= 30
	case ports.WindowUpcoming:
		return daysDiff < 0
	}
	return true
}
