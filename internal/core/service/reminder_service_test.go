package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

func TestEvaluateReminders_Buckets(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	clients := []domain.Client{
		{ID: "c1", Name: "Sarah", Organization: "TechCorp", MeetingAt: now.Add(30 * time.Minute)},
		{ID: "c2", Name: "Michael", Organization: "StartupVenture", MeetingAt: now.Add(20 * time.Hour)},
		{ID: "c3", Name: "Emily", Organization: "InnovateTech", MeetingAt: now.Add(-1 * time.Hour)},
		{ID: "c4", Name: "Lisa", Organization: "FinTech", MeetingAt: now.Add(48 * time.Hour)},
		{ID: "c5", Name: "NoMeeting", Organization: "None"},
	}

	reminders := EvaluateReminders(clients, now)
	if len(reminders) != 2 {
		t.Fatalf("expected 2 reminders, got %d: %+v", len(reminders), reminders)
	}

	byID := make(map[string]domain.Reminder, len(reminders))
	for _, r := range reminders {
		byID[r.ID] = r
	}

	urgent, ok := byID["meeting-1h-c1"]
	if !ok {
		t.Fatalf("missing urgent reminder: %+v", byID)
	}
	if !urgent.Urgent || urgent.Title != "Meeting in 1 hour" {
		t.Fatalf("unexpected urgent reminder: %+v", urgent)
	}
	if urgent.Message != "Meeting with Sarah from TechCorp" {
		t.Fatalf("unexpected message: %s", urgent.Message)
	}

	normal, ok := byID["meeting-1d-c2"]
	if !ok {
		t.Fatalf("missing day reminder: %+v", byID)
	}
	if normal.Urgent || normal.Title != "Meeting tomorrow" {
		t.Fatalf("unexpected day reminder: %+v", normal)
	}
}

func TestEvaluateReminders_ExactlyOneHourIsUrgent(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	clients := []domain.Client{{ID: "c1", Name: "Edge", MeetingAt: now.Add(time.Hour)}}

	reminders := EvaluateReminders(clients, now)
	if len(reminders) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(reminders))
	}
	if reminders[0].ID != "meeting-1h-c1" || !reminders[0].Urgent {
		t.Fatalf("one-hour boundary should be urgent: %+v", reminders[0])
	}
}

func TestEvaluateReminders_ExactlyOneDayIsNormal(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	clients := []domain.Client{{ID: "c1", Name: "Edge", MeetingAt: now.Add(24 * time.Hour)}}

	reminders := EvaluateReminders(clients, now)
	if len(reminders) != 1 || reminders[0].ID != "meeting-1d-c1" {
		t.Fatalf("24h boundary should produce a day reminder: %+v", reminders)
	}
}

func TestEvaluateReminders_PastMeetingProducesNothing(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	clients := []domain.Client{{ID: "c1", Name: "Late", MeetingAt: now.Add(-24 * time.Hour)}}

	if got := EvaluateReminders(clients, now); len(got) != 0 {
		t.Fatalf("expected no reminders, got %+v", got)
	}
}

func TestReminderEngine_ActiveSortsUrgentFirst(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newStubClientRepo()
	_, _ = repo.Insert(context.Background(), &domain.Client{Name: "Day", MeetingAt: now.Add(20 * time.Hour)})
	_, _ = repo.Insert(context.Background(), &domain.Client{Name: "Soon", MeetingAt: now.Add(30 * time.Minute)})

	engine := NewReminderEngine(repo, time.Minute, zerolog.Nop())
	engine.now = func() time.Time { return now }

	if err := engine.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	active := engine.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(active))
	}
	if !active[0].Urgent || active[1].Urgent {
		t.Fatalf("urgent reminder must sort first: %+v", active)
	}
}

func TestReminderEngine_DismissedReminderReturnsOnRefresh(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := newStubClientRepo()
	created, _ := repo.Insert(context.Background(), &domain.Client{Name: "Soon", MeetingAt: now.Add(30 * time.Minute)})

	engine := NewReminderEngine(repo, time.Minute, zerolog.Nop())
	engine.now = func() time.Time { return now }

	if err := engine.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	id := "meeting-1h-" + created.ID
	if !engine.Dismiss(id) {
		t.Fatalf("expected dismiss to succeed")
	}
	if len(engine.Active()) != 0 {
		t.Fatalf("expected empty set after dismiss")
	}
	if engine.Dismiss(id) {
		t.Fatalf("second dismiss must report absence")
	}

	// The generating condition still holds, so a refresh re-adds it.
	if err := engine.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if len(engine.Active()) != 1 {
		t.Fatalf("expected reminder to reappear after refresh")
	}
}
