package domain

import "time"

// ReminderMeeting is the only reminder type currently produced.
const ReminderMeeting = "meeting"

// Reminder is an ephemeral meeting notification. Its ID is derived from
// the client id and the time bucket (meeting-1h-<id> / meeting-1d-<id>)
// so regeneration is idempotent and dismissal targets a single entry.
// Reminders are never persisted.
type Reminder struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	ClientID     string    `json:"client_id"`
	ClientName   string    `json:"client_name"`
	Organization string    `json:"organization"`
	MeetingAt    time.Time `json:"meeting_at"`
	Urgent       bool      `json:"urgent"`
}
