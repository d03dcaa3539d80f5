package domain

import "time"

// NoteCategory classifies a note.
type NoteCategory string

const (
	CategoryGeneral NoteCategory = "general"
	CategoryClient  NoteCategory = "client"
	CategoryProject NoteCategory = "project"
	CategoryMeeting NoteCategory = "meeting"
	CategoryIdea    NoteCategory = "idea"
)

// NotePriority is the note's urgency level.
type NotePriority string

const (
	PriorityLow    NotePriority = "low"
	PriorityMedium NotePriority = "medium"
	PriorityHigh   NotePriority = "high"
)

// Note is a free-form record, optionally tied to a client and a meeting
// date. Tags are an unordered set of free-text strings.
type Note struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  NoteCategory `json:"category"`
	Priority  NotePriority `json:"priority"`
	ClientID  string       `json:"client_id,omitempty"`
	Tags      []string     `json:"tags"`
	MeetingAt time.Time    `json:"meeting_at,omitzero"`
	CreatedBy string       `json:"created_by"`
	UpdatedBy string       `json:"updated_by,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at,omitzero"`
}
