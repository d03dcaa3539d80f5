package domain

import "time"

// Project stages describe the coarse pipeline position of an engagement.
// Not a strict progression: any value may be set at any time.
const (
	StageInitialTalk  = "Initial Talk"
	StageProposalSent = "Proposal Sent"
	StageInProgress   = "In Progress"
	StageCompleted    = "Completed"
)

// Client statuses are independent categorical tags used for filtering.
const (
	StatusNew         = "New"
	StatusFollowUp    = "Follow-up"
	StatusMeeting     = "Meeting"
	StatusNegotiating = "Negotiating"
	StatusClosed      = "Closed"
)

// Client is a lead/account record with one associated meeting and project.
// Status and Stage are independently settable strings; no invariant ties
// them together.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	JobTitle     string    `json:"job_title"`
	Email        string    `json:"email"`
	Organization string    `json:"organization"`
	Phone        string    `json:"phone"`
	Platform     string    `json:"platform"`
	Stage        string    `json:"stage"`
	Status       string    `json:"status"`
	ProjectValue float64   `json:"project_value"`
	MeetingAt    time.Time `json:"meeting_at"`
	NextAction   string    `json:"next_action"`
	Link         string    `json:"link,omitempty"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`
}
