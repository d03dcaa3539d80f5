package ports

import (
	"context"
	"time"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

// NoteFilter selects a subset of the note list; conjunction of all
// non-empty predicates. Search matches title, content and tags.
type NoteFilter struct {
	Search    string
	ClientID  string
	CreatedBy string
}

// CreateNoteInput carries all data needed to create a note.
type CreateNoteInput struct {
	Title     string
	Content   string
	Category  domain.NoteCategory
	Priority  domain.NotePriority
	ClientID  string
	Tags      []string
	MeetingAt time.Time
	CreatedBy string
}

// UpdateNoteInput is a partial note update. UpdatedBy identifies the
// acting user; when empty the audit entry falls back to the creator.
type UpdateNoteInput struct {
	Fields    UpdateNoteFields
	UpdatedBy string
}

// NoteService defines note use cases. Create, Update and Delete emit
// activity records as a side effect.
type NoteService interface {
	List(ctx context.Context, filter NoteFilter) ([]domain.Note, error)
	Get(ctx context.Context, id string) (*domain.Note, error)
	Create(ctx context.Context, input CreateNoteInput) (*domain.Note, error)
	Update(ctx context.Context, id string, input UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, id string) error
}
