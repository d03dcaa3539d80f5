package ports

import (
	"context"
	"time"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

// UpdateNoteFields is a partial patch: nil fields are left untouched.
type UpdateNoteFields struct {
	Title     *string
	Content   *string
	Category  *domain.NoteCategory
	Priority  *domain.NotePriority
	ClientID  *string
	Tags      *[]string
	MeetingAt *time.Time
	UpdatedBy *string
}

// NoteRepository defines persistence operations for notes.
type NoteRepository interface {
	// List returns all notes, newest-first by creation time.
	List(ctx context.Context) ([]domain.Note, error)
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	Insert(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, id string, fields UpdateNoteFields) (*domain.Note, error)
	Delete(ctx context.Context, id string) (bool, error)
}
