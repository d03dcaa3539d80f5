package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

// NoteService implements note CRUD. Every successful mutation emits an
// activity record through the recorder.
type NoteService struct {
	repo     ports.NoteRepository
	recorder ports.ActivityRecorder
	log      zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, recorder ports.ActivityRecorder, log zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, recorder: recorder, log: log}
}

func (s *NoteService) List(ctx context.Context, filter ports.NoteFilter) ([]domain.Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Note, 0, len(notes))
	for _, n := range notes {
		if matchNote(n, filter) {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

func (s *NoteService) Get(ctx context.Context, id string) (*domain.Note, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NoteService) Create(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	note := &domain.Note{
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		Priority:  input.Priority,
		ClientID:  input.ClientID,
		Tags:      tags,
		MeetingAt: input.MeetingAt,
		CreatedBy: input.CreatedBy,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, note)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create note")
		return nil, err
	}

	s.recorder.Record(ctx, domain.ActivityLog{
		EntityType:  domain.EntityNote,
		EntityID:    created.ID,
		Action:      domain.ActionCreated,
		PerformedBy: created.CreatedBy,
		Metadata:    noteMetadata(created),
	})

	return created, nil
}

func (s *NoteService) Update(ctx context.Context, id string, input ports.UpdateNoteInput) (*domain.Note, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := input.Fields
	if input.UpdatedBy != "" {
		fields.UpdatedBy = &input.UpdatedBy
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	// Updates touching none of the tracked fields are silent.
	if changes := noteChanges(current, input.Fields); len(changes) > 0 {
		performedBy := input.UpdatedBy
		if performedBy == "" {
			performedBy = current.CreatedBy
		}
		s.recorder.Record(ctx, domain.ActivityLog{
			EntityType:  domain.EntityNote,
			EntityID:    updated.ID,
			Action:      domain.ActionUpdated,
			Changes:     changes,
			PerformedBy: performedBy,
			Metadata:    noteMetadata(updated),
		})
	}

	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNoteNotFound
	}

	// The deleter's identity is not part of the request; the creator is
	// recorded as the performer.
	s.recorder.Record(ctx, domain.ActivityLog{
		EntityType:  domain.EntityNote,
		EntityID:    current.ID,
		Action:      domain.ActionDeleted,
		PerformedBy: current.CreatedBy,
		Metadata:    noteMetadata(current),
	})

	return nil
}

// noteChanges diffs the fixed tracked field set {title, content,
// category, priority}: a field contributes a {from,to} pair only when it
// is present in the patch and its value differs from the stored one.
func noteChanges(current *domain.Note, f ports.UpdateNoteFields) map[string]domain.FieldChange {
	changes := make(map[string]domain.FieldChange)

	if f.Title != nil && *f.Title != current.Title {
		changes["title"] = domain.FieldChange{From: current.Title, To: *f.Title}
	}
	if f.Content != nil && *f.Content != current.Content {
		changes["content"] = domain.FieldChange{From: current.Content, To: *f.Content}
	}
	if f.Category != nil && *f.Category != current.Category {
		changes["category"] = domain.FieldChange{From: string(current.Category), To: string(*f.Category)}
	}
	if f.Priority != nil && *f.Priority != current.Priority {
		changes["priority"] = domain.FieldChange{From: string(current.Priority), To: string(*f.Priority)}
	}

	return changes
}

func noteMetadata(n *domain.Note) map[string]any {
	return map[string]any{
		"title":    n.Title,
		"category": string(n.Category),
		"priority": string(n.Priority),
	}
}

func matchNote(n domain.Note, f ports.NoteFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(n.Title), q) &&
			!strings.Contains(strings.ToLower(n.Content), q) &&
			!tagMatches(n.Tags, q) {
			return false
		}
	}
	if f.ClientID != "" && n.ClientID != f.ClientID {
		return false
	}
	if f.CreatedBy != "" && n.CreatedBy != f.CreatedBy {
		return false
	}
	return true
}

func tagMatches(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
