package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

// ClientService implements lead/account CRUD. Mutations are routed
// through the same activity recorder as notes so the audit trail covers
// every entity uniformly.
type ClientService struct {
	repo     ports.ClientRepository
	recorder ports.ActivityRecorder
	log      zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, recorder ports.ActivityRecorder, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, recorder: recorder, log: log}
}

// List fetches the full client book and applies the filter predicates
// in memory, mirroring how the dashboard consumes it.
func (s *ClientService) List(ctx context.Context, filter ports.ClientFilter) ([]domain.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterClients(clients, filter, time.Now().UTC()), nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	client := &domain.Client{
		Name:         input.Name,
		JobTitle:     input.JobTitle,
		Email:        input.Email,
		Organization: input.Organization,
		Phone:        input.Phone,
		Platform:     input.Platform,
		Stage:        input.Stage,
		Status:       input.Status,
		ProjectValue: input.ProjectValue,
		MeetingAt:    input.MeetingAt,
		NextAction:   input.NextAction,
		Link:         input.Link,
		CreatedBy:    input.CreatedBy,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, client)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	s.recorder.Record(ctx, domain.ActivityLog{
		EntityType:  domain.EntityClient,
		EntityID:    created.ID,
		Action:      domain.ActionCreated,
		PerformedBy: created.CreatedBy,
		Metadata:    clientMetadata(created),
	})

	return created, nil
}

func (s *ClientService) Update(ctx context.Context, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, input.Fields)
	if err != nil {
		return nil, err
	}

	performedBy := input.PerformedBy
	if performedBy == "" {
		performedBy = current.CreatedBy
	}
	s.recorder.Record(ctx, domain.ActivityLog{
		EntityType:  domain.EntityClient,
		EntityID:    updated.ID,
		Action:      domain.ActionUpdated,
		PerformedBy: performedBy,
		Metadata:    clientMetadata(updated),
	})

	return updated, nil
}

func (s *ClientService) Delete(ctx context.Context, id, actorID string) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrClientNotFound
	}

	performedBy := actorID
	if performedBy == "" {
		performedBy = current.CreatedBy
	}
	s.recorder.Record(ctx, domain.ActivityLog{
		EntityType:  domain.EntityClient,
		EntityID:    current.ID,
		Action:      domain.ActionDeleted,
		PerformedBy: performedBy,
		Metadata:    clientMetadata(current),
	})

	return nil
}

func clientMetadata(c *domain.Client) map[string]any {
	return map[string]any{
		"name":         c.Name,
		"organization": c.Organization,
		"stage":        c.Stage,
		"status":       c.Status,
	}
}
