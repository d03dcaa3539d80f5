package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

// defaultPassword backs accounts created without an explicit password,
// matching the seeded demo accounts. It is always stored hashed.
const defaultPassword = "password123"

// UserService implements account management. Mutations emit activity
// records like every other entity.
type UserService struct {
	repo     ports.UserRepository
	recorder ports.ActivityRecorder
	log      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, recorder ports.ActivityRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, recorder: recorder, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	password := input.Password
	if password == "" {
		password = defaultPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Avatar:       input.Avatar,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	performedBy := input.PerformedBy
	if performedBy == "" {
		performedBy = created.ID
	}
	s.recorder.Record(ctx, domain.ActivityLog{
		EntityType:  domain.EntityUser,
		EntityID:    created.ID,
		Action:      domain.ActionCreated,
		PerformedBy: performedBy,
		Metadata:    userMetadata(created),
	})

	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Role != nil && !domain.ValidRole(*input.Role) {
		return nil, domain.ErrInvalidRole
	}

	fields := ports.UpdateUserFields{
		Name:   input.Name,
		Email:  input.Email,
		Role:   input.Role,
		Avatar: input.Avatar,
	}
	// The password is only rewritten when a non-empty one is supplied.
	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		fields.PasswordHash = &h
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	performedBy := input.PerformedBy
	if performedBy == "" {
		performedBy = updated.ID
	}
	s.recorder.Record(ctx, domain.ActivityLog{
		EntityType:  domain.EntityUser,
		EntityID:    updated.ID,
		Action:      domain.ActionUpdated,
		PerformedBy: performedBy,
		Metadata:    userMetadata(updated),
	})

	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id, actorID string) error {
	if actorID != "" && id == actorID {
		return domain.ErrSelfDeletion
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrUserNotFound
	}

	performedBy := actorID
	if performedBy == "" {
		performedBy = current.ID
	}
	s.recorder.Record(ctx, domain.ActivityLog{
		EntityType:  domain.EntityUser,
		EntityID:    current.ID,
		Action:      domain.ActionDeleted,
		PerformedBy: performedBy,
		Metadata:    userMetadata(current),
	})

	return nil
}

func userMetadata(u *domain.User) map[string]any {
	return map[string]any{
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}
