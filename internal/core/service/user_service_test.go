package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	stored := *u
	stored.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, fields ports.UpdateUserFields) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.Role != nil {
		u.Role = *fields.Role
	}
	if fields.Avatar != nil {
		u.Avatar = *fields.Avatar
	}
	if fields.PasswordHash != nil {
		u.PasswordHash = *fields.PasswordHash
	}
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) InsertMany(ctx context.Context, users []domain.User) error {
	for i := range users {
		if _, err := r.Insert(ctx, &users[i]); err != nil {
			return err
		}
	}
	return nil
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &recorderSpy{}, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@company.com",
		Password: "s3cret",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.PasswordHash == "s3cret" || user.PasswordHash == "" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Create_DefaultsPasswordAndRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &recorderSpy{}, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:  "Bob",
		Email: "bob@company.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role, got %s", user.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(defaultPassword)); err != nil {
		t.Fatalf("expected default password hash: %v", err)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &recorderSpy{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Eve", Email: "eve@company.com", Role: "superadmin",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &recorderSpy{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "A", Email: "dup@company.com"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "B", Email: "dup@company.com"}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Create_AuditFallsBackToCreatedAccount(t *testing.T) {
	repo := newStubUserRepo()
	spy := &recorderSpy{}
	svc := NewUserService(repo, spy, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "Solo", Email: "solo@company.com"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(spy.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(spy.entries))
	}
	if spy.entries[0].PerformedBy != user.ID {
		t.Fatalf("expected self-attribution, got %s", spy.entries[0].PerformedBy)
	}
}

func TestUserService_Update_EmptyPasswordKeepsHash(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &recorderSpy{}, zerolog.Nop())

	user, _ := svc.Create(context.Background(), ports.CreateUserInput{Name: "Carol", Email: "carol@company.com", Password: "original"})
	before := repo.users[user.ID].PasswordHash

	empty := ""
	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Password: &empty}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if repo.users[user.ID].PasswordHash != before {
		t.Fatalf("empty password must not rewrite the stored hash")
	}
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &recorderSpy{}, zerolog.Nop())

	bad := "owner"
	if _, err := svc.Update(context.Background(), "user_1", ports.UpdateUserInput{Role: &bad}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Delete_RejectsSelfDeletion(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &recorderSpy{}, zerolog.Nop())

	user, _ := svc.Create(context.Background(), ports.CreateUserInput{Name: "Dana", Email: "dana@company.com"})

	if err := svc.Delete(context.Background(), user.ID, user.ID); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), user.ID); err != nil {
		t.Fatalf("account must survive a rejected self-deletion: %v", err)
	}
}

func TestUserService_Delete_RecordsActor(t *testing.T) {
	repo := newStubUserRepo()
	spy := &recorderSpy{}
	svc := NewUserService(repo, spy, zerolog.Nop())

	user, _ := svc.Create(context.Background(), ports.CreateUserInput{Name: "Frank", Email: "frank@company.com"})
	spy.entries = nil

	if err := svc.Delete(context.Background(), user.ID, "admin_1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(spy.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(spy.entries))
	}
	if spy.entries[0].Action != domain.ActionDeleted || spy.entries[0].PerformedBy != "admin_1" {
		t.Fatalf("unexpected entry: %+v", spy.entries[0])
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &recorderSpy{}, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing", "admin_1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
