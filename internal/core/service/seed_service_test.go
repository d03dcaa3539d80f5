package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/expertsquad/crm-api/internal/core/domain"
)

func TestSeedService_PopulatesEmptyCollections(t *testing.T) {
	users := newStubUserRepo()
	clients := newStubClientRepo()
	svc := NewSeedService(users, clients, zerolog.Nop())

	result, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if result.UsersSeeded != 3 {
		t.Fatalf("expected 3 seeded users, got %d", result.UsersSeeded)
	}
	if result.ClientsSeeded != 6 {
		t.Fatalf("expected 6 seeded clients, got %d", result.ClientsSeeded)
	}

	admin, err := users.FindByEmail(context.Background(), "john@company.com")
	if err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(defaultPassword)); err != nil {
		t.Fatalf("seeded password not hashed from default: %v", err)
	}

	// Every seeded client is attributed to a seeded user.
	seeded, _ := clients.List(context.Background())
	for _, c := range seeded {
		if c.CreatedBy == "" {
			t.Fatalf("client %s has no creator", c.Name)
		}
		if _, err := users.FindByID(context.Background(), c.CreatedBy); err != nil {
			t.Fatalf("client %s attributed to unknown user %s", c.Name, c.CreatedBy)
		}
	}
}

func TestSeedService_IsIdempotent(t *testing.T) {
	users := newStubUserRepo()
	clients := newStubClientRepo()
	svc := NewSeedService(users, clients, zerolog.Nop())

	if _, err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}

	result, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if result.UsersSeeded != 0 || result.ClientsSeeded != 0 {
		t.Fatalf("second seed must be a no-op, got %+v", result)
	}

	if n, _ := users.Count(context.Background()); n != 3 {
		t.Fatalf("expected 3 users, got %d", n)
	}
	if n, _ := clients.Count(context.Background()); n != 6 {
		t.Fatalf("expected 6 clients, got %d", n)
	}
}

func TestSeedService_SeedsClientsForExistingUsers(t *testing.T) {
	users := newStubUserRepo()
	clients := newStubClientRepo()

	existing, err := users.Insert(context.Background(), &domain.User{Name: "Existing", Email: "existing@company.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("insert existing user: %v", err)
	}

	svc := NewSeedService(users, clients, zerolog.Nop())
	result, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if result.UsersSeeded != 0 {
		t.Fatalf("user collection was not empty, got %d seeded", result.UsersSeeded)
	}
	if result.ClientsSeeded != 6 {
		t.Fatalf("expected 6 seeded clients, got %d", result.ClientsSeeded)
	}

	seeded, _ := clients.List(context.Background())
	for _, c := range seeded {
		if c.CreatedBy != existing.ID {
			t.Fatalf("expected attribution to %s, got %s", existing.ID, c.CreatedBy)
		}
	}
}
