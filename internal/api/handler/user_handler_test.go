package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

type stubUserService struct {
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id, actorID string) error
}

func (s *stubUserService) List(context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserService) Get(context.Context, string) (*domain.User, error) {
	return nil, nil
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, id, actorID string) error {
	return s.deleteFn(ctx, id, actorID)
}

func TestUserHandler_Create_UsesAuthenticatedActor(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.PerformedBy != "admin_1" {
				t.Fatalf("expected actor from auth context, got %q", input.PerformedBy)
			}
			if input.Name != "Bob" || input.Role != "user" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "user_9", Name: input.Name, Role: input.Role}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/users",
		`{"name":"Bob","email":"bob@company.com","role":"user"}`)
	c.Set("user_id", "admin_1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_RejectsUnknownRole(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/users",
		`{"name":"Bob","email":"bob@company.com","role":"superadmin"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestUserHandler_Update_PassesOnlyPresentFields(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(_ context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			if id != "user_9" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Role == nil || *input.Role != "admin" {
				t.Fatalf("expected role in patch")
			}
			if input.Name != nil || input.Email != nil || input.Password != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			if input.PerformedBy != "admin_1" {
				t.Fatalf("unexpected actor: %s", input.PerformedBy)
			}
			return &domain.User{ID: id, Role: "admin"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/users/user_9", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("user_9")
	c.Set("user_id", "admin_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_ReturnsMessage(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(_ context.Context, id, actorID string) error {
			if id != "user_9" || actorID != "admin_1" {
				t.Fatalf("unexpected args: %s %s", id, actorID)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/users/user_9", "")
	c.SetParamNames("id")
	c.SetParamValues("user_9")
	c.Set("user_id", "admin_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User deleted successfully" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestUserHandler_Delete_PropagatesSelfDeletion(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(context.Context, string, string) error {
			return domain.ErrSelfDeletion
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/users/admin_1", "")
	c.SetParamNames("id")
	c.SetParamValues("admin_1")
	c.Set("user_id", "admin_1")

	if err := h.Delete(c); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
}
