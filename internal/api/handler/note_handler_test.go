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

type stubNoteService struct {
	createFn func(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateNoteInput) (*domain.Note, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubNoteService) List(context.Context, ports.NoteFilter) ([]domain.Note, error) {
	return nil, nil
}

func (s *stubNoteService) Get(context.Context, string) (*domain.Note, error) {
	return nil, nil
}

func (s *stubNoteService) Create(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	return s.createFn(ctx, input)
}

func (s *stubNoteService) Update(ctx context.Context, id string, input ports.UpdateNoteInput) (*domain.Note, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubNoteService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestNoteHandler_Create_UsesAuthenticatedUser(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(_ context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
			if input.CreatedBy != "user_1" {
				t.Fatalf("expected creator from auth context, got %q", input.CreatedBy)
			}
			if input.Category != domain.CategoryMeeting || input.Priority != domain.PriorityHigh {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Note{ID: "note_1", Title: input.Title}, nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/notes",
		`{"title":"Kickoff","category":"meeting","priority":"high"}`)
	c.Set("user_id", "user_1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "note_1" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestNoteHandler_Create_RejectsUnknownCategory(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(context.Context, ports.CreateNoteInput) (*domain.Note, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewNoteHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/notes", `{"title":"x","category":"journal"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestNoteHandler_Update_PassesOnlyPresentFields(t *testing.T) {
	stub := &stubNoteService{
		updateFn: func(_ context.Context, id string, input ports.UpdateNoteInput) (*domain.Note, error) {
			if id != "note_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Fields.Title == nil || *input.Fields.Title != "Renamed" {
				t.Fatalf("expected title in patch")
			}
			if input.Fields.Content != nil || input.Fields.Category != nil {
				t.Fatalf("absent fields must stay nil: %+v", input.Fields)
			}
			if input.UpdatedBy != "user_2" {
				t.Fatalf("unexpected actor: %s", input.UpdatedBy)
			}
			return &domain.Note{ID: id, Title: "Renamed"}, nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/notes/note_1", `{"title":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("note_1")
	c.Set("user_id", "user_2")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNoteHandler_Delete_ReturnsMessage(t *testing.T) {
	stub := &stubNoteService{
		deleteFn: func(context.Context, string) error {
			return nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/notes/note_1", "")
	c.SetParamNames("id")
	c.SetParamValues("note_1")

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
	if resp["message"] != "Note deleted successfully" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestNoteHandler_Delete_PropagatesNotFound(t *testing.T) {
	stub := &stubNoteService{
		deleteFn: func(context.Context, string) error {
			return domain.ErrNoteNotFound
		},
	}
	h := NewNoteHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/notes/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
