package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/expertsquad/crm-api/internal/api/middleware"
	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

type createNoteRequest struct {
	Title     string    `json:"title"      validate:"required"`
	Content   string    `json:"content"`
	Category  string    `json:"category"   validate:"omitempty,oneof=general client project meeting idea"`
	Priority  string    `json:"priority"   validate:"omitempty,oneof=low medium high"`
	ClientID  string    `json:"client_id"`
	Tags      []string  `json:"tags"`
	MeetingAt time.Time `json:"meeting_at"`
}

type updateNoteRequest struct {
	Title     *string    `json:"title"`
	Content   *string    `json:"content"`
	Category  *string    `json:"category" validate:"omitempty,oneof=general client project meeting idea"`
	Priority  *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	ClientID  *string    `json:"client_id"`
	Tags      *[]string  `json:"tags"`
	MeetingAt *time.Time `json:"meeting_at"`
}

// List returns notes matching the query parameters.
//
// @Summary      List notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        search      query     string  false  "Case-insensitive match on title, content or tags"
// @Param        client_id   query     string  false  "Linked client id"
// @Param        created_by  query     string  false  "Creator user id"
// @Success      200         {array}   domain.Note
// @Failure      401         {object}  map[string]string
// @Router       /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	filter := ports.NoteFilter{
		Search:    c.QueryParam("search"),
		ClientID:  c.QueryParam("client_id"),
		CreatedBy: c.QueryParam("created_by"),
	}

	notes, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

// Get returns a single note by id.
//
// @Summary      Get a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  domain.Note
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	note, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// Create adds a note.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "Note details"
// @Success      201   {object}  domain.Note
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	note, err := h.service.Create(c.Request().Context(), ports.CreateNoteInput{
		Title:     req.Title,
		Content:   req.Content,
		Category:  domain.NoteCategory(req.Category),
		Priority:  domain.NotePriority(req.Priority),
		ClientID:  req.ClientID,
		Tags:      req.Tags,
		MeetingAt: req.MeetingAt,
		CreatedBy: middleware.UserID(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, note)
}

// Update applies a partial note update. Only the fields present in the
// payload are touched; changes to title, content, category or priority
// are reflected in the activity trail.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Note id"
// @Param        body  body      updateNoteRequest  true  "Fields to update"
// @Success      200   {object}  domain.Note
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	fields := ports.UpdateNoteFields{
		Title:     req.Title,
		Content:   req.Content,
		ClientID:  req.ClientID,
		Tags:      req.Tags,
		MeetingAt: req.MeetingAt,
	}
	if req.Category != nil {
		cat := domain.NoteCategory(*req.Category)
		fields.Category = &cat
	}
	if req.Priority != nil {
		pri := domain.NotePriority(*req.Priority)
		fields.Priority = &pri
	}

	note, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateNoteInput{
		Fields:    fields,
		UpdatedBy: middleware.UserID(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, note)
}

// Delete removes a note.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Note deleted successfully"})
}
