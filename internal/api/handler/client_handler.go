package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/expertsquad/crm-api/internal/api/middleware"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for lead/account records.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type createClientRequest struct {
	Name         string    `json:"name"          validate:"required"`
	JobTitle     string    `json:"job_title"`
	Email        string    `json:"email"         validate:"omitempty,email"`
	Organization string    `json:"organization"`
	Phone        string    `json:"phone"`
	Platform     string    `json:"platform"`
	Stage        string    `json:"stage"`
	Status       string    `json:"status"`
	ProjectValue float64   `json:"project_value" validate:"gte=0"`
	MeetingAt    time.Time `json:"meeting_at"`
	NextAction   string    `json:"next_action"`
	Link         string    `json:"link"`
}

type updateClientRequest struct {
	Name         *string    `json:"name"`
	JobTitle     *string    `json:"job_title"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	Organization *string    `json:"organization"`
	Phone        *string    `json:"phone"`
	Platform     *string    `json:"platform"`
	Stage        *string    `json:"stage"`
	Status       *string    `json:"status"`
	ProjectValue *float64   `json:"project_value"`
	MeetingAt    *time.Time `json:"meeting_at"`
	NextAction   *string    `json:"next_action"`
	Link         *string    `json:"link"`
}

// List returns the client book, filtered by the query parameters. All
// filters compose as a conjunction.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        search      query     string  false  "Case-insensitive match on name, organization or email"
// @Param        status      query     string  false  "Exact status match"
// @Param        stage       query     string  false  "Exact stage match"
// @Param        platform    query     string  false  "Exact platform match"
// @Param        created_by  query     string  false  "Creator user id"
// @Param        meeting     query     string  false  "Meeting window: today, week, month or upcoming"
// @Success      200         {array}   domain.Client
// @Failure      401         {object}  map[string]string
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	filter := ports.ClientFilter{
		Search:        c.QueryParam("search"),
		Status:        c.QueryParam("status"),
		Stage:         c.QueryParam("stage"),
		Platform:      c.QueryParam("platform"),
		CreatedBy:     c.QueryParam("created_by"),
		MeetingWindow: c.QueryParam("meeting"),
	}

	clients, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Get returns a single client by id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create adds a client record.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		Name:         req.Name,
		JobTitle:     req.JobTitle,
		Email:        req.Email,
		Organization: req.Organization,
		Phone:        req.Phone,
		Platform:     req.Platform,
		Stage:        req.Stage,
		Status:       req.Status,
		ProjectValue: req.ProjectValue,
		MeetingAt:    req.MeetingAt,
		NextAction:   req.NextAction,
		Link:         req.Link,
		CreatedBy:    middleware.UserID(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, client)
}

// Update applies a partial client update.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Client id"
// @Param        body  body      updateClientRequest  true  "Fields to update"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateClientInput{
		Fields: ports.UpdateClientFields{
			Name:         req.Name,
			JobTitle:     req.JobTitle,
			Email:        req.Email,
			Organization: req.Organization,
			Phone:        req.Phone,
			Platform:     req.Platform,
			Stage:        req.Stage,
			Status:       req.Status,
			ProjectValue: req.ProjectValue,
			MeetingAt:    req.MeetingAt,
			NextAction:   req.NextAction,
			Link:         req.Link,
		},
		PerformedBy: middleware.UserID(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, client)
}

// Delete removes a client record.
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Client deleted successfully"})
}
