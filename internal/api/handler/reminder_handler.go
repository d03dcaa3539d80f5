package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expertsquad/crm-api/internal/core/ports"
)

// ReminderHandler exposes the in-memory meeting reminder set.
type ReminderHandler struct {
	service ports.ReminderService
}

func NewReminderHandler(service ports.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// List returns the active reminders, urgent entries first.
//
// @Summary      List active reminders
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Reminder
// @Failure      401  {object}  map[string]string
// @Router       /alerts [get]
func (h *ReminderHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Active())
}

// Dismiss hides a reminder until the next refresh regenerates it, if its
// trigger still holds. Dismissals are not persisted.
//
// @Summary      Dismiss a reminder
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reminder id"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /alerts/{id} [delete]
func (h *ReminderHandler) Dismiss(c echo.Context) error {
	if !h.service.Dismiss(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "reminder not found")
	}
	return c.NoContent(http.StatusNoContent)
}
