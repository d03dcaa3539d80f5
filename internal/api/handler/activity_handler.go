package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

// ActivityHandler exposes the read side of the audit trail.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List returns audit entries, newest first.
//
// @Summary      List activity entries
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        entity_type  query     string  false  "Filter by entity type: note, client or user"
// @Param        entity_id    query     string  false  "Filter by entity id"
// @Success      200          {array}   domain.ActivityLog
// @Failure      401          {object}  map[string]string
// @Router       /activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context(), ports.ActivityFilter{
		EntityType: domain.EntityType(c.QueryParam("entity_type")),
		EntityID:   c.QueryParam("entity_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
