package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expertsquad/crm-api/internal/core/ports"
)

// SeedHandler triggers fixture loading for empty collections.
type SeedHandler struct {
	service ports.SeedService
}

func NewSeedHandler(service ports.SeedService) *SeedHandler {
	return &SeedHandler{service: service}
}

// Seed populates empty collections with demo data. Collections that
// already hold documents are left untouched, so the call is idempotent.
//
// @Summary      Seed demo data
// @Tags         seed
// @Produce      json
// @Success      200  {object}  ports.SeedResult
// @Failure      500  {object}  map[string]string
// @Router       /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	result, err := h.service.Seed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
