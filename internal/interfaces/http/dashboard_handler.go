package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/commodity-admin/internal/application/analytics"
)

// DashboardHandler entrega los datasets del dashboard (solo manager).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Datasets del dashboard de administración
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetDashboard())
}
