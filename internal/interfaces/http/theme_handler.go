package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/commodity-admin/internal/application/dto"
	"github.com/slooze/commodity-admin/internal/application/preference"
)

// ThemeHandler expone la preferencia de tema.
type ThemeHandler struct {
	prefs *preference.Store
}

// NewThemeHandler construye el handler de tema.
func NewThemeHandler(prefs *preference.Store) *ThemeHandler {
	return &ThemeHandler{prefs: prefs}
}

// Get godoc
// @Summary      Tema activo
// @Tags         theme
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/theme [get]
func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.ThemeResponse{Theme: string(h.prefs.Current())})
}

// Toggle godoc
// @Summary      Alternar light/dark (persiste el nuevo valor)
// @Tags         theme
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/theme/toggle [post]
func (h *ThemeHandler) Toggle(c *fiber.Ctx) error {
	theme, err := h.prefs.Toggle()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ThemeResponse{Theme: string(theme)})
}
