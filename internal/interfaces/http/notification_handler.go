package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/slooze/commodity-admin/internal/application/dto"
	"github.com/slooze/commodity-admin/internal/application/notification"
)

// NotificationHandler expone la cola de notificaciones vivas.
type NotificationHandler struct {
	center *notification.Center
}

// NewNotificationHandler construye el handler de notificaciones.
func NewNotificationHandler(center *notification.Center) *NotificationHandler {
	return &NotificationHandler{center: center}
}

// List godoc
// @Summary      Notificaciones vivas en orden de llegada
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	live := h.center.List()
	out := make([]dto.NotificationResponse, 0, len(live))
	for _, n := range live {
		out = append(out, dto.NotificationResponse{
			ID:          n.ID,
			Kind:        n.Kind,
			Title:       n.Title,
			Description: n.Description,
		})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Encolar una notificación
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotificationRequest  true  "kind, title, description, ttl_ms"
// @Success      201   {object}  dto.NotificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/notifications [post]
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	id := h.center.Enqueue(notification.Input{
		Kind:        in.Kind,
		Title:       in.Title,
		Description: in.Description,
	}, time.Duration(in.TTLMs)*time.Millisecond)
	return c.Status(fiber.StatusCreated).JSON(dto.NotificationResponse{
		ID:          id,
		Kind:        in.Kind,
		Title:       in.Title,
		Description: in.Description,
	})
}

// Dismiss godoc
// @Summary      Descartar una notificación (no-op si ya expiró)
// @Tags         notifications
// @Produce      json
// @Success      204
// @Router       /api/notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c *fiber.Ctx) error {
	h.center.Dismiss(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
