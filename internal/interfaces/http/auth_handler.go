package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/slooze/commodity-admin/internal/application/dto"
	"github.com/slooze/commodity-admin/internal/application/notification"
	"github.com/slooze/commodity-admin/internal/application/session"
	"github.com/slooze/commodity-admin/internal/domain"
	"github.com/slooze/commodity-admin/internal/domain/entity"
)

// AuthHandler maneja login, logout y la identidad actual.
type AuthHandler struct {
	sessions *session.Store
	center   *notification.Center
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(sessions *session.Store, center *notification.Center) *AuthHandler {
	return &AuthHandler{sessions: sessions, center: center}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.IdentityResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	identity, err := h.sessions.Login(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Error funcional del usuario, se muestra inline; no es un fallo del sistema.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.center.Enqueue(notification.Input{
		Kind:  entity.NotificationSuccess,
		Title: "Signed in",
	}, 0)
	return c.JSON(toIdentityResponse(identity))
}

// Logout godoc
// @Summary      Cerrar sesión (idempotente)
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	hadSession := h.sessions.Current() != nil
	if err := h.sessions.Logout(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if hadSession {
		h.center.Enqueue(notification.Input{
			Kind:  entity.NotificationSuccess,
			Title: "Signed out",
		}, 0)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Identidad de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.IdentityResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity := h.sessions.Current()
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no hay sesión activa"})
	}
	return c.JSON(toIdentityResponse(*identity))
}

func toIdentityResponse(identity entity.Identity) dto.IdentityResponse {
	return dto.IdentityResponse{
		Email:       identity.Email,
		Role:        string(identity.Role),
		Destination: identity.HomeDestination(),
	}
}
