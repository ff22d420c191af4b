package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/commodity-admin/internal/application/dto"
	"github.com/slooze/commodity-admin/internal/application/guard"
	"github.com/slooze/commodity-admin/internal/application/session"
	"github.com/slooze/commodity-admin/internal/domain/entity"
)

// SessionGuard middleware de navegación para rutas de página protegidas.
// Evalúa el RouteGuard en cada request con la sesión vigente (sin cachear
// decisiones) y traduce la decisión a HTTP:
//
//   - redirect → 302 al destino (/login sin sesión, /products por rol).
//   - render   → continúa hacia el handler de la vista.
//
// requiredRole vacío exige solo sesión activa.
func SessionGuard(sessions *session.Store, requiredRole entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := guard.Evaluate(sessions.Current(), requiredRole)
		if decision.Action == guard.ActionRedirect {
			return c.Redirect(decision.Target, fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireSession middleware para rutas de API: las llamadas JSON no se
// redirigen, responden 401/403 con el código de error uniforme.
func RequireSession(sessions *session.Store, requiredRole entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := sessions.Current()
		if identity == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "no hay sesión activa",
			})
		}
		if requiredRole != "" && identity.Role != requiredRole {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "rol insuficiente para este recurso",
			})
		}
		return c.Next()
	}
}
