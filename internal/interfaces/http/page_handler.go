package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/commodity-admin/internal/application/preference"
	"github.com/slooze/commodity-admin/internal/application/session"
)

// PageHandler confirma el render de las vistas protegidas. El chrome real lo
// dibuja el SPA; el servidor responde qué vista corresponde y con qué tema,
// de modo que el guard sea observable de extremo a extremo.
type PageHandler struct {
	sessions *session.Store
	prefs    *preference.Store
}

// NewPageHandler construye el handler de páginas.
func NewPageHandler(sessions *session.Store, prefs *preference.Store) *PageHandler {
	return &PageHandler{sessions: sessions, prefs: prefs}
}

// Login vista pública de acceso.
func (h *PageHandler) Login(c *fiber.Ctx) error {
	return h.render(c, "login")
}

// Dashboard vista del panel (solo manager; el guard ya decidió).
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return h.render(c, "dashboard")
}

// Products vista del listado de productos.
func (h *PageHandler) Products(c *fiber.Ctx) error {
	return h.render(c, "products")
}

// AddProduct vista del formulario de alta (solo manager).
func (h *PageHandler) AddProduct(c *fiber.Ctx) error {
	return h.render(c, "add-product")
}

func (h *PageHandler) render(c *fiber.Ctx, view string) error {
	body := fiber.Map{
		"view":  view,
		"theme": string(h.prefs.Current()),
	}
	if identity := h.sessions.Current(); identity != nil {
		body["email"] = identity.Email
		body["role"] = string(identity.Role)
	}
	return c.JSON(body)
}
