package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slooze/commodity-admin/internal/application/analytics"
	"github.com/slooze/commodity-admin/internal/application/notification"
	"github.com/slooze/commodity-admin/internal/application/preference"
	"github.com/slooze/commodity-admin/internal/application/session"
	"github.com/slooze/commodity-admin/internal/application/usecase"
	"github.com/slooze/commodity-admin/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions    *session.Store
	Preferences *preference.Store
	Center      *notification.Center
	DashboardUC *analytics.DashboardUseCase
	ProductUC   *usecase.ProductUseCase
}

// Router registra las rutas de la API y las rutas de página protegidas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y me operan sobre la sesión del proceso)
	authHandler := NewAuthHandler(deps.Sessions, deps.Center)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Tema (independiente de la sesión)
	themeHandler := NewThemeHandler(deps.Preferences)
	api.Get("/theme", themeHandler.Get)
	api.Post("/theme/toggle", themeHandler.Toggle)

	// Notificaciones (requieren sesión)
	notifHandler := NewNotificationHandler(deps.Center)
	notifications := api.Group("/notifications", RequireSession(deps.Sessions, ""))
	notifications.Get("/", notifHandler.List)
	notifications.Post("/", notifHandler.Create)
	notifications.Delete("/:id", notifHandler.Dismiss)

	// Dashboard (solo manager)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", RequireSession(deps.Sessions, entity.RoleManager), dashboardHandler.Get)

	// Productos (listado para cualquier sesión; alta y descarte solo manager)
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products", RequireSession(deps.Sessions, ""))
	products.Get("/", productHandler.List)
	products.Post("/", RequireSession(deps.Sessions, entity.RoleManager), productHandler.Create)
	products.Post("/discard", RequireSession(deps.Sessions, entity.RoleManager), productHandler.Discard)

	// Rutas de página: el guard se evalúa en cada navegación y redirige
	// con 302 según el contrato (sin sesión → /login, rol insuficiente →
	// /products). Las vistas en sí son del SPA; aquí solo se confirma el render.
	pages := NewPageHandler(deps.Sessions, deps.Preferences)
	app.Get("/login", pages.Login)
	app.Get("/dashboard", SessionGuard(deps.Sessions, entity.RoleManager), pages.Dashboard)
	app.Get("/products", SessionGuard(deps.Sessions, ""), pages.Products)
	app.Get("/products/new", SessionGuard(deps.Sessions, entity.RoleManager), pages.AddProduct)
}
