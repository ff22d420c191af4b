package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/slooze/commodity-admin/internal/application/analytics"
	"github.com/slooze/commodity-admin/internal/application/notification"
	"github.com/slooze/commodity-admin/internal/application/preference"
	"github.com/slooze/commodity-admin/internal/application/session"
	"github.com/slooze/commodity-admin/internal/application/usecase"
	"github.com/slooze/commodity-admin/internal/domain/entity"
	infraroster "github.com/slooze/commodity-admin/internal/infrastructure/roster"
	"github.com/slooze/commodity-admin/internal/infrastructure/storage"
	httpRouter "github.com/slooze/commodity-admin/internal/interfaces/http"
	"github.com/slooze/commodity-admin/pkg/config"
	"github.com/slooze/commodity-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	kv, err := storage.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén clave-valor")
	}
	defer kv.Close()

	accounts := infraroster.NewBuiltin()
	if cfg.Storage.RosterPath != "" {
		accounts, err = infraroster.LoadFile(cfg.Storage.RosterPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.RosterPath).Msg("cargar roster de cuentas")
		}
	}

	sessions := session.NewStore(kv, accounts, log)
	if identity := sessions.Restore(); identity != nil {
		log.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("sesión restaurada")
	}

	prefs := preference.NewStore(kv, cfg.Theme.SystemDark, func(t entity.Theme) {
		// Marcador raíz: la capa de presentación elige paleta a partir de esto.
		log.Debug().Str("theme", string(t)).Msg("tema aplicado")
	}, log)
	theme := prefs.Initialize()
	log.Info().Str("theme", string(theme)).Msg("preferencia de tema resuelta")

	center := notification.NewCenter(time.Duration(cfg.Notify.DefaultTTLMs)*time.Millisecond, log)
	defer center.Close()

	dashboardUC := analytics.NewDashboardUseCase()
	productUC := usecase.NewProductUseCase(center)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Commodity Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:    sessions,
		Preferences: prefs,
		Center:      center,
		DashboardUC: dashboardUC,
		ProductUC:   productUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
