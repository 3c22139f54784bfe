package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/clientes-api/internal/application/auth"
	"github.com/tu-usuario/clientes-api/internal/application/bootstrap"
	"github.com/tu-usuario/clientes-api/internal/application/usecase"
	"github.com/tu-usuario/clientes-api/internal/infrastructure/sqlite"
	httpRouter "github.com/tu-usuario/clientes-api/internal/interfaces/http"
	"github.com/tu-usuario/clientes-api/pkg/config"
	"github.com/tu-usuario/clientes-api/pkg/logger"
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
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir SQLite")
	}
	defer db.Close()

	// Un fallo de schema sí aborta el arranque; sin tablas no hay servicio.
	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("crear schema")
	}

	clientRepo := sqlite.NewClientRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	sessions := auth.NewSessionStore(cfg.Session.Secret, auth.SessionTTL)
	authUC := auth.NewAuthUseCase(userRepo, sessions, cfg.Admin.Email)
	clientUC := usecase.NewClientUseCase(clientRepo)

	// Siembra del admin antes de aceptar tráfico autenticado. Un fallo aquí
	// no tumba el servicio: con un admin ya sembrado en arranques previos el
	// login sigue funcionando.
	if result, err := bootstrap.SeedAdmin(ctx, userRepo, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Error().Err(err).Msg("sembrar admin")
	} else {
		log.Info().Str("admin", cfg.Admin.Email).Str("result", result).Msg("bootstrap admin")
		if result == bootstrap.ResultSeeded {
			log.Warn().Msg("admin sembrado con el password configurado: cambiarlo fuera de desarrollo")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClientUC:     clientUC,
		CookieSecure: cfg.Session.CookieSecure,
		DemoMode:     cfg.Session.DemoMode,
		Log:          log,
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
