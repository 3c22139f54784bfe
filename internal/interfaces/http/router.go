package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/auth"
	"github.com/tu-usuario/clientes-api/internal/application/usecase"
	"github.com/tu-usuario/clientes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ClientUC     *usecase.ClientUseCase
	CookieSecure bool
	DemoMode     bool
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieSecure, deps.Log)

	// Auth (público)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	// Demo login: la ruta solo existe con DEMO_MODE; apagado responde 404
	// como cualquier ruta desconocida.
	if deps.DemoMode {
		authGroup.Post("/demo", authHandler.Demo)
	}

	app.Get("/me", RequireSession(deps.AuthUC), authHandler.Me)

	// Clients (protegido)
	clients := app.Group("/clients", RequireSession(deps.AuthUC))
	clientHandler := NewClientHandler(deps.ClientUC, deps.Log)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
}
