package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/auth"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/pkg/logger"
)

// AuthHandler maneja login, logout, sesión actual y demo login.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	cookieSecure bool
	log          *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookieSecure bool, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookieSecure: cookieSecure, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, token, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Mismo mensaje para email inexistente y password errónea.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		h.log.Error().Err(err).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	setSessionCookie(c, token, h.cookieSecure)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.OkResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Idempotente: destruir una sesión ausente no es un error.
	if token := c.Cookies(SessionCookie); token != "" {
		h.uc.Logout(token)
	}
	clearSessionCookie(c, h.cookieSecure)
	return c.JSON(dto.OkResponse{Ok: true})
}

// Me godoc
// @Summary      Cuenta de la sesión activa
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.CurrentUser(c.Context(), GetUserID(c))
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			h.log.Error().Err(err).Msg("me")
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	}
	return c.JSON(out)
}

// Demo godoc
// @Summary      Demo login (sin password, solo con DEMO_MODE)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /auth/demo [post]
func (h *AuthHandler) Demo(c *fiber.Ctx) error {
	out, token, err := h.uc.DemoLogin(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "ADMIN_MISSING", Message: "admin no encontrado"})
		}
		h.log.Error().Err(err).Msg("demo login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	setSessionCookie(c, token, h.cookieSecure)
	return c.JSON(out)
}
