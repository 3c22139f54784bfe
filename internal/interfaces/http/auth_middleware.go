package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/auth"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
)

// SessionCookie nombre de la cookie de sesión.
const SessionCookie = "session"

// LocalUserID key del userID autenticado en c.Locals.
const LocalUserID = "user_id"

// RequireSession resuelve la cookie de sesión a un userID y lo deja en
// c.Locals. Sin sesión viva responde 401 antes de que corra validación o
// storage alguno.
func RequireSession(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
		}
		userID, ok := authUC.ResolveSession(token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el userID del contexto (después de RequireSession).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// setSessionCookie emite la cookie de sesión: HTTPOnly, SameSite=Lax,
// Secure según despliegue, con la vida fija del SessionStore.
func setSessionCookie(c *fiber.Ctx, token string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearSessionCookie expira la cookie en el navegador.
func clearSessionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
