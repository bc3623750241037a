package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitivinicultura-api/internal/application/dto"
)

// LocalSubject key de Fiber Locals con la identidad del token.
const LocalSubject = "subject"

// tokenAuthenticator contrato mínimo que necesita el middleware; lo implementa *auth.AuthUseCase.
type tokenAuthenticator interface {
	Authenticate(tokenString string) (string, error)
}

// AuthMiddleware valida el Bearer Token JWT y guarda la identidad en c.Locals.
// Cualquier fallo corta la cadena con 401 antes de llegar al handler.
func AuthMiddleware(authn tokenAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Token de acesso ausente")
		}
		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return unauthorized(c, "Formato esperado: Bearer <token>")
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			return unauthorized(c, "Token de acesso ausente")
		}
		subject, err := authn.Authenticate(tokenString)
		if err != nil {
			return unauthorized(c, "Token inválido ou expirado")
		}
		c.Locals(LocalSubject, subject)
		return c.Next()
	}
}

// GetSubject devuelve la identidad del token (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubject).(string)
	return s
}

func unauthorized(c *fiber.Ctx, msg string) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="vitivinicultura-api"`)
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: msg})
}
