package http

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitivinicultura-api/internal/application/auth"
	"github.com/jhoicas/vitivinicultura-api/internal/application/dto"
	"github.com/jhoicas/vitivinicultura-api/internal/domain"
)

// AuthHandler emite tokens de acceso.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token godoc
// @Summary      Emitir token de acceso
// @Description  Devuelve un JWT de corta duración. Sin cuerpo. Si el servidor tiene credencial de cliente configurada, exige HTTP Basic.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	out, err := h.uc.IssueToken(c.UserContext(), basicCredentials(c.Get(fiber.HeaderAuthorization)))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="vitivinicultura-api"`)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Credenciais inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Não foi possível emitir o token"})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// basicCredentials extrae usuario/clave de un header "Basic <base64>"; Present=false si no hay.
func basicCredentials(header string) dto.ClientCredentials {
	scheme, payload, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Basic") {
		return dto.ClientCredentials{}
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return dto.ClientCredentials{}
	}
	id, secret, ok := strings.Cut(string(raw), ":")
	if !ok {
		return dto.ClientCredentials{}
	}
	return dto.ClientCredentials{ClientID: id, ClientSecret: secret, Present: true}
}
