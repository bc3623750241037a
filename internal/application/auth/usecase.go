package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/jhoicas/vitivinicultura-api/internal/application/dto"
	"github.com/jhoicas/vitivinicultura-api/internal/domain"
	"github.com/jhoicas/vitivinicultura-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Identity principal fijo de todos los tokens emitidos.
const Identity = "user"

// JWTConfig configuración para generación y validación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// ClientConfig credencial opcional exigida por POST /token.
// Con SecretHash vacío el emisor entrega un token a cualquiera.
type ClientConfig struct {
	ClientID   string
	SecretHash string
}

// AuthUseCase emite y valida tokens de acceso. No tiene estado mutable: es seguro
// compartirlo entre peticiones concurrentes.
type AuthUseCase struct {
	jwtCfg    JWTConfig
	clientCfg ClientConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(jwtCfg JWTConfig, clientCfg ClientConfig) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg, clientCfg: clientCfg}
}

// RequiresCredentials indica si POST /token exige credenciales de cliente.
func (uc *AuthUseCase) RequiresCredentials() bool {
	return uc.clientCfg.SecretHash != ""
}

// IssueToken firma un token para la identidad fija. Solo falla por configuración
// (secret vacío) o, si hay credencial configurada, con ErrUnauthorized.
func (uc *AuthUseCase) IssueToken(_ context.Context, creds dto.ClientCredentials) (*dto.TokenResponse, error) {
	if uc.RequiresCredentials() {
		if err := uc.checkCredentials(creds); err != nil {
			return nil, err
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, Identity, uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token}, nil
}

// Authenticate valida el token y devuelve la identidad que contiene.
func (uc *AuthUseCase) Authenticate(tokenString string) (string, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}

func (uc *AuthUseCase) checkCredentials(creds dto.ClientCredentials) error {
	if !creds.Present {
		return domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(creds.ClientID), []byte(uc.clientCfg.ClientID)) != 1 {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.clientCfg.SecretHash), []byte(creds.ClientSecret)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}
