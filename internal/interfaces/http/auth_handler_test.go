package http_test

import (
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vitivinicultura-api/internal/application/auth"
	apphttp "github.com/jhoicas/vitivinicultura-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/vitivinicultura-api/pkg/jwt"
)

func TestToken_EmiteTokenValido(t *testing.T) {
	app := buildTestApp(t, &countingScraper{})

	tok := issueToken(t, app)
	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestToken_CadaLlamadaEmiteTokenNuevo(t *testing.T) {
	app := buildTestApp(t, &countingScraper{})

	first := issueToken(t, app)
	second := issueToken(t, app)
	assert.NotEqual(t, first, second, "cada token lleva su propio jti")

	for _, tok := range []string{first, second} {
		resp := doRequest(t, app, http.MethodGet, "/api/producao?start_year=2020&end_year=2020", "Bearer "+tok)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestToken_IgnoraCuerpo(t *testing.T) {
	app := buildTestApp(t, &countingScraper{})
	req, _ := http.NewRequest(http.MethodPost, "/token", nil)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func buildCredentialApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(
		auth.JWTConfig{Secret: testJWTSecret, TTL: time.Minute, Issuer: testIssuer},
		auth.ClientConfig{ClientID: "painel", SecretHash: string(hash)},
	)
	app := fiber.New()
	app.Post("/token", apphttp.NewAuthHandler(uc).Token)
	return app
}

func basic(id, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(id+":"+secret))
}

func TestToken_CredencialDeCliente(t *testing.T) {
	app := buildCredentialApp(t)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"sin credencial", "", http.StatusUnauthorized},
		{"secreto incorrecto", basic("painel", "errado"), http.StatusUnauthorized},
		{"cliente incorrecto", basic("outro", "s3cret"), http.StatusUnauthorized},
		{"base64 inválido", "Basic %%%", http.StatusUnauthorized},
		{"credencial correcta", basic("painel", "s3cret"), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, "/token", tc.header)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.status == http.StatusUnauthorized {
				assert.Equal(t, "Credenciais inválidas", errorMessage(t, resp))
			}
		})
	}
}
