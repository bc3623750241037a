package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/vitivinicultura-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "vitivinicultura-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user", testIssuer, 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, pkgjwt.TokenTypeAccess, claims.Type)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti")
}

func TestGenerate_SoloClaimsEmitidos(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user", testIssuer, time.Minute)
	require.NoError(t, err)

	m := gojwt.MapClaims{}
	_, _, err = gojwt.NewParser().ParseUnverified(tok, m)
	require.NoError(t, err)

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"jti", "iss", "sub", "iat", "nbf", "exp", "type"}, keys)
}

func TestGenerate_TokensDistintos(t *testing.T) {
	a, err := pkgjwt.Generate(testSecret, "user", testIssuer, time.Minute)
	require.NoError(t, err)
	b, err := pkgjwt.Generate(testSecret, "user", testIssuer, time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "user", testIssuer, time.Minute)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user", testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user", testIssuer, time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_AlgoritmoNone(t *testing.T) {
	claims := gojwt.MapClaims{"sub": "user", "type": "access", "exp": time.Now().Add(time.Hour).Unix()}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_SinExpiracion(t *testing.T) {
	claims := gojwt.MapClaims{"sub": "user", "type": "access"}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token sin exp no debe aceptarse")
}

func TestParse_TipoIncorrecto(t *testing.T) {
	claims := gojwt.MapClaims{"sub": "user", "type": "refresh", "exp": time.Now().Add(time.Hour).Unix()}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}
