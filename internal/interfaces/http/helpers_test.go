package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitivinicultura-api/internal/application/auth"
	"github.com/jhoicas/vitivinicultura-api/internal/application/viticulture"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/vitibrasil"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/xmlexport"
	apphttp "github.com/jhoicas/vitivinicultura-api/internal/interfaces/http"
	"github.com/jhoicas/vitivinicultura-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "vitivinicultura-api-test"
)

type scrapeCall struct {
	start, end  int
	category    entity.Category
	subcategory *entity.Subcategory
}

// countingScraper registra cada despacho para verificar que la validación y la auth
// cortan la petición antes de llegar a la fuente.
type countingScraper struct {
	mu    sync.Mutex
	calls []scrapeCall
	err   error
}

func (s *countingScraper) Scrape(_ context.Context, start, end int, cat entity.Category, sub *entity.Subcategory) (*entity.Dataset, error) {
	s.mu.Lock()
	s.calls = append(s.calls, scrapeCall{start, end, cat, sub})
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	ds := &entity.Dataset{
		Category:    cat,
		Subcategory: sub,
		StartYear:   start,
		EndYear:     end,
		Source:      "http://vitibrasil.test",
		Years:       []entity.YearData{},
	}
	for y := start; y <= end; y++ {
		ds.Years = append(ds.Years, entity.YearData{Year: y, Unit: "L.", Records: []entity.Record{}})
	}
	return ds, nil
}

func (s *countingScraper) Calls() []scrapeCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]scrapeCall(nil), s.calls...)
}

func newAuthUseCase() *auth.AuthUseCase {
	return auth.NewAuthUseCase(auth.JWTConfig{
		Secret: testJWTSecret,
		TTL:    15 * time.Minute,
		Issuer: testIssuer,
	}, auth.ClientConfig{})
}

// buildTestApp arma la aplicación completa con el scraper dado y los renderers reales.
func buildTestApp(t *testing.T, scraper viticulture.Scraper) *fiber.App {
	t.Helper()
	catalog := vitibrasil.DefaultCatalog()
	renderers := map[string]viticulture.DatasetRenderer{
		"xml": xmlexport.NewRenderer(),
		"pdf": pdf.NewMarotoPDFGenerator("test"),
	}
	queryUC := viticulture.NewQueryUseCase(viticulture.NewValidator(catalog), scraper, renderers, nil, logger.Nop())

	app := apphttp.NewApp("vitivinicultura-api", logger.Nop())
	err := apphttp.Router(app, apphttp.RouterDeps{
		AppName: "vitivinicultura-api",
		AuthUC:  newAuthUseCase(),
		QueryUC: queryUC,
		Catalog: catalog,
	})
	require.NoError(t, err)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// issueToken obtiene un token vía POST /token.
func issueToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/token", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func decodeJSON(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dst), "cuerpo: %s", raw)
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]any
	decodeJSON(t, resp, &body)
	msg, _ := body["error"].(string)
	return msg
}
