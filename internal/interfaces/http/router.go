package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/vitivinicultura-api/internal/application/auth"
	"github.com/jhoicas/vitivinicultura-api/internal/application/viticulture"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName string
	AuthUC  *auth.AuthUseCase
	QueryUC *viticulture.QueryUseCase
	Catalog *entity.Catalog
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) error {
	home, err := NewHomeHandler(deps.AppName, deps.Catalog)
	if err != nil {
		return err
	}

	// Público
	app.Get("/", home.Index)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/token", authHandler.Token)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.AuthUC))
	dataHandler := NewDataHandler(deps.QueryUC, deps.Catalog)
	api.Get("/categories", dataHandler.Categories)
	api.Get("/:category", dataHandler.Get)
	return nil
}
