package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/vitivinicultura-api/docs"

	"github.com/jhoicas/vitivinicultura-api/internal/application/auth"
	"github.com/jhoicas/vitivinicultura-api/internal/application/viticulture"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/vitivinicultura-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/postgres"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/vitibrasil"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/vitivinicultura-api/internal/interfaces/http"
	"github.com/jhoicas/vitivinicultura-api/pkg/config"
	"github.com/jhoicas/vitivinicultura-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title        Vitivinicultura API
// @version      1.0
// @description  Estatísticas de vitivinicultura do Brasil (Embrapa Vitibrasil) com autenticação JWT.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	catalog := vitibrasil.DefaultCatalog()
	scraper, err := vitibrasil.New(vitibrasil.Options{
		BaseURL:     cfg.Scraper.BaseURL,
		Timeout:     cfg.Scraper.Timeout,
		Concurrency: cfg.Scraper.Concurrency,
		MaxYears:    cfg.Scraper.MaxYears,
		UserAgent:   cfg.Scraper.UserAgent,
	}, catalog, log.Named("vitibrasil"))
	if err != nil {
		log.Fatal().Err(err).Msg("configurar scraper")
	}

	// Auditoría en PostgreSQL: solo con AUDIT_ENABLED=true.
	ctx := context.Background()
	var audit repository.RequestAuditRepository
	if cfg.DB.AuditEnabled {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		auditRepo := postgres.NewRequestAuditRepository(pool)
		if err := auditRepo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("crear tabla de auditoría")
		}
		audit = auditRepo
		log.Info().Msg("auditoría de consultas activada")
	}

	renderers := map[string]viticulture.DatasetRenderer{
		"xml": xmlexport.NewRenderer(),
		"pdf": infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
	}
	queryUC := viticulture.NewQueryUseCase(
		viticulture.NewValidator(catalog), scraper, renderers, audit, log.Named("query"),
	)
	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
		Issuer: cfg.JWT.Issuer,
	}, auth.ClientConfig{
		ClientID:   cfg.Auth.ClientID,
		SecretHash: cfg.Auth.ClientSecretHash,
	})
	if authUC.RequiresCredentials() {
		log.Info().Str("client_id", cfg.Auth.ClientID).Msg("POST /token exige credencial de cliente")
	}

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs. Sin el archivo generado
	// se publica al menos el documento registrado por el paquete docs.
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Vitivinicultura API",
		}))
	} else {
		app.Get("/docs/swagger.json", func(c *fiber.Ctx) error {
			doc, err := swag.ReadDoc()
			if err != nil {
				return err
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.SendString(doc)
		})
	}

	if err := httpRouter.Router(app, httpRouter.RouterDeps{
		AppName: cfg.App.Name,
		AuthUC:  authUC,
		QueryUC: queryUC,
		Catalog: catalog,
	}); err != nil {
		log.Fatal().Err(err).Msg("registrar rutas")
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
