package http

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/vitivinicultura-api/internal/application/dto"
	"github.com/jhoicas/vitivinicultura-api/pkg/logger"
)

// NewApp crea la aplicación Fiber con el codec JSON, el manejador de errores,
// el log de peticiones y recover ya instalados.
func NewApp(name string, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:               name,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          90 * time.Second, // el scraping de rangos largos tarda
		IdleTimeout:           60 * time.Second,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(RequestLogger(log.Named("http")))
	app.Use(recover.New())
	return app
}

// ErrorHandler traduce errores no gestionados por los handlers al cuerpo {"error": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "Erro interno"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		msg = fe.Message
	} else {
		c.Locals(LocalError, err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}
