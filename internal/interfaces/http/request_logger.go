package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/metrics"
	"github.com/jhoicas/vitivinicultura-api/pkg/logger"
)

const (
	// LocalRequestID key de Fiber Locals con el id de la petición.
	LocalRequestID = "request_id"
	// LocalError error interno que se adjunta al log sin exponerlo al cliente.
	LocalError = "internal_error"

	headerRequestID = "X-Request-ID"
)

// RequestLogger asigna X-Request-ID, emite una línea de log por petición y
// alimenta las métricas HTTP.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := c.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(headerRequestID, id)

		chainErr := c.Next()
		if chainErr != nil {
			// Deja la respuesta escrita antes de medir el status final.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		route := c.Route().Path
		metrics.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Method(), route).Observe(elapsed.Seconds())

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		if err, ok := c.Locals(LocalError).(error); ok {
			ev = ev.Err(err)
		}
		ev.Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", elapsed).
			Str("ip", c.IP()).
			Msg("petición")
		return nil
	}
}
