package vitibrasil

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/metrics"
	"github.com/jhoicas/vitivinicultura-api/pkg/logger"
)

// BreakerSettings parámetros del circuit breaker que protege la fuente externa.
type BreakerSettings struct {
	MaxRequests         uint32        // peticiones permitidas en half-open
	Interval            time.Duration // ventana de conteo en closed
	Timeout             time.Duration // espera en open antes de pasar a half-open
	ConsecutiveFailures uint32        // abre tras N fallos seguidos
}

// DefaultBreakerSettings abre tras 5 fallos seguidos o 60% de fallos con al menos 10 peticiones.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:         3,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

func newBreaker(name string, s BreakerSettings, log *logger.Logger) *gobreaker.CircuitBreaker[*entity.YearData] {
	return gobreaker.NewCircuitBreaker[*entity.YearData](gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if s.ConsecutiveFailures > 0 && counts.ConsecutiveFailures >= s.ConsecutiveFailures {
				return true
			}
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		// Cancelaciones provocadas por otro año fallido no cuentan como fallo de la fuente.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.BreakerState.WithLabelValues(name).Set(float64(to))
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker cambió de estado")
		},
	})
}
