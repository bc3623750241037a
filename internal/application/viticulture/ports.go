package viticulture

import (
	"context"

	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

// Scraper puerto de salida hacia la fuente externa de estadísticas.
// Recibe parámetros ya validados; los errores deben envolver domain.ErrUpstream,
// domain.ErrUpstreamUnavailable o domain.ErrUpstreamTimeout.
type Scraper interface {
	Scrape(ctx context.Context, startYear, endYear int, category entity.Category, subcategory *entity.Subcategory) (*entity.Dataset, error)
}

// DatasetRenderer serializa un Dataset a un formato alternativo a JSON (xml, pdf).
type DatasetRenderer interface {
	Render(ctx context.Context, dataset *entity.Dataset) ([]byte, error)
	ContentType() string
}
