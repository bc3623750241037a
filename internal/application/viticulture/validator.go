package viticulture

import (
	"strconv"
	"strings"

	"github.com/jhoicas/vitivinicultura-api/internal/application/dto"
	"github.com/jhoicas/vitivinicultura-api/internal/domain"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

// Años por defecto cuando start_year / end_year no vienen en la petición.
const (
	DefaultStartYear = 1970
	DefaultEndYear   = 2023
)

// ValidatedRequest tupla normalizada lista para despachar al scraper.
type ValidatedRequest struct {
	Category    entity.Category
	Subcategory *entity.Subcategory
	StartYear   int
	EndYear     int
}

// Validator valida categoría, subcategoría y rango de años contra el catálogo.
type Validator struct {
	catalog *entity.Catalog
}

// NewValidator construye el validador sobre un catálogo inmutable.
func NewValidator(catalog *entity.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Validate no hace I/O. El rango de años no se acota ni se ordena: un rango invertido
// se reenvía tal cual.
func (v *Validator) Validate(q dto.DataQuery) (*ValidatedRequest, error) {
	category := entity.Category(q.Category)
	if !v.catalog.Has(category) {
		return nil, domain.ErrInvalidCategory
	}

	var sub *entity.Subcategory
	if v.catalog.RequiresSubcategory(category) {
		if q.Subcategory == nil || !v.catalog.HasSubcategory(category, entity.Subcategory(*q.Subcategory)) {
			return nil, domain.ErrInvalidSubcategory
		}
		s := entity.Subcategory(*q.Subcategory)
		sub = &s
	}

	return &ValidatedRequest{
		Category:    category,
		Subcategory: sub,
		StartYear:   parseYear(q.StartYear, DefaultStartYear),
		EndYear:     parseYear(q.EndYear, DefaultEndYear),
	}, nil
}

// parseYear interpreta el parámetro como entero; ausente o no numérico usa def.
func parseYear(raw *string, def int) int {
	if raw == nil {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return def
	}
	return n
}
