package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitivinicultura-api/internal/application/dto"
	"github.com/jhoicas/vitivinicultura-api/internal/application/viticulture"
	"github.com/jhoicas/vitivinicultura-api/internal/domain"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

// DataHandler punto de entrada autenticado para las estadísticas vitivinícolas.
type DataHandler struct {
	uc      *viticulture.QueryUseCase
	catalog *entity.Catalog
}

// NewDataHandler construye el handler.
func NewDataHandler(uc *viticulture.QueryUseCase, catalog *entity.Catalog) *DataHandler {
	return &DataHandler{uc: uc, catalog: catalog}
}

// Get godoc
// @Summary      Consultar dados de uma categoria
// @Tags         dados
// @Security     Bearer
// @Produce      json,xml,application/pdf
// @Param        category     path   string  true   "producao | processamento | comercializacao | importacao | exportacao"
// @Param        start_year   query  int     false  "Ano inicial (padrão 1970)"
// @Param        end_year     query  int     false  "Ano final (padrão 2023)"
// @Param        subcategory  query  string  false  "Obrigatória para processamento, importacao e exportacao"
// @Param        format       query  string  false  "json (padrão) | xml | pdf"
// @Success      200  {object}  entity.Dataset
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/{category} [get]
func (h *DataHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Execute(c.UserContext(), GetSubject(c), parseDataQuery(c))
	if err != nil {
		return writeQueryError(c, err)
	}
	if out.Body == nil {
		return c.Status(fiber.StatusOK).JSON(out.Dataset)
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	if out.Format == "pdf" {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_%d_%d.pdf"`,
			out.Dataset.Category, out.Dataset.StartYear, out.Dataset.EndYear))
	}
	return c.Status(fiber.StatusOK).Send(out.Body)
}

// Categories godoc
// @Summary      Listar categorias e subcategorias válidas
// @Tags         dados
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *DataHandler) Categories(c *fiber.Ctx) error {
	specs := h.catalog.Categories()
	out := dto.CatalogResponse{Categories: make([]dto.CategoryResponse, 0, len(specs))}
	for _, s := range specs {
		subs := make([]string, 0, len(s.Subcategories))
		for _, sub := range s.Subcategories {
			subs = append(subs, string(sub))
		}
		out.Categories = append(out.Categories, dto.CategoryResponse{Name: string(s.Name), Subcategories: subs})
	}
	return c.JSON(out)
}

// parseDataQuery distingue parámetro ausente (nil) de parámetro vacío.
func parseDataQuery(c *fiber.Ctx) dto.DataQuery {
	args := c.Context().QueryArgs()
	optional := func(key string) *string {
		if !args.Has(key) {
			return nil
		}
		v := string(args.Peek(key))
		return &v
	}
	return dto.DataQuery{
		Category:    c.Params("category"),
		Subcategory: optional("subcategory"),
		StartYear:   optional("start_year"),
		EndYear:     optional("end_year"),
		Format:      c.Query("format"),
	}
}

func writeQueryError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "Erro interno"
	switch {
	case errors.Is(err, domain.ErrInvalidCategory):
		status, msg = fiber.StatusBadRequest, domain.ErrInvalidCategory.Error()
	case errors.Is(err, domain.ErrInvalidSubcategory):
		status, msg = fiber.StatusBadRequest, domain.ErrInvalidSubcategory.Error()
	case errors.Is(err, domain.ErrInvalidFormat):
		status, msg = fiber.StatusBadRequest, domain.ErrInvalidFormat.Error()
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		status, msg = fiber.StatusServiceUnavailable, domain.ErrUpstreamUnavailable.Error()
	case errors.Is(err, domain.ErrUpstreamTimeout):
		status, msg = fiber.StatusGatewayTimeout, domain.ErrUpstreamTimeout.Error()
	case errors.Is(err, domain.ErrUpstream):
		status, msg = fiber.StatusBadGateway, domain.ErrUpstream.Error()
	}
	if status >= fiber.StatusInternalServerError {
		// El detalle queda en el log de la petición; al cliente solo el mensaje genérico.
		c.Locals(LocalError, err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}
