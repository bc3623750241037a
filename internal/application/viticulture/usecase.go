package viticulture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/vitivinicultura-api/internal/application/dto"
	"github.com/jhoicas/vitivinicultura-api/internal/domain"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/repository"
	"github.com/jhoicas/vitivinicultura-api/pkg/logger"
)

// FormatJSON formato por defecto; lo serializa la capa HTTP.
const FormatJSON = "json"

// QueryResult resultado de una consulta. Body y ContentType solo se rellenan para
// formatos distintos de JSON.
type QueryResult struct {
	Dataset     *entity.Dataset
	Format      string
	Body        []byte
	ContentType string
}

// QueryUseCase valida la consulta y la despacha una sola vez al scraper.
type QueryUseCase struct {
	validator *Validator
	scraper   Scraper
	renderers map[string]DatasetRenderer
	audit     repository.RequestAuditRepository // nil = auditoría desactivada
	log       *logger.Logger
}

// NewQueryUseCase construye el caso de uso. audit puede ser nil.
func NewQueryUseCase(
	validator *Validator,
	scraper Scraper,
	renderers map[string]DatasetRenderer,
	audit repository.RequestAuditRepository,
	log *logger.Logger,
) *QueryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &QueryUseCase{
		validator: validator,
		scraper:   scraper,
		renderers: renderers,
		audit:     audit,
		log:       log,
	}
}

// Execute: validación → formato → scrape → render. Ningún error de validación llega al scraper.
func (uc *QueryUseCase) Execute(ctx context.Context, subject string, q dto.DataQuery) (*QueryResult, error) {
	req, err := uc.validator.Validate(q)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(strings.TrimSpace(q.Format))
	if format == "" {
		format = FormatJSON
	}
	var renderer DatasetRenderer
	if format != FormatJSON {
		r, ok := uc.renderers[format]
		if !ok {
			return nil, domain.ErrInvalidFormat
		}
		renderer = r
	}

	started := time.Now()
	dataset, err := uc.scraper.Scrape(ctx, req.StartYear, req.EndYear, req.Category, req.Subcategory)
	if err != nil {
		err = asUpstreamError(err)
		uc.record(ctx, subject, req, nil, time.Since(started), entity.AuditOutcomeUpstreamFailed)
		return nil, err
	}
	uc.record(ctx, subject, req, dataset, time.Since(started), entity.AuditOutcomeOK)

	out := &QueryResult{Dataset: dataset, Format: format}
	if renderer != nil {
		body, err := renderer.Render(ctx, dataset)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		out.Body = body
		out.ContentType = renderer.ContentType()
	}
	return out, nil
}

// asUpstreamError garantiza que todo fallo del scraper quede clasificado como upstream.
func asUpstreamError(err error) error {
	if errors.Is(err, domain.ErrUpstream) ||
		errors.Is(err, domain.ErrUpstreamUnavailable) ||
		errors.Is(err, domain.ErrUpstreamTimeout) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}

// record persiste la auditoría; un fallo aquí no afecta la respuesta.
func (uc *QueryUseCase) record(ctx context.Context, subject string, req *ValidatedRequest, ds *entity.Dataset, d time.Duration, outcome string) {
	if uc.audit == nil {
		return
	}
	a := &entity.RequestAudit{
		ID:            uuid.NewString(),
		Subject:       subject,
		Category:      req.Category,
		StartYear:     req.StartYear,
		EndYear:       req.EndYear,
		Outcome:       outcome,
		RecordCount:   ds.RecordCount(),
		TotalQuantity: ds.TotalQuantity(),
		Duration:      d,
		CreatedAt:     time.Now().UTC(),
	}
	if req.Subcategory != nil {
		a.Subcategory = string(*req.Subcategory)
	}
	if err := uc.audit.Create(ctx, a); err != nil {
		uc.log.Warn().Err(err).Str("category", string(req.Category)).Msg("no se pudo registrar la auditoría")
	}
}
