package vitibrasil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/vitivinicultura-api/internal/application/viticulture"
	"github.com/jhoicas/vitivinicultura-api/internal/domain"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/metrics"
	"github.com/jhoicas/vitivinicultura-api/pkg/logger"
)

// Verificar en tiempo de compilación que Scraper implementa el puerto.
var _ viticulture.Scraper = (*Scraper)(nil)

const indexPath = "/index.php"

// Options configuración del cliente Vitibrasil.
type Options struct {
	BaseURL     string // ej. http://vitibrasil.cnpuv.embrapa.br
	Timeout     time.Duration
	Concurrency int
	MaxYears    int // años por consulta; <= 0 usa DefaultMaxYears
	UserAgent   string
	Breaker     BreakerSettings
}

// DefaultMaxYears cubre con holgura la serie publicada (desde 1970).
const DefaultMaxYears = 100

// errRangeTooLarge el rango pedido supera MaxYears; se rechaza antes de reservar memoria.
var errRangeTooLarge = errors.New("rango de años demasiado grande")

// Scraper adaptador HTTP de la fuente Vitibrasil: una petición por año del rango,
// con paralelismo acotado y un circuit breaker compartido.
type Scraper struct {
	baseURL     string
	http        *resty.Client
	catalog     *entity.Catalog
	breaker     *gobreaker.CircuitBreaker[*entity.YearData]
	concurrency int
	maxYears    int
	log         *logger.Logger
}

// New construye el scraper. El catálogo debe ser el mismo que usa el validador.
func New(opts Options, catalog *entity.Catalog, log *logger.Logger) (*Scraper, error) {
	if _, err := url.ParseRequestURI(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("vitibrasil: base url inválida: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.MaxYears <= 0 {
		opts.MaxYears = DefaultMaxYears
	}
	if opts.Breaker == (BreakerSettings{}) {
		opts.Breaker = DefaultBreakerSettings()
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	client.SetHeader("Accept", "text/html")

	return &Scraper{
		baseURL:     opts.BaseURL,
		http:        client,
		catalog:     catalog,
		breaker:     newBreaker("vitibrasil", opts.Breaker, log),
		concurrency: opts.Concurrency,
		maxYears:    opts.MaxYears,
		log:         log,
	}, nil
}

// Scrape descarga y parsea cada año de [startYear, endYear]. Un rango invertido produce
// un Dataset sin años; el primer error cancela el resto.
func (s *Scraper) Scrape(ctx context.Context, startYear, endYear int, category entity.Category, subcategory *entity.Subcategory) (*entity.Dataset, error) {
	params, err := s.queryParams(category, subcategory)
	if err != nil {
		return nil, err
	}

	n := 0
	if endYear >= startYear {
		// Una resta desbordada da negativo: también es un rango excesivo.
		span := endYear - startYear
		if span < 0 || span >= s.maxYears {
			return nil, fmt.Errorf("%w: %v: %d a %d (máximo %d)", domain.ErrUpstream, errRangeTooLarge, startYear, endYear, s.maxYears)
		}
		n = span + 1
	}
	years := make([]entity.YearData, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := 0; i < n; i++ {
		i, year := i, startYear+i
		g.Go(func() error {
			yd, err := s.breaker.Execute(func() (*entity.YearData, error) {
				return s.fetchYear(gctx, category, year, params)
			})
			if err != nil {
				return classify(err, year)
			}
			years[i] = *yd
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).
			Str("category", string(category)).
			Int("start_year", startYear).
			Int("end_year", endYear).
			Msg("fallo consultando vitibrasil")
		return nil, err
	}

	return &entity.Dataset{
		Category:    category,
		Subcategory: subcategory,
		StartYear:   startYear,
		EndYear:     endYear,
		Source:      s.baseURL,
		Years:       years,
	}, nil
}

func (s *Scraper) queryParams(category entity.Category, subcategory *entity.Subcategory) (map[string]string, error) {
	spec, ok := s.catalog.Spec(category)
	if !ok {
		return nil, fmt.Errorf("vitibrasil: %w", domain.ErrInvalidCategory)
	}
	params := map[string]string{"opcao": spec.Option}
	if subcategory != nil && len(spec.Subcategories) > 0 {
		idx := s.catalog.SubcategoryIndex(category, *subcategory)
		if idx == 0 {
			return nil, fmt.Errorf("vitibrasil: %w", domain.ErrInvalidSubcategory)
		}
		params["subopcao"] = fmt.Sprintf("subopt_%02d", idx)
	}
	return params, nil
}

func (s *Scraper) fetchYear(ctx context.Context, category entity.Category, year int, params map[string]string) (*entity.YearData, error) {
	started := time.Now()
	res, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("ano", strconv.Itoa(year)).
		Get(indexPath)
	metrics.UpstreamDuration.WithLabelValues(string(category)).Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.UpstreamFetches.WithLabelValues(string(category), metrics.OutcomeNetworkFail).Inc()
		return nil, err
	}
	link := res.Request.URL
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		link = res.RawResponse.Request.URL.String()
	}
	s.log.Debug().
		Int("year", year).
		Int("status", res.StatusCode()).
		Dur("latency", time.Since(started)).
		Str("url", link).
		Msg("vitibrasil fetch")

	if res.IsError() {
		metrics.UpstreamFetches.WithLabelValues(string(category), metrics.OutcomeHTTPError).Inc()
		return nil, fmt.Errorf("%w: status %d em %s", domain.ErrUpstream, res.StatusCode(), link)
	}

	body, err := toUTF8(res.Body(), res.Header().Get("Content-Type"))
	if err != nil {
		metrics.UpstreamFetches.WithLabelValues(string(category), metrics.OutcomeParseError).Inc()
		return nil, fmt.Errorf("%w: charset: %v", domain.ErrUpstream, err)
	}
	yd, err := parseYear(body, year, link)
	if err != nil {
		metrics.UpstreamFetches.WithLabelValues(string(category), metrics.OutcomeParseError).Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	metrics.UpstreamFetches.WithLabelValues(string(category), metrics.OutcomeOK).Inc()
	return yd, nil
}

// classify traduce el error de una petición al error de dominio correspondiente.
func classify(err error, year int) error {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: ano %d: %v", domain.ErrUpstreamTimeout, year, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: ano %d: %v", domain.ErrUpstreamTimeout, year, err)
	}
	if errors.Is(err, domain.ErrUpstream) {
		return err
	}
	return fmt.Errorf("%w: ano %d: %v", domain.ErrUpstream, year, err)
}
