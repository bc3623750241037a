package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/repository"
)

var _ repository.RequestAuditRepository = (*RequestAuditRepo)(nil)

const createRequestAuditTable = `
	CREATE TABLE IF NOT EXISTS request_audit (
		id             UUID PRIMARY KEY,
		subject        TEXT NOT NULL,
		category       TEXT NOT NULL,
		subcategory    TEXT NOT NULL DEFAULT '',
		start_year     INTEGER NOT NULL,
		end_year       INTEGER NOT NULL,
		outcome        TEXT NOT NULL,
		record_count   INTEGER NOT NULL,
		total_quantity NUMERIC(20, 2) NOT NULL,
		duration_ms    BIGINT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL
	)`

// RequestAuditRepo implementación del puerto RequestAuditRepository sobre PostgreSQL.
type RequestAuditRepo struct {
	pool *pgxpool.Pool
}

// NewRequestAuditRepository construye el adaptador de persistencia de auditoría.
func NewRequestAuditRepository(pool *pgxpool.Pool) *RequestAuditRepo {
	return &RequestAuditRepo{pool: pool}
}

// EnsureSchema crea la tabla si no existe.
func (r *RequestAuditRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createRequestAuditTable); err != nil {
		return fmt.Errorf("create request_audit: %w", err)
	}
	return nil
}

// Create persiste el registro de una consulta.
func (r *RequestAuditRepo) Create(ctx context.Context, a *entity.RequestAudit) error {
	query := `
		INSERT INTO request_audit (id, subject, category, subcategory, start_year, end_year,
			outcome, record_count, total_quantity, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Subject, string(a.Category), a.Subcategory, a.StartYear, a.EndYear,
		a.Outcome, a.RecordCount, a.TotalQuantity, a.Duration.Milliseconds(), a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request_audit: %w", err)
	}
	return nil
}
