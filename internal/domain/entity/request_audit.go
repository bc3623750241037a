package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resultados posibles de una consulta auditada.
const (
	AuditOutcomeOK             = "ok"
	AuditOutcomeUpstreamFailed = "upstream_failed"
)

// RequestAudit registro de una consulta despachada a la fuente externa.
type RequestAudit struct {
	ID            string
	Subject       string // identidad del token
	Category      Category
	Subcategory   string // vacío si no aplica
	StartYear     int
	EndYear       int
	Outcome       string // ok, upstream_failed
	RecordCount   int
	TotalQuantity decimal.Decimal
	Duration      time.Duration
	CreatedAt     time.Time
}
