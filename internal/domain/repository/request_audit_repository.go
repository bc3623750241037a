package repository

import (
	"context"

	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

// RequestAuditRepository define el puerto de persistencia para la auditoría de consultas (DIP).
type RequestAuditRepository interface {
	Create(ctx context.Context, audit *entity.RequestAudit) error
}
