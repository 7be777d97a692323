package services

import (
	"context"
	"fmt"

	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// auditService reads the append-only audit trail.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepositoryFacade
}

// NewAuditService creates a new audit read service.
func NewAuditService(auditRepo portsrepo.AuditLogRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// ListAuditLogs returns audit entries newest-first with the limit clamped
// to a sane window.
func (s *auditService) ListAuditLogs(ctx context.Context, dealID *string, action *domain.AuditAction, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	entries, err := s.auditRepo.ListAuditLogs(ctx, dealID, action, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return entries, nil
}
