package mapping

import (
	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/models"
)

// ToModelAuditLog converts a domain AuditLog to a model AuditLog
func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		AuditID:   d.AuditID,
		DealID:    d.DealID,
		Actor:     d.Actor,
		Channel:   string(d.Channel),
		Executor:  d.Executor,
		Action:    string(d.Action),
		Summary:   d.Summary,
		Metadata:  d.Metadata,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLog
func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		AuditID:   m.AuditID,
		DealID:    m.DealID,
		Actor:     m.Actor,
		Channel:   domain.Channel(m.Channel),
		Executor:  m.Executor,
		Action:    domain.AuditAction(m.Action),
		Summary:   m.Summary,
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainAuditLogs converts a slice of model AuditLogs to domain form
func ToDomainAuditLogs(ms []models.AuditLog) []domain.AuditLog {
	entries := make([]domain.AuditLog, len(ms))
	for i, m := range ms {
		entries[i] = ToDomainAuditLog(m)
	}
	return entries
}
