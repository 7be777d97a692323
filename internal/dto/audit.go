package dto

import (
	"time"

	"github.com/nestapt/nest_backend/internal/core/domain"
)

// AuditLogResponse defines the data returned for one audit entry.
type AuditLogResponse struct {
	AuditID   string             `json:"auditID"`
	DealID    *string            `json:"dealID"`
	Actor     string             `json:"actor"`
	Channel   domain.Channel     `json:"channel"`
	Executor  string             `json:"executor"`
	Action    domain.AuditAction `json:"action"`
	Summary   string             `json:"summary"`
	Metadata  map[string]string  `json:"metadata,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ToAuditLogResponses converts domain audit entries to DTOs.
func ToAuditLogResponses(entries []domain.AuditLog) []AuditLogResponse {
	responses := make([]AuditLogResponse, len(entries))
	for i, e := range entries {
		responses[i] = AuditLogResponse{
			AuditID:   e.AuditID,
			DealID:    e.DealID,
			Actor:     e.Actor,
			Channel:   e.Channel,
			Executor:  e.Executor,
			Action:    e.Action,
			Summary:   e.Summary,
			Metadata:  e.Metadata,
			CreatedAt: e.CreatedAt,
		}
	}
	return responses
}
