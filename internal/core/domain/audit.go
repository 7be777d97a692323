package domain

import "time"

// AuditAction classifies an audit log entry.
type AuditAction string

const (
	ActionCreateDeal        AuditAction = "CREATE_DEAL"
	ActionUpdateDeal        AuditAction = "UPDATE_DEAL"
	ActionProgressDeal      AuditAction = "PROGRESS_DEAL"
	ActionCancelDeal        AuditAction = "CANCEL_DEAL"
	ActionEmergencyOverride AuditAction = "EMERGENCY_OVERRIDE"
	ActionGenerateDocument  AuditAction = "GENERATE_DOCUMENT"
	ActionRequestInvoice    AuditAction = "REQUEST_INVOICE"
	ActionUploadInvoice     AuditAction = "UPLOAD_INVOICE"
	ActionSetDealPrice      AuditAction = "SET_DEAL_PRICE"
	ActionSetMoveInDetails  AuditAction = "SET_MOVE_IN_DETAILS"
	ActionCreateTenant      AuditAction = "CREATE_TENANT"
	ActionUpdateTenant      AuditAction = "UPDATE_TENANT"
	ActionCreateUnit        AuditAction = "CREATE_UNIT"
	ActionUpdateUnit        AuditAction = "UPDATE_UNIT"
)

// AuditLog is one append-only record of a mutating operation. Entries are
// never updated or deleted.
type AuditLog struct {
	AuditID   string            `json:"auditID"`
	DealID    *string           `json:"dealID"`
	Actor     string            `json:"actor"`
	Channel   Channel           `json:"channel"`
	Executor  string            `json:"executor"`
	Action    AuditAction       `json:"action"`
	Summary   string            `json:"summary"`
	Metadata  map[string]string `json:"metadata"`
	CreatedAt time.Time         `json:"createdAt"`
}
