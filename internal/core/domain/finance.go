package domain

import "time"

// FinanceAttachmentType classifies uploaded finance files.
type FinanceAttachmentType string

const (
	AttachmentInvoice FinanceAttachmentType = "INVOICE"
	AttachmentReceipt FinanceAttachmentType = "RECEIPT"
)

// FinanceAttachment is an uploaded invoice/receipt file tied to a deal.
// Attachments are append-only per deal.
type FinanceAttachment struct {
	AttachmentID   string                `json:"attachmentID"`
	DealID         string                `json:"dealID"`
	AttachmentType FinanceAttachmentType `json:"attachmentType"`
	FileName       string                `json:"fileName"`
	FilePath       string                `json:"filePath"` // Relative to the storage root
	Channel        Channel               `json:"channel"`
	UploadedAt     time.Time             `json:"uploadedAt"`
}
