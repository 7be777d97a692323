package models

import "time"

// FinanceAttachment represents a row of the finance_attachments table.
type FinanceAttachment struct {
	AttachmentID   string    `db:"attachment_id"`
	DealID         string    `db:"deal_id"`
	AttachmentType string    `db:"attachment_type"`
	FileName       string    `db:"file_name"`
	FilePath       string    `db:"file_path"`
	Channel        string    `db:"channel"`
	UploadedAt     time.Time `db:"uploaded_at"`
}
