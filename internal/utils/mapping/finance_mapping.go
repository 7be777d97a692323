package mapping

import (
	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/models"
)

// ToModelFinanceAttachment converts a domain FinanceAttachment to its model
func ToModelFinanceAttachment(d domain.FinanceAttachment) models.FinanceAttachment {
	return models.FinanceAttachment{
		AttachmentID:   d.AttachmentID,
		DealID:         d.DealID,
		AttachmentType: string(d.AttachmentType),
		FileName:       d.FileName,
		FilePath:       d.FilePath,
		Channel:        string(d.Channel),
		UploadedAt:     d.UploadedAt,
	}
}

// ToDomainFinanceAttachment converts a model FinanceAttachment to domain form
func ToDomainFinanceAttachment(m models.FinanceAttachment) domain.FinanceAttachment {
	return domain.FinanceAttachment{
		AttachmentID:   m.AttachmentID,
		DealID:         m.DealID,
		AttachmentType: domain.FinanceAttachmentType(m.AttachmentType),
		FileName:       m.FileName,
		FilePath:       m.FilePath,
		Channel:        domain.Channel(m.Channel),
		UploadedAt:     m.UploadedAt,
	}
}

// ToDomainFinanceAttachments converts a slice of model attachments to domain form
func ToDomainFinanceAttachments(ms []models.FinanceAttachment) []domain.FinanceAttachment {
	attachments := make([]domain.FinanceAttachment, len(ms))
	for i, m := range ms {
		attachments[i] = ToDomainFinanceAttachment(m)
	}
	return attachments
}
