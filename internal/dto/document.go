package dto

import (
	"time"

	"github.com/nestapt/nest_backend/internal/core/domain"
)

// DocumentVersionResponse defines the data returned for a document version.
type DocumentVersionResponse struct {
	VersionID      string         `json:"versionID"`
	VersionNo      int            `json:"versionNo"`
	SignatoryName  *string        `json:"signatoryName"`
	SignatoryTitle *string        `json:"signatoryTitle"`
	Channel        domain.Channel `json:"channel"`
	IsLatest       bool           `json:"isLatest"`
	GeneratedAt    time.Time      `json:"generatedAt"`
}

// DocumentResponse defines the data returned for a document and its versions.
type DocumentResponse struct {
	DocumentID    string                    `json:"documentID"`
	DealID        string                    `json:"dealID"`
	DocType       domain.DocumentType       `json:"docType"`
	DocTypeLabel  string                    `json:"docTypeLabel"`
	LatestVersion int                       `json:"latestVersion"`
	CreatedAt     time.Time                 `json:"createdAt"`
	Versions      []DocumentVersionResponse `json:"versions,omitempty"`
}

// ToDocumentVersionResponse converts a domain.DocumentVersion to its DTO.
func ToDocumentVersionResponse(v *domain.DocumentVersion) DocumentVersionResponse {
	return DocumentVersionResponse{
		VersionID:      v.VersionID,
		VersionNo:      v.VersionNo,
		SignatoryName:  v.SignatoryName,
		SignatoryTitle: v.SignatoryTitle,
		Channel:        v.Channel,
		IsLatest:       v.IsLatest,
		GeneratedAt:    v.GeneratedAt,
	}
}

// ToDocumentResponse converts a domain.Document and its versions to a DTO.
func ToDocumentResponse(d *domain.Document, versions []domain.DocumentVersion) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:    d.DocumentID,
		DealID:        d.DealID,
		DocType:       d.DocType,
		DocTypeLabel:  domain.DocumentTypeLabels[d.DocType],
		LatestVersion: d.LatestVersion,
		CreatedAt:     d.CreatedAt,
	}
	for i := range versions {
		resp.Versions = append(resp.Versions, ToDocumentVersionResponse(&versions[i]))
	}
	return resp
}

// FinanceAttachmentResponse defines the data returned for a finance attachment.
type FinanceAttachmentResponse struct {
	AttachmentID   string                       `json:"attachmentID"`
	DealID         string                       `json:"dealID"`
	AttachmentType domain.FinanceAttachmentType `json:"attachmentType"`
	FileName       string                       `json:"fileName"`
	Channel        domain.Channel               `json:"channel"`
	UploadedAt     time.Time                    `json:"uploadedAt"`
}

// ToFinanceAttachmentResponses converts domain attachments to DTOs.
func ToFinanceAttachmentResponses(attachments []domain.FinanceAttachment) []FinanceAttachmentResponse {
	responses := make([]FinanceAttachmentResponse, len(attachments))
	for i, a := range attachments {
		responses[i] = FinanceAttachmentResponse{
			AttachmentID:   a.AttachmentID,
			DealID:         a.DealID,
			AttachmentType: a.AttachmentType,
			FileName:       a.FileName,
			Channel:        a.Channel,
			UploadedAt:     a.UploadedAt,
		}
	}
	return responses
}
