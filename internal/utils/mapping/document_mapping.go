package mapping

import (
	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:    d.DocumentID,
		DealID:        d.DealID,
		DocType:       string(d.DocType),
		LatestVersion: d.LatestVersion,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:    m.DocumentID,
		DealID:        m.DealID,
		DocType:       domain.DocumentType(m.DocType),
		LatestVersion: m.LatestVersion,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainDocuments converts a slice of model Documents to domain Documents
func ToDomainDocuments(ms []models.Document) []domain.Document {
	docs := make([]domain.Document, len(ms))
	for i, m := range ms {
		docs[i] = ToDomainDocument(m)
	}
	return docs
}

// ToModelDocumentVersion converts a domain DocumentVersion to its model
func ToModelDocumentVersion(d domain.DocumentVersion) models.DocumentVersion {
	return models.DocumentVersion{
		VersionID:      d.VersionID,
		DocumentID:     d.DocumentID,
		VersionNo:      d.VersionNo,
		HTMLPath:       d.HTMLPath,
		PDFPath:        d.PDFPath,
		SignatoryName:  d.SignatoryName,
		SignatoryTitle: d.SignatoryTitle,
		Channel:        string(d.Channel),
		IsLatest:       d.IsLatest,
		GeneratedAt:    d.GeneratedAt,
	}
}

// ToDomainDocumentVersion converts a model DocumentVersion to its domain form
func ToDomainDocumentVersion(m models.DocumentVersion) domain.DocumentVersion {
	return domain.DocumentVersion{
		VersionID:      m.VersionID,
		DocumentID:     m.DocumentID,
		VersionNo:      m.VersionNo,
		HTMLPath:       m.HTMLPath,
		PDFPath:        m.PDFPath,
		SignatoryName:  m.SignatoryName,
		SignatoryTitle: m.SignatoryTitle,
		Channel:        domain.Channel(m.Channel),
		IsLatest:       m.IsLatest,
		GeneratedAt:    m.GeneratedAt,
	}
}

// ToDomainDocumentVersions converts a slice of model versions to domain form
func ToDomainDocumentVersions(ms []models.DocumentVersion) []domain.DocumentVersion {
	versions := make([]domain.DocumentVersion, len(ms))
	for i, m := range ms {
		versions[i] = ToDomainDocumentVersion(m)
	}
	return versions
}
