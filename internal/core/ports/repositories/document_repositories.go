package repositories

import (
	"context"

	"github.com/nestapt/nest_backend/internal/core/domain"
)

// DocumentReader defines read operations for generated documents and their versions
type DocumentReader interface {
	// FindDocumentByDealAndType retrieves the document aggregate for a
	// (deal, doc type) pair, or apperrors.ErrNotFound when none exists yet.
	FindDocumentByDealAndType(ctx context.Context, dealID string, docType domain.DocumentType) (*domain.Document, error)

	// FindDocumentByID retrieves a document aggregate by its identifier.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocuments retrieves documents newest-first, optionally filtered by deal.
	ListDocuments(ctx context.Context, dealID *string) ([]domain.Document, error)

	// FindLatestDocumentByDealID retrieves the most recently created document
	// for a deal regardless of type.
	FindLatestDocumentByDealID(ctx context.Context, dealID string) (*domain.Document, error)

	// FindVersionsByDocumentID retrieves all versions of a document ordered
	// by descending version number.
	FindVersionsByDocumentID(ctx context.Context, documentID string) ([]domain.DocumentVersion, error)

	// FindVersionByID retrieves a single version scoped to its document.
	FindVersionByID(ctx context.Context, documentID, versionID string) (*domain.DocumentVersion, error)

	// FindLatestVersionByDocumentID retrieves the version flagged latest.
	FindLatestVersionByDocumentID(ctx context.Context, documentID string) (*domain.DocumentVersion, error)
}

// DocumentRepositoryFacade combines all document-related repository interfaces.
// Writes happen through the deal repository's transactional methods.
type DocumentRepositoryFacade interface {
	DocumentReader
}
