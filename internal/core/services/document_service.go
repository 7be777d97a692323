package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
)

// documentService serves generated documents and their stored artifacts.
// Generation itself lives in the deal lifecycle; this is the read side.
type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	financeRepo  portsrepo.FinanceAttachmentRepositoryFacade
	store        portssvc.FileStore
}

// NewDocumentService creates a new document read service.
func NewDocumentService(
	documentRepo portsrepo.DocumentRepositoryFacade,
	financeRepo portsrepo.FinanceAttachmentRepositoryFacade,
	store portssvc.FileStore,
) portssvc.DocumentSvcFacade {
	return &documentService{documentRepo: documentRepo, financeRepo: financeRepo, store: store}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// ListDocuments returns documents newest-first, optionally filtered by deal,
// without their version lists.
func (s *documentService) ListDocuments(ctx context.Context, dealID *string) ([]dto.DocumentResponse, error) {
	docs, err := s.documentRepo.ListDocuments(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	responses := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = dto.ToDocumentResponse(&docs[i], nil)
	}
	return responses, nil
}

// GetDocumentByID returns one document including its full version history.
func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (*dto.DocumentResponse, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}
	versions, err := s.documentRepo.FindVersionsByDocumentID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load versions of document %s: %w", documentID, err)
	}
	resp := dto.ToDocumentResponse(doc, versions)
	return &resp, nil
}

// OpenVersionFile streams the HTML or PDF artifact of a version. The second
// return value is a download file name derived from the stored path.
func (s *documentService) OpenVersionFile(ctx context.Context, documentID, versionID string, pdf bool) (io.ReadCloser, string, error) {
	version, err := s.documentRepo.FindVersionByID(ctx, documentID, versionID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find version %s of document %s: %w", versionID, documentID, err)
	}
	return s.openArtifact(ctx, version, pdf)
}

// OpenLatestPDF streams the latest version's PDF.
func (s *documentService) OpenLatestPDF(ctx context.Context, documentID string) (io.ReadCloser, string, error) {
	version, err := s.documentRepo.FindLatestVersionByDocumentID(ctx, documentID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find latest version of document %s: %w", documentID, err)
	}
	return s.openArtifact(ctx, version, true)
}

func (s *documentService) openArtifact(ctx context.Context, version *domain.DocumentVersion, pdf bool) (io.ReadCloser, string, error) {
	relPath := version.HTMLPath
	if pdf {
		relPath = version.PDFPath
	}
	r, err := s.store.Open(ctx, relPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open stored file %s: %w", relPath, err)
	}
	return r, path.Base(relPath), nil
}

// ListAttachments returns a deal's finance attachments newest-first.
func (s *documentService) ListAttachments(ctx context.Context, dealID string) ([]domain.FinanceAttachment, error) {
	attachments, err := s.financeRepo.ListAttachmentsByDealID(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments for deal %s: %w", dealID, err)
	}
	return attachments, nil
}
