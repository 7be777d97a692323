package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestapt/nest_backend/internal/apperrors"
	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	"github.com/nestapt/nest_backend/internal/models"
	"github.com/nestapt/nest_backend/internal/utils/mapping"
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new read repository for generated
// documents. Writes go through the deal repository's transactional methods.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentColumns = `document_id, deal_id, doc_type, latest_version, created_at`
const versionColumns = `version_id, document_id, version_no, html_path, pdf_path, signatory_name, signatory_title, channel, is_latest, generated_at`

func scanDocument(row pgx.Row) (*models.Document, error) {
	var m models.Document
	if err := row.Scan(&m.DocumentID, &m.DealID, &m.DocType, &m.LatestVersion, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanVersion(row pgx.Row) (*models.DocumentVersion, error) {
	var m models.DocumentVersion
	err := row.Scan(
		&m.VersionID, &m.DocumentID, &m.VersionNo, &m.HTMLPath, &m.PDFPath,
		&m.SignatoryName, &m.SignatoryTitle, &m.Channel, &m.IsLatest, &m.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxDocumentRepository) findDocument(ctx context.Context, query string, args ...any) (*domain.Document, error) {
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	doc := mapping.ToDomainDocument(*m)
	return &doc, nil
}

// FindDocumentByDealAndType retrieves the document aggregate for a
// (deal, doc type) pair.
func (r *PgxDocumentRepository) FindDocumentByDealAndType(ctx context.Context, dealID string, docType domain.DocumentType) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE deal_id = $1 AND doc_type = $2;`
	return r.findDocument(ctx, query, dealID, string(docType))
}

// FindDocumentByID retrieves a document aggregate by its identifier.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	return r.findDocument(ctx, query, documentID)
}

// FindLatestDocumentByDealID retrieves the most recently created document
// for a deal regardless of type.
func (r *PgxDocumentRepository) FindLatestDocumentByDealID(ctx context.Context, dealID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE deal_id = $1 ORDER BY created_at DESC LIMIT 1;`
	return r.findDocument(ctx, query, dealID)
}

// ListDocuments retrieves documents newest-first, optionally filtered by deal.
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, dealID *string) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents`
	args := []any{}
	if dealID != nil {
		query += ` WHERE deal_id = $1`
		args = append(args, *dealID)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var ms []models.Document
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating documents: %w", err)
	}
	return mapping.ToDomainDocuments(ms), nil
}

// FindVersionsByDocumentID retrieves all versions of a document ordered by
// descending version number.
func (r *PgxDocumentRepository) FindVersionsByDocumentID(ctx context.Context, documentID string) ([]domain.DocumentVersion, error) {
	query := `SELECT ` + versionColumns + ` FROM document_versions WHERE document_id = $1 ORDER BY version_no DESC;`

	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions of document %s: %w", documentID, err)
	}
	defer rows.Close()

	var ms []models.DocumentVersion
	for rows.Next() {
		m, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document version: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating document versions: %w", err)
	}
	return mapping.ToDomainDocumentVersions(ms), nil
}

func (r *PgxDocumentRepository) findVersion(ctx context.Context, query string, args ...any) (*domain.DocumentVersion, error) {
	m, err := scanVersion(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document version: %w", err)
	}
	version := mapping.ToDomainDocumentVersion(*m)
	return &version, nil
}

// FindVersionByID retrieves a single version scoped to its document.
func (r *PgxDocumentRepository) FindVersionByID(ctx context.Context, documentID, versionID string) (*domain.DocumentVersion, error) {
	query := `SELECT ` + versionColumns + ` FROM document_versions WHERE document_id = $1 AND version_id = $2;`
	return r.findVersion(ctx, query, documentID, versionID)
}

// FindLatestVersionByDocumentID retrieves the version flagged latest.
func (r *PgxDocumentRepository) FindLatestVersionByDocumentID(ctx context.Context, documentID string) (*domain.DocumentVersion, error) {
	query := `SELECT ` + versionColumns + ` FROM document_versions WHERE document_id = $1 AND is_latest = TRUE;`
	return r.findVersion(ctx, query, documentID)
}
