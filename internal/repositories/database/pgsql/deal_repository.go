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

type PgxDealRepository struct {
	BaseRepository
	unitRepo portsrepo.UnitStatusUpdater
}

// newPgxDealRepository creates a new repository for deal data. It takes the
// unit repository so unit occupancy can change inside the same transaction
// as the deal mutation that drives it.
func newPgxDealRepository(pool *pgxpool.Pool, unitRepo portsrepo.UnitStatusUpdater) portsrepo.DealRepositoryWithTx {
	return &PgxDealRepository{BaseRepository: BaseRepository{Pool: pool}, unitRepo: unitRepo}
}

var _ portsrepo.DealRepositoryWithTx = (*PgxDealRepository)(nil)

const dealColumns = `d.deal_id, d.deal_code, d.tenant_id, d.unit_id, d.term_type, d.start_date, d.end_date,
	d.initial_price, d.deal_price, d.currency, d.status, d.current_step, d.blocked_reason,
	d.invoice_requested_at, d.cancelled_at, d.cancellation_reason, d.move_in_date, d.move_in_notes,
	d.created_at, d.updated_at`

const dealJoinedQuery = `
	SELECT ` + dealColumns + `,
		t.tenant_id, t.full_name, t.phone, t.email, t.company_name, t.notes, t.is_archived, t.created_at, t.updated_at,
		u.unit_id, u.unit_code, u.unit_type, u.status, u.notes, u.daily_price, u.monthly_price, u.six_month_price, u.twelve_month_price, u.currency, u.created_at, u.updated_at
	FROM deals d
	JOIN tenants t ON t.tenant_id = d.tenant_id
	JOIN units u ON u.unit_id = d.unit_id
`

func scanJoinedDeal(row pgx.Row) (*domain.Deal, error) {
	var md models.Deal
	var mt models.Tenant
	var mu models.Unit
	err := row.Scan(
		&md.DealID, &md.DealCode, &md.TenantID, &md.UnitID, &md.TermType, &md.StartDate, &md.EndDate,
		&md.InitialPrice, &md.DealPrice, &md.Currency, &md.Status, &md.CurrentStep, &md.BlockedReason,
		&md.InvoiceRequestedAt, &md.CancelledAt, &md.CancellationReason, &md.MoveInDate, &md.MoveInNotes,
		&md.CreatedAt, &md.UpdatedAt,
		&mt.TenantID, &mt.FullName, &mt.Phone, &mt.Email, &mt.CompanyName, &mt.Notes, &mt.IsArchived, &mt.CreatedAt, &mt.UpdatedAt,
		&mu.UnitID, &mu.UnitCode, &mu.UnitType, &mu.Status, &mu.Notes, &mu.DailyPrice, &mu.MonthlyPrice, &mu.SixMonthPrice, &mu.TwelveMonthPrice, &mu.Currency, &mu.CreatedAt, &mu.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	deal := mapping.ToDomainDeal(md)
	tenant := mapping.ToDomainTenant(mt)
	unit := mapping.ToDomainUnit(mu)
	deal.Tenant = &tenant
	deal.Unit = &unit
	return &deal, nil
}

// NextDealCode reserves the next value of the deal code sequence and formats
// it as a human-facing code. The sequence makes codes gapless-enough and
// race-free, unlike deriving them from a row count.
func (r *PgxDealRepository) NextDealCode(ctx context.Context) (string, error) {
	var seq int64
	if err := r.Pool.QueryRow(ctx, `SELECT nextval('deal_code_seq');`).Scan(&seq); err != nil {
		return "", fmt.Errorf("failed to fetch next deal code: %w", err)
	}
	return fmt.Sprintf("NEST-%05d", seq), nil
}

// FindDealByID retrieves a deal with its tenant and unit joined.
func (r *PgxDealRepository) FindDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	query := dealJoinedQuery + ` WHERE d.deal_id = $1;`
	deal, err := scanJoinedDeal(r.Pool.QueryRow(ctx, query, dealID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: deal %s", apperrors.ErrNotFound, dealID)
		}
		return nil, fmt.Errorf("failed to find deal %s: %w", dealID, err)
	}
	return deal, nil
}

// ListDeals retrieves deals newest-first with tenant and unit joined,
// optionally filtered by status.
func (r *PgxDealRepository) ListDeals(ctx context.Context, status *domain.DealStatus) ([]domain.Deal, error) {
	query := dealJoinedQuery
	args := []any{}
	if status != nil {
		query += ` WHERE d.status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY d.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	var deals []domain.Deal
	for rows.Next() {
		deal, err := scanJoinedDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, *deal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating deals: %w", err)
	}
	return deals, nil
}

// CountDealsByStatus returns the number of deals in any of the given statuses.
func (r *PgxDealRepository) CountDealsByStatus(ctx context.Context, statuses ...domain.DealStatus) (int, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM deals WHERE status = ANY($1);`, values).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count deals by status: %w", err)
	}
	return count, nil
}

// CountBlockedDeals returns the number of non-cancelled deals carrying a
// blocked reason.
func (r *PgxDealRepository) CountBlockedDeals(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM deals WHERE blocked_reason IS NOT NULL AND status <> 'CANCELLED';`
	if err := r.Pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count blocked deals: %w", err)
	}
	return count, nil
}

const insertDealQuery = `
	INSERT INTO deals (
		deal_id, deal_code, tenant_id, unit_id, term_type, start_date, end_date,
		initial_price, deal_price, currency, status, current_step, blocked_reason,
		invoice_requested_at, cancelled_at, cancellation_reason, move_in_date, move_in_notes,
		created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
`

const updateDealQuery = `
	UPDATE deals
	SET start_date = $2, end_date = $3, deal_price = $4, status = $5, current_step = $6,
	    blocked_reason = $7, invoice_requested_at = $8, cancelled_at = $9, cancellation_reason = $10,
	    move_in_date = $11, move_in_notes = $12, updated_at = $13
	WHERE deal_id = $1;
`

func updateDealInTx(ctx context.Context, tx pgx.Tx, m models.Deal) error {
	tag, err := tx.Exec(ctx, updateDealQuery,
		m.DealID, m.StartDate, m.EndDate, m.DealPrice, m.Status, m.CurrentStep,
		m.BlockedReason, m.InvoiceRequestedAt, m.CancelledAt, m.CancellationReason,
		m.MoveInDate, m.MoveInNotes, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update deal %s: %w", m.DealID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: deal %s", apperrors.ErrNotFound, m.DealID)
	}
	return nil
}

// CreateDeal inserts the deal, reserves its unit and writes the audit
// entries in one transaction.
func (r *PgxDealRepository) CreateDeal(ctx context.Context, deal domain.Deal, audits []domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDeal(deal)
	_, err = tx.Exec(ctx, insertDealQuery,
		m.DealID, m.DealCode, m.TenantID, m.UnitID, m.TermType, m.StartDate, m.EndDate,
		m.InitialPrice, m.DealPrice, m.Currency, m.Status, m.CurrentStep, m.BlockedReason,
		m.InvoiceRequestedAt, m.CancelledAt, m.CancellationReason, m.MoveInDate, m.MoveInNotes,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert deal %s: %w", m.DealID, err)
	}

	if err := r.unitRepo.UpdateUnitStatusInTx(ctx, tx, deal.UnitID, domain.UnitReserved); err != nil {
		return err
	}

	if err := insertAuditLogsInTx(ctx, tx, audits); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateDeal persists the deal row and writes the audit entries in one
// transaction.
func (r *PgxDealRepository) UpdateDeal(ctx context.Context, deal domain.Deal, audits []domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := updateDealInTx(ctx, tx, mapping.ToModelDeal(deal)); err != nil {
		return err
	}
	if err := insertAuditLogsInTx(ctx, tx, audits); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateDealAndUnit persists the deal row, moves its unit to the given
// status and writes the audit entries in one transaction.
func (r *PgxDealRepository) UpdateDealAndUnit(ctx context.Context, deal domain.Deal, unit domain.Unit, audits []domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := updateDealInTx(ctx, tx, mapping.ToModelDeal(deal)); err != nil {
		return err
	}
	if err := r.unitRepo.UpdateUnitStatusInTx(ctx, tx, unit.UnitID, unit.Status); err != nil {
		return err
	}
	if err := insertAuditLogsInTx(ctx, tx, audits); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveGeneratedDocument upserts the document aggregate, demotes prior
// versions, inserts the new version, persists the advanced deal and writes
// the audit entries, all in one transaction.
func (r *PgxDealRepository) SaveGeneratedDocument(ctx context.Context, deal domain.Deal, doc domain.Document, version domain.DocumentVersion, audits []domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	md := mapping.ToModelDocument(doc)
	upsertDoc := `
		INSERT INTO documents (document_id, deal_id, doc_type, latest_version, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (deal_id, doc_type)
		DO UPDATE SET latest_version = EXCLUDED.latest_version;
	`
	if _, err := tx.Exec(ctx, upsertDoc, md.DocumentID, md.DealID, md.DocType, md.LatestVersion, md.CreatedAt); err != nil {
		return fmt.Errorf("failed to upsert document %s: %w", md.DocumentID, err)
	}

	mv := mapping.ToModelDocumentVersion(version)
	if _, err := tx.Exec(ctx, `UPDATE document_versions SET is_latest = FALSE WHERE document_id = $1;`, mv.DocumentID); err != nil {
		return fmt.Errorf("failed to demote versions of document %s: %w", mv.DocumentID, err)
	}

	insertVersion := `
		INSERT INTO document_versions (version_id, document_id, version_no, html_path, pdf_path, signatory_name, signatory_title, channel, is_latest, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	if _, err := tx.Exec(ctx, insertVersion,
		mv.VersionID, mv.DocumentID, mv.VersionNo, mv.HTMLPath, mv.PDFPath,
		mv.SignatoryName, mv.SignatoryTitle, mv.Channel, mv.IsLatest, mv.GeneratedAt,
	); err != nil {
		return fmt.Errorf("failed to insert version %d of document %s: %w", mv.VersionNo, mv.DocumentID, err)
	}

	if err := updateDealInTx(ctx, tx, mapping.ToModelDeal(deal)); err != nil {
		return err
	}
	if err := insertAuditLogsInTx(ctx, tx, audits); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveInvoiceAttachment inserts the finance attachment, persists the
// advanced deal and writes the audit entries in one transaction.
func (r *PgxDealRepository) SaveInvoiceAttachment(ctx context.Context, deal domain.Deal, attachment domain.FinanceAttachment, audits []domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	ma := mapping.ToModelFinanceAttachment(attachment)
	insertAttachment := `
		INSERT INTO finance_attachments (attachment_id, deal_id, attachment_type, file_name, file_path, channel, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := tx.Exec(ctx, insertAttachment,
		ma.AttachmentID, ma.DealID, ma.AttachmentType, ma.FileName, ma.FilePath, ma.Channel, ma.UploadedAt,
	); err != nil {
		return fmt.Errorf("failed to insert attachment %s: %w", ma.AttachmentID, err)
	}

	if err := updateDealInTx(ctx, tx, mapping.ToModelDeal(deal)); err != nil {
		return err
	}
	if err := insertAuditLogsInTx(ctx, tx, audits); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
