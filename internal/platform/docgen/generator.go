package docgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/nestapt/nest_backend/internal/apperrors"
	"github.com/nestapt/nest_backend/internal/core/domain"
	portsrepo "github.com/nestapt/nest_backend/internal/core/ports/repositories"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
)

// Config carries the company identity fallbacks used when no settings row
// has been stored.
type Config struct {
	CompanyLegalName string
	CompanyAddress   string
	SignatoryName    string
	SignatoryTitle   string
}

// Generator renders deal documents to HTML and stores the artifacts. Version
// bookkeeping (document aggregate + version row) is prepared here and
// persisted by the caller so rendering commits atomically with the journey
// advance.
//
// There is no PDF engine in the stack; the PDF artifact carries the rendered
// HTML bytes so downloads always have something to serve.
type Generator struct {
	documentRepo portsrepo.DocumentRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	store        portssvc.FileStore
	cfg          Config
	tmpl         *template.Template
}

// NewGenerator creates a document generator.
func NewGenerator(
	documentRepo portsrepo.DocumentRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	store portssvc.FileStore,
	cfg Config,
) (*Generator, error) {
	if cfg.CompanyLegalName == "" {
		cfg.CompanyLegalName = "NEST Serviced Apartment"
	}
	tmpl, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document template: %w", err)
	}
	return &Generator{
		documentRepo: documentRepo,
		settingsRepo: settingsRepo,
		store:        store,
		cfg:          cfg,
		tmpl:         tmpl,
	}, nil
}

var _ portssvc.DocumentGenerator = (*Generator)(nil)

type templateContext struct {
	Title          string
	DocTypeLabel   string
	VersionNo      int
	GeneratedAt    string
	CompanyName    string
	CompanyAddress string
	SignatoryName  string
	SignatoryTitle string
	DealCode       string
	TermLabel      string
	StartDate      string
	EndDate        string
	Price          string
	Currency       string
	MoveInDate     string
	MoveInNotes    string
	TenantName     string
	TenantPhone    string
	TenantEmail    string
	TenantCompany  string
	UnitCode       string
	UnitType       string
}

// Generate renders the document of the given type for the deal and writes
// its HTML and PDF artifacts to storage. The returned aggregate carries the
// incremented latest version; the returned version is flagged latest.
func (g *Generator) Generate(ctx context.Context, deal *domain.Deal, docType domain.DocumentType, channel domain.Channel) (*domain.Document, *domain.DocumentVersion, error) {
	settings := g.resolveSettings(ctx)

	doc, err := g.documentRepo.FindDocumentByDealAndType(ctx, deal.DealID, docType)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("failed to load document aggregate: %w", err)
		}
		doc = &domain.Document{
			DocumentID:    uuid.NewString(),
			DealID:        deal.DealID,
			DocType:       docType,
			LatestVersion: 0,
			CreatedAt:     time.Now().UTC(),
		}
	}

	versionNo := doc.LatestVersion + 1
	html, err := g.render(deal, docType, versionNo, settings)
	if err != nil {
		return nil, nil, err
	}

	dealDir := path.Join("documents", deal.DealID)
	htmlRel := path.Join(dealDir, fmt.Sprintf("%s_v%d.html", docType, versionNo))
	pdfRel := path.Join(dealDir, fmt.Sprintf("%s_v%d.pdf", docType, versionNo))

	if _, err := g.store.Save(ctx, htmlRel, bytes.NewReader(html)); err != nil {
		return nil, nil, fmt.Errorf("failed to store %s: %w", htmlRel, err)
	}
	if _, err := g.store.Save(ctx, pdfRel, bytes.NewReader(html)); err != nil {
		return nil, nil, fmt.Errorf("failed to store %s: %w", pdfRel, err)
	}

	doc.LatestVersion = versionNo
	version := &domain.DocumentVersion{
		VersionID:   uuid.NewString(),
		DocumentID:  doc.DocumentID,
		VersionNo:   versionNo,
		HTMLPath:    htmlRel,
		PDFPath:     pdfRel,
		Channel:     channel,
		IsLatest:    true,
		GeneratedAt: time.Now().UTC(),
	}
	if settings.SignatoryName != "" {
		name := settings.SignatoryName
		version.SignatoryName = &name
	}
	if settings.SignatoryTitle != "" {
		title := settings.SignatoryTitle
		version.SignatoryTitle = &title
	}
	return doc, version, nil
}

// resolveSettings reads the settings row, falling back to config values.
func (g *Generator) resolveSettings(ctx context.Context) domain.AppSettings {
	settings, err := g.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.AppSettings{
			CompanyLegalName: g.cfg.CompanyLegalName,
			CompanyAddress:   g.cfg.CompanyAddress,
			SignatoryName:    g.cfg.SignatoryName,
			SignatoryTitle:   g.cfg.SignatoryTitle,
		}
	}
	if settings.CompanyLegalName == "" {
		settings.CompanyLegalName = g.cfg.CompanyLegalName
	}
	return *settings
}

func (g *Generator) render(deal *domain.Deal, docType domain.DocumentType, versionNo int, settings domain.AppSettings) ([]byte, error) {
	label := domain.DocumentTypeLabels[docType]
	cctx := templateContext{
		Title:          fmt.Sprintf("%s — %s", label, deal.DealCode),
		DocTypeLabel:   label,
		VersionNo:      versionNo,
		GeneratedAt:    time.Now().UTC().Format("January 2, 2006"),
		CompanyName:    settings.CompanyLegalName,
		CompanyAddress: settings.CompanyAddress,
		SignatoryName:  settings.SignatoryName,
		SignatoryTitle: settings.SignatoryTitle,
		DealCode:       deal.DealCode,
		TermLabel:      domain.TermTypeLabels[deal.TermType],
		StartDate:      deal.StartDate.Format("2006-01-02"),
		Price:          deal.EffectivePrice().StringFixed(0),
		Currency:       deal.Currency,
	}
	if deal.EndDate != nil {
		cctx.EndDate = deal.EndDate.Format("2006-01-02")
	}
	if deal.MoveInDate != nil {
		cctx.MoveInDate = deal.MoveInDate.Format("2006-01-02")
	}
	if deal.MoveInNotes != nil {
		cctx.MoveInNotes = *deal.MoveInNotes
	}
	if deal.Tenant != nil {
		cctx.TenantName = deal.Tenant.FullName
		cctx.TenantPhone = deal.Tenant.Phone
		cctx.TenantEmail = deal.Tenant.Email
		if deal.Tenant.CompanyName != nil {
			cctx.TenantCompany = *deal.Tenant.CompanyName
		}
	}
	if deal.Unit != nil {
		cctx.UnitCode = deal.Unit.UnitCode
		cctx.UnitType = deal.Unit.UnitType
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, cctx); err != nil {
		return nil, fmt.Errorf("failed to render %s for deal %s: %w", docType, deal.DealID, err)
	}
	return buf.Bytes(), nil
}
