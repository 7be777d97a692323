package services

import (
	"context"
	"io"

	"github.com/nestapt/nest_backend/internal/core/domain"
)

// DocumentGenerator renders a document for a deal and writes its HTML/PDF
// artifacts to storage. It returns the (possibly new) document aggregate and
// the freshly rendered version; persisting the rows is the caller's job so
// the generation can commit atomically with the step advance.
// It never mutates the deal.
type DocumentGenerator interface {
	Generate(ctx context.Context, deal *domain.Deal, docType domain.DocumentType, channel domain.Channel) (*domain.Document, *domain.DocumentVersion, error)
}

// InvoiceRequest carries everything the finance team needs to raise an invoice.
type InvoiceRequest struct {
	FinanceEmail string
	DealCode     string
	TenantName   string
	UnitCode     string
	Amount       string
	Currency     string
	PDFPath      string // Storage-relative path of the latest document PDF, "" when none
}

// InvoiceEmailSender delivers the invoice request to finance. Failure is
// communicated through the return value only; a send failure must never
// abort the state transition that triggered it.
type InvoiceEmailSender interface {
	SendInvoiceRequest(ctx context.Context, req InvoiceRequest) bool
}

// FileStore persists and retrieves file artifacts by storage-relative path.
type FileStore interface {
	// Save writes the stream and returns the relative path handle.
	Save(ctx context.Context, relPath string, r io.Reader) (string, error)

	// Open retrieves a previously saved file by its relative path.
	Open(ctx context.Context, relPath string) (io.ReadCloser, error)

	// Exists reports whether a file is present at the relative path.
	Exists(ctx context.Context, relPath string) bool
}
