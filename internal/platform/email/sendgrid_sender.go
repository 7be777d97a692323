package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/middleware"
)

// SendGridSender delivers invoice-request emails to finance through
// SendGrid. With no API key configured it runs in stub mode: the send is
// logged and reported successful, which keeps local environments working
// without credentials.
type SendGridSender struct {
	client    *sendgrid.Client
	store     portssvc.FileStore
	fromEmail string
	fromName  string
}

// NewSendGridSender creates the sender. An empty apiKey enables stub mode.
// The store is used to attach the latest deal PDF to outgoing requests.
func NewSendGridSender(apiKey, fromEmail, fromName string, store portssvc.FileStore) *SendGridSender {
	s := &SendGridSender{store: store, fromEmail: fromEmail, fromName: fromName}
	if apiKey != "" {
		s.client = sendgrid.NewSendClient(apiKey)
	}
	return s
}

var _ portssvc.InvoiceEmailSender = (*SendGridSender)(nil)

// SendInvoiceRequest sends the invoice request to finance. Failures are
// reported through the return value only; the caller treats a failed send
// as non-fatal.
func (s *SendGridSender) SendInvoiceRequest(ctx context.Context, req portssvc.InvoiceRequest) bool {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.client == nil {
		logger.Info("Invoice request email (stub mode)",
			slog.String("to", req.FinanceEmail),
			slog.String("deal_code", req.DealCode),
			slog.String("amount", req.Amount))
		return true
	}

	message := s.buildMessage(ctx, req)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		logger.Error("Failed to send invoice request email", slog.String("error", err.Error()), slog.String("deal_code", req.DealCode))
		return false
	}
	if resp.StatusCode >= 400 {
		logger.Error("Invoice request email rejected",
			slog.Int("status_code", resp.StatusCode),
			slog.String("deal_code", req.DealCode))
		return false
	}

	logger.Info("Invoice request email sent", slog.String("to", req.FinanceEmail), slog.String("deal_code", req.DealCode))
	return true
}

// buildMessage assembles the SendGrid mail, attaching the latest document
// PDF when one is available in storage. A missing or unreadable file
// downgrades to a body-only message rather than failing the send.
func (s *SendGridSender) buildMessage(ctx context.Context, req portssvc.InvoiceRequest) *mail.SGMailV3 {
	subject := fmt.Sprintf("Invoice request: %s", req.DealCode)
	plain := fmt.Sprintf(
		"Please raise an invoice for deal %s.\n\nTenant: %s\nUnit: %s\nAmount: %s %s\n",
		req.DealCode, req.TenantName, req.UnitCode, req.Amount, req.Currency,
	)
	html := fmt.Sprintf(
		"<p>Please raise an invoice for deal <strong>%s</strong>.</p><ul><li>Tenant: %s</li><li>Unit: %s</li><li>Amount: %s %s</li></ul>",
		req.DealCode, req.TenantName, req.UnitCode, req.Amount, req.Currency,
	)
	if req.PDFPath != "" {
		plain += fmt.Sprintf("\nLatest document: %s\n", req.PDFPath)
		html += fmt.Sprintf("<p>Latest document: %s</p>", req.PDFPath)
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", req.FinanceEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	if attachment := s.loadAttachment(ctx, req.PDFPath); attachment != nil {
		message.AddAttachment(attachment)
	}
	return message
}

// loadAttachment reads the PDF at relPath and returns it base64-encoded for
// SendGrid, or nil when there is nothing to attach.
func (s *SendGridSender) loadAttachment(ctx context.Context, relPath string) *mail.Attachment {
	if relPath == "" || s.store == nil || !s.store.Exists(ctx, relPath) {
		return nil
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	f, err := s.store.Open(ctx, relPath)
	if err != nil {
		logger.Warn("Failed to open invoice PDF for attachment", slog.String("path", relPath), slog.String("error", err.Error()))
		return nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		logger.Warn("Failed to read invoice PDF for attachment", slog.String("path", relPath), slog.String("error", err.Error()))
		return nil
	}

	attachment := mail.NewAttachment()
	attachment.SetContent(base64.StdEncoding.EncodeToString(data))
	attachment.SetType("application/pdf")
	attachment.SetFilename(path.Base(relPath))
	attachment.SetDisposition("attachment")
	return attachment
}
