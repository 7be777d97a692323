package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/suite"

	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/platform/storage"
)

type SendGridSenderTestSuite struct {
	suite.Suite
	store  *storage.AferoStore
	sender *SendGridSender
}

func (suite *SendGridSenderTestSuite) SetupTest() {
	suite.store = storage.NewMemStore()
	suite.sender = NewSendGridSender("", "noreply@nest.example", "NEST Backend", suite.store)
}

func (suite *SendGridSenderTestSuite) sampleRequest(pdfPath string) portssvc.InvoiceRequest {
	return portssvc.InvoiceRequest{
		FinanceEmail: "finance@nest.example",
		DealCode:     "NEST-00042",
		TenantName:   "Sari Dewi",
		UnitCode:     "A-101",
		Amount:       "8000000",
		Currency:     "IDR",
		PDFPath:      pdfPath,
	}
}

func (suite *SendGridSenderTestSuite) TestBuildMessage_AttachesLatestPDF() {
	pdfBytes := []byte("%PDF-1.4 invoice request")
	relPath := "documents/deal-1/LOO_CONFIRMED_v2.pdf"
	_, err := suite.store.Save(context.Background(), relPath, bytes.NewReader(pdfBytes))
	suite.Require().NoError(err)

	message := suite.sender.buildMessage(context.Background(), suite.sampleRequest(relPath))

	suite.Require().Len(message.Attachments, 1)
	attachment := message.Attachments[0]
	suite.Equal(base64.StdEncoding.EncodeToString(pdfBytes), attachment.Content)
	suite.Equal("application/pdf", attachment.Type)
	suite.Equal("LOO_CONFIRMED_v2.pdf", attachment.Filename)
	suite.Equal("attachment", attachment.Disposition)
}

func (suite *SendGridSenderTestSuite) TestBuildMessage_NoPathOmitsAttachment() {
	message := suite.sender.buildMessage(context.Background(), suite.sampleRequest(""))

	suite.Empty(message.Attachments)
	suite.Equal("Invoice request: NEST-00042", message.Subject)
}

func (suite *SendGridSenderTestSuite) TestBuildMessage_MissingFileOmitsAttachment() {
	message := suite.sender.buildMessage(context.Background(), suite.sampleRequest("documents/deal-1/missing.pdf"))

	suite.Empty(message.Attachments)
}

func (suite *SendGridSenderTestSuite) TestBuildMessage_BodyCarriesDealDetails() {
	message := suite.sender.buildMessage(context.Background(), suite.sampleRequest(""))

	suite.Require().Len(message.Content, 2)
	suite.Contains(message.Content[0].Value, "NEST-00042")
	suite.Contains(message.Content[0].Value, "Sari Dewi")
	suite.Contains(message.Content[0].Value, "8000000 IDR")
}

func (suite *SendGridSenderTestSuite) TestStubModeReportsSuccess() {
	ok := suite.sender.SendInvoiceRequest(context.Background(), suite.sampleRequest(""))

	suite.True(ok)
}

func TestSendGridSender(t *testing.T) {
	suite.Run(t, new(SendGridSenderTestSuite))
}
