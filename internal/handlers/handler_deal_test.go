package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nestapt/nest_backend/internal/apperrors"
	"github.com/nestapt/nest_backend/internal/core/domain"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
	"github.com/nestapt/nest_backend/internal/handlers"
	"github.com/nestapt/nest_backend/internal/middleware"
)

// --- Mock DealService ---
type MockDealService struct {
	mock.Mock
}

func (m *MockDealService) GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) ListDeals(ctx context.Context, status *domain.DealStatus) ([]domain.Deal, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

func (m *MockDealService) GetJourney(ctx context.Context, dealID string) (*dto.JourneyResponse, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.JourneyResponse), args.Error(1)
}

func (m *MockDealService) CreateDeal(ctx context.Context, req dto.CreateDealRequest, channel domain.Channel) (*domain.Deal, error) {
	args := m.Called(ctx, req, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) UpdateDeal(ctx context.Context, dealID string, req dto.UpdateDealRequest, channel domain.Channel) (*domain.Deal, error) {
	args := m.Called(ctx, dealID, req, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) SetDealPrice(ctx context.Context, dealID string, req dto.SetDealPriceRequest, channel domain.Channel) (*domain.Deal, error) {
	args := m.Called(ctx, dealID, req, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) SetMoveInDetails(ctx context.Context, dealID string, req dto.SetMoveInRequest, channel domain.Channel) (*domain.Deal, error) {
	args := m.Called(ctx, dealID, req, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) GenerateDocument(ctx context.Context, dealID string, channel domain.Channel) (*domain.Deal, error) {
	args := m.Called(ctx, dealID, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) RequestInvoice(ctx context.Context, dealID string, channel domain.Channel) (*domain.Deal, error) {
	args := m.Called(ctx, dealID, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) UploadInvoice(ctx context.Context, dealID string, fileName string, file io.Reader, channel domain.Channel) (*domain.Deal, error) {
	args := m.Called(ctx, dealID, fileName, file, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) CloseDeal(ctx context.Context, dealID string, channel domain.Channel) (*domain.Deal, error) {
	args := m.Called(ctx, dealID, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) CancelDeal(ctx context.Context, dealID string, req dto.CancelDealRequest, channel domain.Channel) (*domain.Deal, error) {
	args := m.Called(ctx, dealID, req, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) EmergencyOverride(ctx context.Context, dealID string, req dto.OverrideDealRequest, channel domain.Channel) (*domain.Deal, error) {
	args := m.Called(ctx, dealID, req, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DealSvcFacade = (*MockDealService)(nil)

// --- Test Suite ---
type DealHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockDealService *MockDealService
	jwtSecret       string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *DealHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "nest-test",
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DealHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("termtype", func(fl validator.FieldLevel) bool {
			return domain.TermType(fl.Field().String()).IsValid()
		})
	}
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockDealService = new(MockDealService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDealRoutes(v1, suite.mockDealService)
}

func (suite *DealHandlerTestSuite) doRequest(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DealHandlerTestSuite) sampleDeal() *domain.Deal {
	return &domain.Deal{
		DealID:       uuid.NewString(),
		DealCode:     "NEST-00007",
		TenantID:     uuid.NewString(),
		UnitID:       uuid.NewString(),
		TermType:     domain.TermMonthly,
		StartDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		InitialPrice: decimal.NewFromInt(8000000),
		Currency:     "IDR",
		Status:       domain.DealInProgress,
		CurrentStep:  domain.StepGenerateLOODraft,
	}
}

// --- Test Cases ---

func (suite *DealHandlerTestSuite) TestCreateDeal_Success() {
	deal := suite.sampleDeal()
	suite.mockDealService.On("CreateDeal", mock.Anything, mock.AnythingOfType("dto.CreateDealRequest"), domain.ChannelWeb).
		Return(deal, nil)

	body := fmt.Sprintf(`{"tenantID":%q,"unitID":%q,"termType":"MONTHLY","startDate":"2026-09-01T00:00:00Z"}`,
		deal.TenantID, deal.UnitID)
	w := suite.doRequest(http.MethodPost, "/api/v1/deals/", bytes.NewBufferString(body), "application/json")

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DealResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(deal.DealID, resp.DealID)
	suite.Equal("NEST-00007", resp.DealCode)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestCreateDeal_ChannelFromQuery() {
	deal := suite.sampleDeal()
	suite.mockDealService.On("CreateDeal", mock.Anything, mock.AnythingOfType("dto.CreateDealRequest"), domain.ChannelWhatsApp).
		Return(deal, nil)

	body := fmt.Sprintf(`{"tenantID":%q,"unitID":%q,"termType":"MONTHLY","startDate":"2026-09-01T00:00:00Z"}`,
		deal.TenantID, deal.UnitID)
	w := suite.doRequest(http.MethodPost, "/api/v1/deals/?channel=WHATSAPP", bytes.NewBufferString(body), "application/json")

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestCreateDeal_InvalidBody() {
	w := suite.doRequest(http.MethodPost, "/api/v1/deals/", bytes.NewBufferString(`{"termType":"MONTHLY"}`), "application/json")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDealService.AssertNotCalled(suite.T(), "CreateDeal")
}

func (suite *DealHandlerTestSuite) TestCreateDeal_UnitConflict() {
	suite.mockDealService.On("CreateDeal", mock.Anything, mock.AnythingOfType("dto.CreateDealRequest"), domain.ChannelWeb).
		Return(nil, fmt.Errorf("%w: this unit is not available for booking", apperrors.ErrConflict))

	body := fmt.Sprintf(`{"tenantID":%q,"unitID":%q,"termType":"MONTHLY","startDate":"2026-09-01T00:00:00Z"}`,
		uuid.NewString(), uuid.NewString())
	w := suite.doRequest(http.MethodPost, "/api/v1/deals/", bytes.NewBufferString(body), "application/json")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *DealHandlerTestSuite) TestGetDeal_NotFound() {
	dealID := uuid.NewString()
	suite.mockDealService.On("GetDealByID", mock.Anything, dealID).
		Return(nil, fmt.Errorf("%w: deal %s", apperrors.ErrNotFound, dealID))

	w := suite.doRequest(http.MethodGet, "/api/v1/deals/"+dealID, nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DealHandlerTestSuite) TestListDeals_InvalidStatus() {
	w := suite.doRequest(http.MethodGet, "/api/v1/deals/?status=BOGUS", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDealService.AssertNotCalled(suite.T(), "ListDeals")
}

func (suite *DealHandlerTestSuite) TestListDeals_StatusFilter() {
	status := domain.DealInProgress
	suite.mockDealService.On("ListDeals", mock.Anything, &status).
		Return([]domain.Deal{*suite.sampleDeal()}, nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/deals/?status=IN_PROGRESS", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.DealResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *DealHandlerTestSuite) TestOverride_Forbidden() {
	dealID := uuid.NewString()
	suite.mockDealService.On("EmergencyOverride", mock.Anything, dealID, mock.AnythingOfType("dto.OverrideDealRequest"), domain.ChannelWhatsApp).
		Return(nil, fmt.Errorf("%w: emergency override is not allowed from this channel", apperrors.ErrForbidden))

	body := `{"targetStep":"DEAL_CLOSED","reason":"ops request"}`
	w := suite.doRequest(http.MethodPost, "/api/v1/deals/"+dealID+"/override?channel=WHATSAPP", bytes.NewBufferString(body), "application/json")

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *DealHandlerTestSuite) TestUploadInvoice_MissingFile() {
	w := suite.doRequest(http.MethodPost, "/api/v1/deals/"+uuid.NewString()+"/upload-invoice", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDealService.AssertNotCalled(suite.T(), "UploadInvoice")
}

func (suite *DealHandlerTestSuite) TestUploadInvoice_Success() {
	deal := suite.sampleDeal()
	deal.CurrentStep = domain.StepGenerateMoveIn
	suite.mockDealService.On("UploadInvoice", mock.Anything, deal.DealID, "invoice.pdf", mock.Anything, domain.ChannelWeb).
		Return(deal, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "invoice.pdf")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("%PDF-1.4 test"))
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	w := suite.doRequest(http.MethodPost, "/api/v1/deals/"+deal.DealID+"/upload-invoice", &buf, mw.FormDataContentType())

	suite.Equal(http.StatusOK, w.Code)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestRequestInvoice_WrongStep() {
	dealID := uuid.NewString()
	suite.mockDealService.On("RequestInvoice", mock.Anything, dealID, domain.ChannelWeb).
		Return(nil, fmt.Errorf("%w: this action is not available yet", apperrors.ErrConflict))

	w := suite.doRequest(http.MethodPost, "/api/v1/deals/"+dealID+"/request-invoice", nil, "")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *DealHandlerTestSuite) TestGetJourney_Success() {
	dealID := uuid.NewString()
	journey := &dto.JourneyResponse{
		DealID:      dealID,
		TermType:    domain.TermMonthly,
		CurrentStep: string(domain.StepGenerateLOODraft),
		Status:      domain.DealInProgress,
	}
	suite.mockDealService.On("GetJourney", mock.Anything, dealID).Return(journey, nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/deals/"+dealID+"/journey", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JourneyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dealID, resp.DealID)
}

func (suite *DealHandlerTestSuite) TestMissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/deals/", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestDealHandler(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}
