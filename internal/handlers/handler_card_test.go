package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finbyte/card_ledger_app/internal/apperrors"
	"github.com/finbyte/card_ledger_app/internal/core/domain"
	portssvc "github.com/finbyte/card_ledger_app/internal/core/ports/services"
	"github.com/finbyte/card_ledger_app/internal/dto"
	"github.com/finbyte/card_ledger_app/internal/handlers"
	"github.com/finbyte/card_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CardService ---
type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) RegisterCard(ctx context.Context, req dto.RegisterCardRequest) (*domain.Card, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) ListCards(ctx context.Context) ([]domain.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardService) FindCard(ctx context.Context, query string) (*domain.Card, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) GetCardByID(ctx context.Context, cardID int64) (*domain.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) Charge(ctx context.Context, cardID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, cardID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockCardService) Payment(ctx context.Context, cardID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, cardID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockCardService) CanCharge(ctx context.Context, cardID int64, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, cardID, amount)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CardSvcFacade = (*MockCardService)(nil)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) AddEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockPayrollService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockPayrollService) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockPayrollService) RemoveAllEmployees(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPayrollService) GeneratePayroll(ctx context.Context, month, year int) (*domain.PayrollResult, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollResult), args.Error(1)
}

var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)

// --- Test Suite Setup ---

type CardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCard    *MockCardService
	mockPayroll *MockPayrollService
}

func (suite *CardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockCard = new(MockCardService)
	suite.mockPayroll = new(MockPayrollService)

	cfg := &config.Config{
		Port:               "8080",
		RateLimit:          "1000-S",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Card:    suite.mockCard,
		Payroll: suite.mockPayroll,
	})
}

func (suite *CardHandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CardHandlerTestSuite) TestRegisterCard_Success() {
	card := domain.NewCard("4111111111111111", "Ada Lovelace", domain.ExpiryDate{Year: 2030, Month: 12}, "123", "Visa", decimal.NewFromInt(5000))
	card.CardID = 1

	suite.mockCard.On("RegisterCard", mock.Anything, mock.AnythingOfType("dto.RegisterCardRequest")).Return(&card, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/cards", gin.H{
		"number":      "4111 1111 1111 1111",
		"holderName":  "Ada Lovelace",
		"expiry":      "12/30",
		"cvv":         "123",
		"network":     "Visa",
		"creditLimit": "5000",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var res dto.CardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(int64(1), res.CardID)
	suite.Equal("4111 **** **** 1111", res.MaskedNumber)
	suite.Equal("5000.00", res.CreditLimit)
	suite.Equal("5000.00", res.AvailableCredit)
	suite.mockCard.AssertExpectations(suite.T())
}

func (suite *CardHandlerTestSuite) TestRegisterCard_InvalidNumberIsBadRequest() {
	suite.mockCard.On("RegisterCard", mock.Anything, mock.AnythingOfType("dto.RegisterCardRequest")).
		Return(nil, apperrors.ErrInvalidCardNumber).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/cards", gin.H{
		"number":     "4111111111111112",
		"holderName": "Ada Lovelace",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CardHandlerTestSuite) TestRegisterCard_MalformedExpiryRejectedAtBinding() {
	w := suite.performJSON(http.MethodPost, "/api/v1/cards", gin.H{
		"number":     "4111111111111111",
		"holderName": "Ada Lovelace",
		"expiry":     "13/99",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCard.AssertNotCalled(suite.T(), "RegisterCard", mock.Anything, mock.Anything)
}

func (suite *CardHandlerTestSuite) TestCharge_RejectedAttemptIsStillOK() {
	txn := &domain.Transaction{
		CardID:     1,
		CardNumber: "4111111111111111",
		Amount:     decimal.NewFromInt(9999),
		Kind:       domain.Charge,
		Timestamp:  time.Now(),
		Success:    false,
		Note:       "Insufficient credit",
	}

	suite.mockCard.On("Charge", mock.Anything, int64(1), mock.Anything).Return(txn, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/cards/1/charge", gin.H{"amount": "9999"})

	suite.Equal(http.StatusOK, w.Code, "rejections are data, not HTTP errors")

	var res dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.False(res.Success)
	suite.Equal("Insufficient credit", res.Note)
	suite.Equal("4111 **** **** 1111", res.CardNumber, "number is masked in responses")
}

func (suite *CardHandlerTestSuite) TestCharge_CardNotFound() {
	suite.mockCard.On("Charge", mock.Anything, int64(9), mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/cards/9/charge", gin.H{"amount": "10"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CardHandlerTestSuite) TestCharge_InvalidCardIDParam() {
	w := suite.performJSON(http.MethodPost, "/api/v1/cards/abc/charge", gin.H{"amount": "10"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCard.AssertNotCalled(suite.T(), "Charge", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CardHandlerTestSuite) TestFindCard_NotFound() {
	suite.mockCard.On("FindCard", mock.Anything, "0000").Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards/search?q=0000", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CardHandlerTestSuite) TestGeneratePayroll_Success() {
	result := domain.NewPayrollResult(6, 2026)
	result.Add(domain.ComputePayrollLine(
		domain.NewSalariedEmployee("E1", "Grace Hopper", "Engineering",
			decimal.NewFromInt(5000), decimal.NewFromFloat(0.20)), 6, 2026))

	suite.mockPayroll.On("GeneratePayroll", mock.Anything, 6, 2026).Return(result, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/payroll/runs", gin.H{"month": 6, "year": 2026})

	suite.Equal(http.StatusOK, w.Code)

	var res dto.PayrollResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res.Lines, 1)
	suite.Equal("5000.00", res.Lines[0].Gross)
	suite.Equal("1000.00", res.Lines[0].Tax)
	suite.Equal("4000.00", res.Lines[0].Net)
	suite.Equal("4000.00", res.TotalNet)
}

func (suite *CardHandlerTestSuite) TestGeneratePayroll_MonthOutOfRange() {
	w := suite.performJSON(http.MethodPost, "/api/v1/payroll/runs", gin.H{"month": 13, "year": 2026})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPayroll.AssertNotCalled(suite.T(), "GeneratePayroll", mock.Anything, mock.Anything, mock.Anything)
}

func TestCardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CardHandlerTestSuite))
}
