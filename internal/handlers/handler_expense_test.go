package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/finwyse/fin_tracker_app/internal/handlers"
	"github.com/finwyse/fin_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, limit int, pageToken string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Test Suite ---
type ExpenseHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockExpenseService
	jwtSecret   string
}

func (suite *ExpenseHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Subject:   "local-user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockExpenseService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterExpenseRoutes(v1, suite.mockService)
}

func (suite *ExpenseHandlerTestSuite) doRequest(method, path string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_Success() {
	reqBody := dto.CreateExpenseRequest{
		Description: "Cinema",
		Amount:      decimal.RequireFromString("18.50"),
		Category:    "Entertainment",
		Date:        "2025-03-14",
	}
	expected := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   reqBody.Description,
		Amount:        reqBody.Amount,
		Category:      reqBody.Category,
		Date:          reqBody.Date,
	}

	suite.mockService.On("AddExpense", mock.Anything, reqBody).Return(expected, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.doRequest(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.Equal("Cinema", resp.Description)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_ValidationErrorMapsTo400() {
	reqBody := dto.CreateExpenseRequest{
		Description: "Bad",
		Amount:      decimal.NewFromInt(-5),
		Date:        "2025-03-14",
	}

	suite.mockService.On("AddExpense", mock.Anything, reqBody).
		Return(nil, fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.doRequest(http.MethodPost, "/api/v1/expenses", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestCreateExpense_MalformedJSON() {
	w := suite.doRequest(http.MethodPost, "/api/v1/expenses", []byte(`{"description":`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "AddExpense")
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_Success() {
	expected := []domain.Transaction{
		{TransactionID: uuid.NewString(), Description: "Rent", Amount: decimal.NewFromInt(1500), Category: "Housing", Date: "2025-03-15"},
		{TransactionID: uuid.NewString(), Description: "Groceries", Amount: decimal.NewFromInt(400), Category: "Food", Date: "2025-03-15"},
	}

	suite.mockService.On("ListExpenses", mock.Anything, 2, "").Return(expected, "next-token", nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/expenses?limit=2", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListExpensesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Expenses, 2)
	suite.Equal("Rent", resp.Expenses[0].Description)
	suite.Equal("next-token", resp.NextPageToken)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestListExpenses_DefaultLimit() {
	suite.mockService.On("ListExpenses", mock.Anything, 50, "").Return([]domain.Transaction{}, "", nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/expenses", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_Success() {
	id := uuid.NewString()
	suite.mockService.On("DeleteExpense", mock.Anything, id).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/expenses/"+id, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestDeleteExpense_NotFound() {
	id := uuid.NewString()
	suite.mockService.On("DeleteExpense", mock.Anything, id).
		Return(fmt.Errorf("%w: transaction '%s'", apperrors.ErrNotFound, id)).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/expenses/"+id, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExpenseHandlerTestSuite) TestRequiresAuthentication() {
	req, err := http.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	suite.Require().NoError(err)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListExpenses")
}

func TestExpenseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}
