package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ICE2311/expense-tracker/src/middleware"
	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var testPrincipal = models.Principal{
	ID:       "11111111-1111-1111-1111-111111111111",
	Email:    "demo@example.com",
	Name:     "Demo User",
	Currency: "INR",
}

func authed(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithPrincipal(r.Context(), testPrincipal))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type mockUserStore struct {
	user      *models.User
	createErr error
	getErr    error

	gotHash string
}

func (m *mockUserStore) CreateUser(_ context.Context, req models.RegisterRequest, hashedPassword string) (*models.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.gotHash = hashedPassword
	return &models.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		Currency:  req.Currency,
		CreatedAt: time.Now(),
	}, nil
}

func (m *mockUserStore) GetUserByEmail(_ context.Context, _ string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

type mockTransactionStore struct {
	transactions []models.Transaction
	total        int
	err          error

	gotPrincipal models.Principal
	gotQuery     models.TransactionQuery
}

func (m *mockTransactionStore) ListTransactions(_ context.Context, _ string, q models.TransactionQuery) ([]models.Transaction, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	m.gotQuery = q
	return m.transactions, m.total, nil
}

func (m *mockTransactionStore) CreateTransaction(_ context.Context, p models.Principal, req models.TransactionRequest) (*models.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.gotPrincipal = p
	return &models.Transaction{
		ID:              uuid.NewString(),
		UserID:          p.ID,
		Type:            req.Type,
		Amount:          req.Amount,
		Currency:        p.Currency,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		TransactionDate: req.Date,
		CreatedAt:       time.Now(),
	}, nil
}

func (m *mockTransactionStore) UpdateTransaction(_ context.Context, userID, transactionID string, _ models.UpdateTransactionRequest) (*models.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Transaction{ID: transactionID, UserID: userID}, nil
}

func (m *mockTransactionStore) DeleteTransaction(_ context.Context, _, _ string) error {
	return m.err
}

type mockCategoryStore struct {
	categories []models.Category
	err        error
}

func (m *mockCategoryStore) ListCategories(_ context.Context, _ string) ([]models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *mockCategoryStore) CreateCategory(_ context.Context, userID string, req models.CategoryRequest) (*models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		Type:      req.Type,
		CreatedAt: time.Now(),
	}, nil
}

func (m *mockCategoryStore) UpdateCategory(_ context.Context, userID, categoryID string, _ models.UpdateCategoryRequest) (*models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Category{ID: categoryID, UserID: userID}, nil
}

func (m *mockCategoryStore) DeleteCategory(_ context.Context, _, _ string) error {
	return m.err
}

type mockAnalyticsStore struct {
	transactions []models.Transaction
	err          error

	gotStart time.Time
	gotEnd   time.Time
}

func (m *mockAnalyticsStore) TransactionsInRange(_ context.Context, _ string, start, end time.Time) ([]models.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.gotStart = start
	m.gotEnd = end
	return m.transactions, nil
}

type mockExportStore struct {
	transactions []models.Transaction
	err          error
}

func (m *mockExportStore) TransactionsForExport(_ context.Context, _ string, _ models.ExportQuery) ([]models.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.transactions, nil
}
