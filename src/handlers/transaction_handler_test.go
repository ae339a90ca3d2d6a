package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ICE2311/expense-tracker/src/errs"
	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTransactions_Unauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	w := httptest.NewRecorder()

	GetTransactions(&mockTransactionStore{})(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&body))
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestGetTransactions_Pagination(t *testing.T) {
	store := &mockTransactionStore{
		transactions: []models.Transaction{{ID: "t1"}, {ID: "t2"}},
		total:        25,
	}
	req := authed(httptest.NewRequest(http.MethodGet, "/transactions?page=2", nil))
	w := httptest.NewRecorder()

	GetTransactions(store)(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var body struct {
		Transactions []models.Transaction `json:"transactions"`
		Pagination   models.Pagination    `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Equal(t, 10, body.Pagination.Limit)
	assert.Equal(t, 25, body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.Equal(t, 2, store.gotQuery.Page)
}

func TestGetTransactions_InvalidQuery(t *testing.T) {
	req := authed(httptest.NewRequest(http.MethodGet, "/transactions?limit=500", nil))
	w := httptest.NewRecorder()

	GetTransactions(&mockTransactionStore{})(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&body))
	assert.Equal(t, "Validation error", body["error"])
	details := body["details"].(map[string]interface{})
	assert.Contains(t, details, "limit")
}

func TestCreateTransaction_Success(t *testing.T) {
	store := &mockTransactionStore{}
	payload := `{"type":"EXPENSE","amount":1500,"categoryId":"c1","transactionDate":"2026-01-05","description":"Grocery shopping"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(payload)))
	w := httptest.NewRecorder()

	CreateTransaction(store)(w, req)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)

	var created models.Transaction
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&created))
	assert.Equal(t, models.TypeExpense, created.Type)
	assert.True(t, created.Amount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "INR", created.Currency)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), created.TransactionDate.UTC())
	assert.Equal(t, testPrincipal, store.gotPrincipal)
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	payload := `{"type":"EXPENSE","amount":-5,"categoryId":"","transactionDate":""}`
	req := authed(httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(payload)))
	w := httptest.NewRecorder()

	CreateTransaction(&mockTransactionStore{})(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&body))
	details := body["details"].(map[string]interface{})
	assert.Contains(t, details, "amount")
	assert.Contains(t, details, "categoryId")
	assert.Contains(t, details, "transactionDate")
}

func TestCreateTransaction_TypeMismatch(t *testing.T) {
	store := &mockTransactionStore{err: errs.ErrCategoryTypeMismatch}
	payload := `{"type":"INCOME","amount":100,"categoryId":"c1","transactionDate":"2026-01-05"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(payload)))
	w := httptest.NewRecorder()

	CreateTransaction(store)(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&body))
	assert.Equal(t, "Category type does not match transaction type", body["error"])
}

func TestCreateTransaction_CategoryNotFound(t *testing.T) {
	store := &mockTransactionStore{err: errs.ErrCategoryNotFound}
	payload := `{"type":"EXPENSE","amount":100,"categoryId":"missing","transactionDate":"2026-01-05"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(payload)))
	w := httptest.NewRecorder()

	CreateTransaction(store)(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	store := &mockTransactionStore{err: errs.ErrTransactionNotFound}
	req := authed(httptest.NewRequest(http.MethodPut, "/transactions/t1", strings.NewReader(`{"amount":200}`)))
	req = withURLParam(req, "id", "t1")
	w := httptest.NewRecorder()

	UpdateTransaction(store)(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&body))
	assert.Equal(t, "Transaction not found", body["error"])
}

func TestUpdateTransaction_Success(t *testing.T) {
	store := &mockTransactionStore{}
	req := authed(httptest.NewRequest(http.MethodPut, "/transactions/t1", strings.NewReader(`{"amount":200}`)))
	req = withURLParam(req, "id", "t1")
	w := httptest.NewRecorder()

	UpdateTransaction(store)(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestDeleteTransaction_Success(t *testing.T) {
	req := authed(httptest.NewRequest(http.MethodDelete, "/transactions/t1", nil))
	req = withURLParam(req, "id", "t1")
	w := httptest.NewRecorder()

	DeleteTransaction(&mockTransactionStore{})(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&body))
	assert.Equal(t, "Transaction deleted successfully", body["message"])
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	store := &mockTransactionStore{err: errs.ErrTransactionNotFound}
	req := authed(httptest.NewRequest(http.MethodDelete, "/transactions/missing", nil))
	req = withURLParam(req, "id", "missing")
	w := httptest.NewRecorder()

	DeleteTransaction(store)(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
