package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV_Unauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export/csv", nil)
	w := httptest.NewRecorder()

	ExportCSV(&mockExportStore{})(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestExportCSV_Success(t *testing.T) {
	desc := "Weekly groceries"
	store := &mockExportStore{transactions: []models.Transaction{
		{
			Type:            models.TypeExpense,
			Amount:          decimal.RequireFromString("1500.00"),
			Currency:        "INR",
			Description:     &desc,
			TransactionDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			Category:        models.CategorySummary{Name: "Food & Dining", Type: models.TypeExpense},
		},
	}}

	req := authed(httptest.NewRequest(http.MethodGet, "/export/csv?from=2026-01-01&to=2026-01-31", nil))
	w := httptest.NewRecorder()

	ExportCSV(store)(w, req)

	res := w.Result()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/csv", res.Header.Get("Content-Type"))

	disposition := res.Header.Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, `attachment; filename="transactions-`))
	assert.True(t, strings.HasSuffix(disposition, `.csv"`))

	lines := strings.Split(w.Body.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Date","Type","Category","Amount","Currency","Description"`, lines[0])
	assert.Equal(t, `"2026-01-15","EXPENSE","Food & Dining","1500.00","INR","Weekly groceries"`, lines[1])
}

func TestExportCSV_InvalidDate(t *testing.T) {
	req := authed(httptest.NewRequest(http.MethodGet, "/export/csv?from=31-01-2026", nil))
	w := httptest.NewRecorder()

	ExportCSV(&mockExportStore{})(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestExportCSV_EmptyResult(t *testing.T) {
	req := authed(httptest.NewRequest(http.MethodGet, "/export/csv", nil))
	w := httptest.NewRecorder()

	ExportCSV(&mockExportStore{})(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, `"Date","Type","Category","Amount","Currency","Description"`, w.Body.String())
}
