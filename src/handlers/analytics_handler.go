package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/ICE2311/expense-tracker/src/analytics"
	"github.com/ICE2311/expense-tracker/src/middleware"
	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/ICE2311/expense-tracker/src/util"
)

type AnalyticsStore interface {
	TransactionsInRange(ctx context.Context, userID string, start, end time.Time) ([]models.Transaction, error)
}

func GetSummary(store AnalyticsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		q, ve := util.ParseAnalyticsQuery(r.URL.Query())
		if ve != nil {
			RespondValidationError(w, ve)
			return
		}

		start, end := analytics.PeriodWindow(q.Year, q.Month)
		transactions, err := store.TransactionsInRange(r.Context(), p.ID, start, end)
		if err != nil {
			log.Printf("ERROR: Failed to fetch transactions for summary, user %s: %v", p.ID, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		income, expenses, breakdown := analytics.Summarize(transactions)
		RespondJSON(w, http.StatusOK, models.SummaryResponse{
			Summary: models.Summary{
				Income:   income,
				Expenses: expenses,
				Balance:  income.Sub(expenses),
				Period: models.Period{
					StartDate: start,
					EndDate:   end,
					Month:     q.Month,
					Year:      q.Year,
				},
			},
			CategoryBreakdown: breakdown,
			TransactionCount:  len(transactions),
		})
	}
}

func GetMonthlyTrend(store AnalyticsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		q, ve := util.ParseAnalyticsQuery(r.URL.Query())
		if ve != nil {
			RespondValidationError(w, ve)
			return
		}

		start, end := analytics.PeriodWindow(q.Year, nil)
		transactions, err := store.TransactionsInRange(r.Context(), p.ID, start, end)
		if err != nil {
			log.Printf("ERROR: Failed to fetch transactions for monthly trend, user %s: %v", p.ID, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		RespondJSON(w, http.StatusOK, models.MonthlyTrendResponse{
			Year:         q.Year,
			MonthlyTrend: analytics.MonthlyTrend(transactions, q.Year),
		})
	}
}
