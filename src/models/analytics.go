package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Period struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Month     *int      `json:"month"`
	Year      int       `json:"year"`
}

type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
	Period   Period          `json:"period"`
}

// CategoryAmount is one categoryBreakdown entry: the sum of a single
// category's transactions inside the requested window.
type CategoryAmount struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
}

type SummaryResponse struct {
	Summary           Summary          `json:"summary"`
	CategoryBreakdown []CategoryAmount `json:"categoryBreakdown"`
	TransactionCount  int              `json:"transactionCount"`
}

type MonthBucket struct {
	Month     int             `json:"month"`
	MonthName string          `json:"monthName"`
	Income    decimal.Decimal `json:"income"`
	Expenses  decimal.Decimal `json:"expenses"`
	Balance   decimal.Decimal `json:"balance"`
}

type MonthlyTrendResponse struct {
	Year         int           `json:"year"`
	MonthlyTrend []MonthBucket `json:"monthlyTrend"`
}
