// Package analytics aggregates a user's transactions into period summaries
// and monthly trend series. All arithmetic is decimal; sums never touch
// floating point.
package analytics

import (
	"time"

	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/shopspring/decimal"
)

// PeriodWindow computes the inclusive date window for a year or a single
// calendar month. Day 0 of the following month normalizes to the last day
// of the requested one, so month lengths and leap years need no special
// handling.
func PeriodWindow(year int, month *int) (time.Time, time.Time) {
	if month != nil {
		m := time.Month(*month)
		start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, m+1, 0, 23, 59, 59, 0, time.UTC)
		return start, end
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return start, end
}

// Summarize totals a window of transactions. The category breakdown keeps
// first-encounter order.
func Summarize(transactions []models.Transaction) (income, expenses decimal.Decimal, breakdown []models.CategoryAmount) {
	income = decimal.Zero
	expenses = decimal.Zero
	breakdown = []models.CategoryAmount{}
	index := make(map[string]int)

	for _, t := range transactions {
		if t.Type == models.TypeIncome {
			income = income.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount)
		}

		i, seen := index[t.CategoryID]
		if !seen {
			i = len(breakdown)
			index[t.CategoryID] = i
			breakdown = append(breakdown, models.CategoryAmount{
				CategoryID:   t.CategoryID,
				CategoryName: t.Category.Name,
				Type:         t.Type,
				Amount:       decimal.Zero,
			})
		}
		breakdown[i].Amount = breakdown[i].Amount.Add(t.Amount)
	}
	return income, expenses, breakdown
}

// MonthlyTrend buckets a year of transactions into 12 calendar months.
// Months without transactions stay all-zero.
func MonthlyTrend(transactions []models.Transaction, year int) []models.MonthBucket {
	buckets := make([]models.MonthBucket, 12)
	for i := range buckets {
		buckets[i] = models.MonthBucket{
			Month:     i + 1,
			MonthName: time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC).Format("Jan"),
			Income:    decimal.Zero,
			Expenses:  decimal.Zero,
			Balance:   decimal.Zero,
		}
	}

	for _, t := range transactions {
		i := int(t.TransactionDate.UTC().Month()) - 1
		if t.Type == models.TypeIncome {
			buckets[i].Income = buckets[i].Income.Add(t.Amount)
		} else {
			buckets[i].Expenses = buckets[i].Expenses.Add(t.Amount)
		}
	}

	for i := range buckets {
		buckets[i].Balance = buckets[i].Income.Sub(buckets[i].Expenses)
	}
	return buckets
}
