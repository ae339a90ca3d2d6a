package db

import (
	"context"
	"fmt"
	"time"

	"github.com/ICE2311/expense-tracker/src/db"
	"github.com/ICE2311/expense-tracker/src/models"
)

// TransactionsInRange returns all of a user's transactions inside the
// inclusive window, joined with category info. Results are cached until
// the next write by that user.
func (s *Store) TransactionsInRange(ctx context.Context, userID string, start, end time.Time) ([]models.Transaction, error) {
	cacheKey := fmt.Sprintf("analytics:%s:%d:%d", userID, start.Unix(), end.Unix())
	if cached, found := db.GetAnalyticsCache(cacheKey); found {
		if transactions, ok := cached.([]models.Transaction); ok {
			return transactions, nil
		}
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.transaction_date >= $2 AND t.transaction_date <= $3
		ORDER BY t.transaction_date
	`, transactionColumns)

	rows, err := s.Pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	db.SetAnalyticsCache(userID, cacheKey, transactions)
	return transactions, nil
}

// TransactionsForExport returns the user's transactions for the optional
// window, newest first, matching the CSV row order.
func (s *Store) TransactionsForExport(ctx context.Context, userID string, q models.ExportQuery) ([]models.Transaction, error) {
	where := "t.user_id = $1"
	args := []interface{}{userID}
	if q.From != nil {
		args = append(args, *q.From)
		where += fmt.Sprintf(" AND t.transaction_date >= $%d", len(args))
	}
	if q.To != nil {
		args = append(args, *q.To)
		where += fmt.Sprintf(" AND t.transaction_date <= $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE %s
		ORDER BY t.transaction_date DESC
	`, transactionColumns, where)

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}
