package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ICE2311/expense-tracker/src/db"
	"github.com/ICE2311/expense-tracker/src/errs"
	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `
	t.id, t.user_id, t.type, t.amount, t.currency, t.category_id,
	t.description, t.transaction_date, t.created_at,
	c.id, c.name, c.type
`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Currency, &t.CategoryID,
		&t.Description, &t.TransactionDate, &t.CreatedAt,
		&t.Category.ID, &t.Category.Name, &t.Category.Type,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTransactions(ctx context.Context, userID string, q models.TransactionQuery) ([]models.Transaction, int, error) {
	// A categoryId that is not a UUID cannot match any row.
	if q.CategoryID != "" && uuid.Validate(q.CategoryID) != nil {
		return []models.Transaction{}, 0, nil
	}

	where := []string{"t.user_id = $1"}
	args := []interface{}{userID}
	if q.Type != "" {
		args = append(args, q.Type)
		where = append(where, fmt.Sprintf("t.type = $%d", len(args)))
	}
	if q.CategoryID != "" {
		args = append(args, q.CategoryID)
		where = append(where, fmt.Sprintf("t.category_id = $%d", len(args)))
	}
	if q.StartDate != nil {
		args = append(args, *q.StartDate)
		where = append(where, fmt.Sprintf("t.transaction_date >= $%d", len(args)))
	}
	if q.EndDate != nil {
		args = append(args, *q.EndDate)
		where = append(where, fmt.Sprintf("t.transaction_date <= $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM transactions t WHERE %s`, cond)
	if err := s.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, q.Limit, (q.Page-1)*q.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE %s
		ORDER BY t.transaction_date DESC
		LIMIT $%d OFFSET $%d
	`, transactionColumns, cond, len(args)-1, len(args))

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, total, rows.Err()
}

// CreateTransaction checks category ownership and type consistency and
// inserts the row inside one database transaction, so a concurrent
// category delete cannot slip between the check and the write.
func (s *Store) CreateTransaction(ctx context.Context, p models.Principal, req models.TransactionRequest) (*models.Transaction, error) {
	if uuid.Validate(req.CategoryID) != nil {
		return nil, errs.ErrCategoryNotFound
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var cat models.CategorySummary
	err = tx.QueryRow(ctx,
		`SELECT id, name, type FROM categories WHERE id = $1 AND user_id = $2 FOR SHARE`,
		req.CategoryID, p.ID,
	).Scan(&cat.ID, &cat.Name, &cat.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	if cat.Type != req.Type {
		return nil, errs.ErrCategoryTypeMismatch
	}

	t := models.Transaction{
		ID:              uuid.NewString(),
		UserID:          p.ID,
		Type:            req.Type,
		Amount:          req.Amount,
		Currency:        p.Currency,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		TransactionDate: req.Date,
		Category:        cat,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO transactions (id, user_id, category_id, type, amount, currency, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, t.ID, t.UserID, t.CategoryID, t.Type, t.Amount, t.Currency, t.Description, t.TransactionDate).
		Scan(&t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	db.ClearAnalyticsCache(p.ID)
	return &t, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, userID, transactionID string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	if uuid.Validate(transactionID) != nil {
		return nil, errs.ErrTransactionNotFound
	}
	if req.CategoryID != nil && uuid.Validate(*req.CategoryID) != nil {
		return nil, errs.ErrCategoryNotFound
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var existing models.Transaction
	err = tx.QueryRow(ctx, `
		SELECT id, user_id, type, amount, currency, category_id, description, transaction_date, created_at
		FROM transactions
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, transactionID, userID).Scan(
		&existing.ID, &existing.UserID, &existing.Type, &existing.Amount, &existing.Currency,
		&existing.CategoryID, &existing.Description, &existing.TransactionDate, &existing.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}

	updated := existing
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		updated.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		updated.Description = req.Description
	}
	if req.Date != nil {
		updated.TransactionDate = *req.Date
	}

	// The effective category must belong to the user and match the
	// effective type, whether or not it changed in this request.
	var cat models.CategorySummary
	err = tx.QueryRow(ctx,
		`SELECT id, name, type FROM categories WHERE id = $1 AND user_id = $2 FOR SHARE`,
		updated.CategoryID, userID,
	).Scan(&cat.ID, &cat.Name, &cat.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	if cat.Type != updated.Type {
		return nil, errs.ErrCategoryTypeMismatch
	}
	updated.Category = cat

	_, err = tx.Exec(ctx, `
		UPDATE transactions
		SET type = $1, amount = $2, category_id = $3, description = $4, transaction_date = $5
		WHERE id = $6
	`, updated.Type, updated.Amount, updated.CategoryID, updated.Description, updated.TransactionDate, updated.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	db.ClearAnalyticsCache(userID)
	return &updated, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if uuid.Validate(transactionID) != nil {
		return errs.ErrTransactionNotFound
	}
	cmd, err := s.Pool.Exec(ctx,
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return errs.ErrTransactionNotFound
	}
	db.ClearAnalyticsCache(userID)
	return nil
}
