package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/ICE2311/expense-tracker/src/db"
	"github.com/ICE2311/expense-tracker/src/errs"
	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (s *Store) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, type, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY type, name
	`
	rows, err := s.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) CreateCategory(ctx context.Context, userID string, req models.CategoryRequest) (*models.Category, error) {
	c := models.Category{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   req.Name,
		Type:   req.Type,
	}
	query := `
		INSERT INTO categories (id, user_id, name, type)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := s.Pool.QueryRow(ctx, query, c.ID, c.UserID, c.Name, c.Type).Scan(&c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, errs.ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, userID, categoryID string, req models.UpdateCategoryRequest) (*models.Category, error) {
	if uuid.Validate(categoryID) != nil {
		return nil, errs.ErrCategoryNotFound
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var existing models.Category
	err = tx.QueryRow(ctx,
		`SELECT id, user_id, name, type, created_at FROM categories WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		categoryID, userID,
	).Scan(&existing.ID, &existing.UserID, &existing.Name, &existing.Type, &existing.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}

	name, ctype := existing.Name, existing.Type
	if req.Name != nil {
		name = *req.Name
	}
	if req.Type != nil {
		ctype = *req.Type
	}

	// Changing the type would break type consistency for any transaction
	// already filed under this category.
	if ctype != existing.Type {
		var count int
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID,
		).Scan(&count); err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}
		if count > 0 {
			return nil, errs.ErrCategoryInUse
		}
	}

	updated := existing
	updated.Name = name
	updated.Type = ctype
	_, err = tx.Exec(ctx,
		`UPDATE categories SET name = $1, type = $2 WHERE id = $3`,
		name, ctype, categoryID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, errs.ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	// Cached analytics rows embed the category name.
	db.ClearAnalyticsCache(userID)
	return &updated, nil
}

func (s *Store) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if uuid.Validate(categoryID) != nil {
		return errs.ErrCategoryNotFound
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx,
		`SELECT id FROM categories WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		categoryID, userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrCategoryNotFound
		}
		return fmt.Errorf("query error: %w", err)
	}

	var count int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID,
	).Scan(&count); err != nil {
		return fmt.Errorf("query error: %w", err)
	}
	if count > 0 {
		return errs.ErrCategoryInUse
	}

	if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
