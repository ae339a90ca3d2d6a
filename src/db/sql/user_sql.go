package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/ICE2311/expense-tracker/src/errs"
	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// DefaultCategories are seeded for every new user at registration.
var DefaultCategories = []models.CategoryRequest{
	{Name: "Food & Dining", Type: models.TypeExpense},
	{Name: "Transportation", Type: models.TypeExpense},
	{Name: "Shopping", Type: models.TypeExpense},
	{Name: "Entertainment", Type: models.TypeExpense},
	{Name: "Bills & Utilities", Type: models.TypeExpense},
	{Name: "Healthcare", Type: models.TypeExpense},
	{Name: "Education", Type: models.TypeExpense},
	{Name: "Personal Care", Type: models.TypeExpense},
	{Name: "Home & Garden", Type: models.TypeExpense},
	{Name: "Other Expenses", Type: models.TypeExpense},
	{Name: "Salary", Type: models.TypeIncome},
	{Name: "Freelance", Type: models.TypeIncome},
	{Name: "Investment", Type: models.TypeIncome},
	{Name: "Gift", Type: models.TypeIncome},
	{Name: "Other Income", Type: models.TypeIncome},
}

// CreateUser inserts the user and seeds the default categories in one
// database transaction.
func (s *Store) CreateUser(ctx context.Context, req models.RegisterRequest, hashedPassword string) (*models.User, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	user := models.User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Name:     req.Name,
		Currency: req.Currency,
	}

	query := `
		INSERT INTO users (id, email, password_hash, name, currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err = tx.QueryRow(ctx, query, user.ID, user.Email, hashedPassword, user.Name, user.Currency).
		Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, errs.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	for _, c := range DefaultCategories {
		_, err := tx.Exec(ctx,
			`INSERT INTO categories (id, user_id, name, type) VALUES ($1, $2, $3, $4)`,
			uuid.NewString(), user.ID, c.Name, c.Type,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed categories: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, email, password_hash, name, currency, created_at
		FROM users
		WHERE email = $1
	`
	err := s.Pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Currency,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}
