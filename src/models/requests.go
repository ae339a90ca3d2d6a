package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Currency string `json:"currency"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TransactionRequest carries the raw create payload. Date is the parsed
// form of TransactionDate, populated during validation.
type TransactionRequest struct {
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	CategoryID      string          `json:"categoryId"`
	Description     *string         `json:"description"`
	TransactionDate string          `json:"transactionDate"`
	Date            time.Time       `json:"-"`
}

// UpdateTransactionRequest is the partial-update variant: nil means the
// field was not supplied and keeps its stored value.
type UpdateTransactionRequest struct {
	Type            *string          `json:"type"`
	Amount          *decimal.Decimal `json:"amount"`
	CategoryID      *string          `json:"categoryId"`
	Description     *string          `json:"description"`
	TransactionDate *string          `json:"transactionDate"`
	Date            *time.Time       `json:"-"`
}

type CategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}
