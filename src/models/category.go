package models

import "time"

const (
	TypeExpense = "EXPENSE"
	TypeIncome  = "INCOME"
)

func ValidType(t string) bool {
	return t == TypeExpense || t == TypeIncome
}

type Category struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategorySummary is the category shape embedded in transaction responses.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
