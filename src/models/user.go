package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Principal is the authenticated identity extracted from a verified JWT.
// Handlers read it from the request context instead of raw claims.
type Principal struct {
	ID       string
	Email    string
	Name     string
	Currency string
}
