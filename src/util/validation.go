package util

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ICE2311/expense-tracker/src/errs"
	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/badoux/checkmail"
)

const (
	maxCategoryName  = 50
	maxDescription   = 500
	maxPageLimit     = 100
	defaultPageLimit = 10
	minYear          = 2000
	maxYear          = 2100
)

// ParseDate accepts plain dates (2026-01-07) and RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func ValidateRegister(req *models.RegisterRequest) *errs.ValidationError {
	ve := errs.NewValidationError()
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))

	if len(req.Name) < 2 {
		ve.Add("name", "Name must be at least 2 characters")
	}
	if err := checkmail.ValidateFormat(req.Email); err != nil {
		ve.Add("email", "Invalid email address")
	}
	if len(req.Password) < 6 {
		ve.Add("password", "Password must be at least 6 characters")
	}
	if req.Currency == "" {
		req.Currency = "INR"
	} else if len(req.Currency) != 3 {
		ve.Add("currency", "Currency must be a 3-letter code")
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func ValidateLogin(req *models.LoginRequest) *errs.ValidationError {
	ve := errs.NewValidationError()
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		ve.Add("email", "Email is required")
	}
	if req.Password == "" {
		ve.Add("password", "Password is required")
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func ValidateTransaction(req *models.TransactionRequest) *errs.ValidationError {
	ve := errs.NewValidationError()
	if !models.ValidType(req.Type) {
		ve.Add("type", "Type must be EXPENSE or INCOME")
	}
	if !req.Amount.IsPositive() {
		ve.Add("amount", "Amount must be positive")
	}
	if req.CategoryID == "" {
		ve.Add("categoryId", "Category is required")
	}
	if req.Description != nil && len(*req.Description) > maxDescription {
		ve.Add("description", "Description is too long")
	}
	if req.TransactionDate == "" {
		ve.Add("transactionDate", "Transaction date is required")
	} else if d, err := ParseDate(req.TransactionDate); err != nil {
		ve.Add("transactionDate", "Invalid date")
	} else {
		req.Date = d
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func ValidateTransactionUpdate(req *models.UpdateTransactionRequest) *errs.ValidationError {
	ve := errs.NewValidationError()
	if req.Type != nil && !models.ValidType(*req.Type) {
		ve.Add("type", "Type must be EXPENSE or INCOME")
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		ve.Add("amount", "Amount must be positive")
	}
	if req.CategoryID != nil && *req.CategoryID == "" {
		ve.Add("categoryId", "Category is required")
	}
	if req.Description != nil && len(*req.Description) > maxDescription {
		ve.Add("description", "Description is too long")
	}
	if req.TransactionDate != nil {
		if d, err := ParseDate(*req.TransactionDate); err != nil {
			ve.Add("transactionDate", "Invalid date")
		} else {
			req.Date = &d
		}
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func ValidateCategory(req *models.CategoryRequest) *errs.ValidationError {
	ve := errs.NewValidationError()
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		ve.Add("name", "Category name is required")
	} else if len(req.Name) > maxCategoryName {
		ve.Add("name", "Category name is too long")
	}
	if !models.ValidType(req.Type) {
		ve.Add("type", "Type must be EXPENSE or INCOME")
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func ValidateCategoryUpdate(req *models.UpdateCategoryRequest) *errs.ValidationError {
	ve := errs.NewValidationError()
	if req.Name != nil {
		*req.Name = strings.TrimSpace(*req.Name)
		if *req.Name == "" {
			ve.Add("name", "Category name is required")
		} else if len(*req.Name) > maxCategoryName {
			ve.Add("name", "Category name is too long")
		}
	}
	if req.Type != nil && !models.ValidType(*req.Type) {
		ve.Add("type", "Type must be EXPENSE or INCOME")
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func ParseTransactionQuery(v url.Values) (models.TransactionQuery, *errs.ValidationError) {
	ve := errs.NewValidationError()
	q := models.TransactionQuery{Page: 1, Limit: defaultPageLimit}

	if s := v.Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err != nil || n < 1 {
			ve.Add("page", "Page must be a positive integer")
		} else {
			q.Page = n
		}
	}
	if s := v.Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err != nil || n < 1 {
			ve.Add("limit", "Limit must be a positive integer")
		} else if n > maxPageLimit {
			ve.Add("limit", "Limit must be at most 100")
		} else {
			q.Limit = n
		}
	}
	if s := v.Get("type"); s != "" {
		if !models.ValidType(s) {
			ve.Add("type", "Type must be EXPENSE or INCOME")
		} else {
			q.Type = s
		}
	}
	q.CategoryID = v.Get("categoryId")
	q.StartDate = parseOptionalDate(v.Get("startDate"), "startDate", ve)
	q.EndDate = parseOptionalDate(v.Get("endDate"), "endDate", ve)

	if ve.Empty() {
		return q, nil
	}
	return q, ve
}

func ParseAnalyticsQuery(v url.Values) (models.AnalyticsQuery, *errs.ValidationError) {
	ve := errs.NewValidationError()
	q := models.AnalyticsQuery{Year: time.Now().Year()}

	if s := v.Get("year"); s != "" {
		if n, err := strconv.Atoi(s); err != nil || n < minYear || n > maxYear {
			ve.Add("year", "Year must be between 2000 and 2100")
		} else {
			q.Year = n
		}
	}
	if s := v.Get("month"); s != "" {
		if n, err := strconv.Atoi(s); err != nil || n < 1 || n > 12 {
			ve.Add("month", "Month must be between 1 and 12")
		} else {
			q.Month = &n
		}
	}
	if ve.Empty() {
		return q, nil
	}
	return q, ve
}

func ParseExportQuery(v url.Values) (models.ExportQuery, *errs.ValidationError) {
	ve := errs.NewValidationError()
	q := models.ExportQuery{
		From: parseOptionalDate(v.Get("from"), "from", ve),
		To:   parseOptionalDate(v.Get("to"), "to", ve),
	}
	if ve.Empty() {
		return q, nil
	}
	return q, ve
}

func parseOptionalDate(s, field string, ve *errs.ValidationError) *time.Time {
	if s == "" {
		return nil
	}
	d, err := ParseDate(s)
	if err != nil {
		ve.Add(field, "Invalid date")
		return nil
	}
	return &d
}
