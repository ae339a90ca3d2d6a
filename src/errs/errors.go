package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("user already exists")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryExists       = errors.New("category already exists")
	ErrCategoryInUse        = errors.New("category has existing transactions")
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")
	ErrTransactionNotFound  = errors.New("transaction not found")
)

// ValidationError collects every violated field of a request so the
// response can enumerate them all at once.
type ValidationError struct {
	Details map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Details: make(map[string]string)}
}

func (e *ValidationError) Add(field, msg string) {
	e.Details[field] = msg
}

func (e *ValidationError) Empty() bool {
	return len(e.Details) == 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e.Details[f])
	}
	return "validation error: " + strings.Join(parts, "; ")
}
