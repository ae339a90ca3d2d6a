package models

import "time"

// TransactionQuery is the parsed and defaulted form of the list endpoint's
// query string.
type TransactionQuery struct {
	Page       int
	Limit      int
	Type       string
	CategoryID string
	StartDate  *time.Time
	EndDate    *time.Time
}

type AnalyticsQuery struct {
	Year  int
	Month *int
}

type ExportQuery struct {
	From *time.Time
	To   *time.Time
}
