// Package export renders transaction sets as CSV text.
package export

import (
	"io"
	"strings"

	"github.com/ICE2311/expense-tracker/src/models"
)

var header = []string{"Date", "Type", "Category", "Amount", "Currency", "Description"}

// WriteCSV writes a header row followed by one row per transaction in the
// order given. Every field is double-quoted with embedded quotes doubled.
// Rows are newline-separated; there is no trailing newline.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	if err := writeRow(w, header); err != nil {
		return err
	}
	for _, t := range transactions {
		description := ""
		if t.Description != nil {
			description = *t.Description
		}
		row := []string{
			t.TransactionDate.UTC().Format("2006-01-02"),
			t.Type,
			t.Category.Name,
			t.Amount.String(),
			t.Currency,
			description,
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ","))
	return err
}
