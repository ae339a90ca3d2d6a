package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ICE2311/expense-tracker/src/export"
	"github.com/ICE2311/expense-tracker/src/middleware"
	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/ICE2311/expense-tracker/src/util"
)

type ExportStore interface {
	TransactionsForExport(ctx context.Context, userID string, q models.ExportQuery) ([]models.Transaction, error)
}

func ExportCSV(store ExportStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		q, ve := util.ParseExportQuery(r.URL.Query())
		if ve != nil {
			RespondValidationError(w, ve)
			return
		}

		transactions, err := store.TransactionsForExport(r.Context(), p.ID, q)
		if err != nil {
			log.Printf("ERROR: Failed to fetch transactions for export, user %s: %v", p.ID, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		filename := fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if err := export.WriteCSV(w, transactions); err != nil {
			log.Printf("ERROR: Failed to write CSV for user %s: %v", p.ID, err)
		}
	}
}
