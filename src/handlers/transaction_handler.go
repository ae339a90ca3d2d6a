package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ICE2311/expense-tracker/src/errs"
	"github.com/ICE2311/expense-tracker/src/middleware"
	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/ICE2311/expense-tracker/src/util"
	"github.com/go-chi/chi/v5"
)

type TransactionStore interface {
	ListTransactions(ctx context.Context, userID string, q models.TransactionQuery) ([]models.Transaction, int, error)
	CreateTransaction(ctx context.Context, p models.Principal, req models.TransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, req models.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

func GetTransactions(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		q, ve := util.ParseTransactionQuery(r.URL.Query())
		if ve != nil {
			RespondValidationError(w, ve)
			return
		}

		transactions, total, err := store.ListTransactions(r.Context(), p.ID, q)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions for user %s: %v", p.ID, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		totalPages := (total + q.Limit - 1) / q.Limit
		RespondJSON(w, http.StatusOK, map[string]interface{}{
			"transactions": transactions,
			"pagination": models.Pagination{
				Page:       q.Page,
				Limit:      q.Limit,
				Total:      total,
				TotalPages: totalPages,
			},
		})
	}
}

func CreateTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %s: %v", p.ID, err)
			RespondError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		if ve := util.ValidateTransaction(&req); ve != nil {
			RespondValidationError(w, ve)
			return
		}

		transaction, err := store.CreateTransaction(r.Context(), p, req)
		if err != nil {
			switch {
			case errors.Is(err, errs.ErrCategoryNotFound):
				RespondError(w, http.StatusNotFound, "Category not found")
			case errors.Is(err, errs.ErrCategoryTypeMismatch):
				RespondError(w, http.StatusBadRequest, "Category type does not match transaction type")
			default:
				log.Printf("ERROR: Failed to create transaction for user %s: %v", p.ID, err)
				RespondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		log.Printf("INFO: Created transaction %s for user %s, category %s", transaction.ID, p.ID, transaction.CategoryID)
		RespondJSON(w, http.StatusCreated, transaction)
	}
}

func UpdateTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		transactionID := chi.URLParam(r, "id")

		var req models.UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body for user %s: %v", p.ID, err)
			RespondError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		if ve := util.ValidateTransactionUpdate(&req); ve != nil {
			RespondValidationError(w, ve)
			return
		}

		transaction, err := store.UpdateTransaction(r.Context(), p.ID, transactionID, req)
		if err != nil {
			switch {
			case errors.Is(err, errs.ErrTransactionNotFound):
				RespondError(w, http.StatusNotFound, "Transaction not found")
			case errors.Is(err, errs.ErrCategoryNotFound):
				RespondError(w, http.StatusNotFound, "Category not found")
			case errors.Is(err, errs.ErrCategoryTypeMismatch):
				RespondError(w, http.StatusBadRequest, "Category type does not match transaction type")
			default:
				log.Printf("ERROR: Failed to update transaction %s for user %s: %v", transactionID, p.ID, err)
				RespondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		log.Printf("INFO: Updated transaction %s for user %s", transaction.ID, p.ID)
		RespondJSON(w, http.StatusOK, transaction)
	}
}

func DeleteTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		transactionID := chi.URLParam(r, "id")

		if err := store.DeleteTransaction(r.Context(), p.ID, transactionID); err != nil {
			if errors.Is(err, errs.ErrTransactionNotFound) {
				RespondError(w, http.StatusNotFound, "Transaction not found")
				return
			}
			log.Printf("ERROR: Failed to delete transaction %s for user %s: %v", transactionID, p.ID, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Deleted transaction %s for user %s", transactionID, p.ID)
		RespondJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
	}
}
