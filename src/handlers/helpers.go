package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ICE2311/expense-tracker/src/errs"
)

func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, map[string]string{"error": msg})
}

func RespondValidationError(w http.ResponseWriter, ve *errs.ValidationError) {
	RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "Validation error",
		"details": ve.Details,
	})
}
