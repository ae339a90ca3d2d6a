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

type CategoryStore interface {
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID string, req models.CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

func GetCategories(store CategoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		categories, err := store.ListCategories(r.Context(), p.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get categories for user %s: %v", p.ID, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		RespondJSON(w, http.StatusOK, categories)
	}
}

func CreateCategory(store CategoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.CategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create category request body for user %s: %v", p.ID, err)
			RespondError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		if ve := util.ValidateCategory(&req); ve != nil {
			RespondValidationError(w, ve)
			return
		}

		category, err := store.CreateCategory(r.Context(), p.ID, req)
		if err != nil {
			if errors.Is(err, errs.ErrCategoryExists) {
				log.Printf("ERROR: Duplicate category %q (%s) for user %s", req.Name, req.Type, p.ID)
				RespondError(w, http.StatusBadRequest, "Category already exists")
				return
			}
			log.Printf("ERROR: Failed to create category for user %s: %v", p.ID, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Created category %s (%q) for user %s", category.ID, category.Name, p.ID)
		RespondJSON(w, http.StatusCreated, category)
	}
}

func UpdateCategory(store CategoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		categoryID := chi.URLParam(r, "id")

		var req models.UpdateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update category request body for user %s: %v", p.ID, err)
			RespondError(w, http.StatusBadRequest, "Invalid request")
			return
		}
		if ve := util.ValidateCategoryUpdate(&req); ve != nil {
			RespondValidationError(w, ve)
			return
		}

		category, err := store.UpdateCategory(r.Context(), p.ID, categoryID, req)
		if err != nil {
			switch {
			case errors.Is(err, errs.ErrCategoryNotFound):
				RespondError(w, http.StatusNotFound, "Category not found")
			case errors.Is(err, errs.ErrCategoryExists):
				RespondError(w, http.StatusBadRequest, "Category with this name already exists")
			case errors.Is(err, errs.ErrCategoryInUse):
				RespondError(w, http.StatusBadRequest, "Cannot change type of category with existing transactions")
			default:
				log.Printf("ERROR: Failed to update category %s for user %s: %v", categoryID, p.ID, err)
				RespondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		log.Printf("INFO: Updated category %s for user %s", category.ID, p.ID)
		RespondJSON(w, http.StatusOK, category)
	}
}

func DeleteCategory(store CategoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			RespondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		categoryID := chi.URLParam(r, "id")

		if err := store.DeleteCategory(r.Context(), p.ID, categoryID); err != nil {
			switch {
			case errors.Is(err, errs.ErrCategoryNotFound):
				RespondError(w, http.StatusNotFound, "Category not found")
			case errors.Is(err, errs.ErrCategoryInUse):
				RespondError(w, http.StatusBadRequest, "Cannot delete category with existing transactions")
			default:
				log.Printf("ERROR: Failed to delete category %s for user %s: %v", categoryID, p.ID, err)
				RespondError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		log.Printf("INFO: Deleted category %s for user %s", categoryID, p.ID)
		RespondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
	}
}
