package api

import (
	"net/http"

	db "github.com/ICE2311/expense-tracker/src/db/sql"
	"github.com/ICE2311/expense-tracker/src/handlers"
	"github.com/ICE2311/expense-tracker/src/middleware"
	"github.com/go-chi/chi/v5"
)

func NewRouter(store *db.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Post("/auth/register", handlers.Register(store))
	r.Post("/auth/login", handlers.Login(store))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware)

		r.Get("/transactions", handlers.GetTransactions(store))
		r.Post("/transactions", handlers.CreateTransaction(store))
		r.Put("/transactions/{id}", handlers.UpdateTransaction(store))
		r.Delete("/transactions/{id}", handlers.DeleteTransaction(store))

		r.Get("/categories", handlers.GetCategories(store))
		r.Post("/categories", handlers.CreateCategory(store))
		r.Put("/categories/{id}", handlers.UpdateCategory(store))
		r.Delete("/categories/{id}", handlers.DeleteCategory(store))

		r.Get("/analytics/summary", handlers.GetSummary(store))
		r.Get("/analytics/monthly-trend", handlers.GetMonthlyTrend(store))

		r.Get("/export/csv", handlers.ExportCSV(store))
	})

	return r
}
