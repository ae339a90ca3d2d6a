package main

import (
	"log"
	"net/http"

	"github.com/ICE2311/expense-tracker/src/api"
	"github.com/ICE2311/expense-tracker/src/config"
	"github.com/ICE2311/expense-tracker/src/db"
	store "github.com/ICE2311/expense-tracker/src/db/sql"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()

	// Emit amounts as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	db.InitCache()

	// Router
	router := api.NewRouter(store.NewStore(pool))

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
