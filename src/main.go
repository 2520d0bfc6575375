package main

import (
	"budget-tracker/src/api"
	"budget-tracker/src/config"
	"budget-tracker/src/db"
	sqldb "budget-tracker/src/db/sql"
	"log"
	"net/http"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	// Apply schema migrations
	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	// Router
	transactions := sqldb.NewTransactionStore(pool)
	summaries := sqldb.NewSummaryStore(pool)
	router := api.NewRouter(transactions, summaries, cfg.AllowedOrigins)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
