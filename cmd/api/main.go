package main

import (
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gorace/adapters/postgres"
	"gorace/app"
	"gorace/internal/config"
	"gorace/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.Load()

	var store app.AnalysisStore = app.NewMemoryStore()
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		store, err = postgres.NewAnalysisRepository(db)
		if err != nil {
			log.Fatalf("failed to initialize analysis store: %v", err)
		}
		log.Println("[api] using Postgres analysis store")
	} else {
		log.Println("[api] DATABASE_URL not set, using in-memory analysis store")
	}

	server := ui.NewServer(app.NewAnalysisService(store))
	if err := server.ListenAndServe(cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
