package main

import (
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"seedhash/adapters/api"
	"seedhash/adapters/postgres"
	"seedhash/internal/config"
)

func main() {
	// .env is optional; environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appConfig := api.Config{}
	if cfg.Database.Enabled() {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		appConfig.Repository = postgres.NewResultRepository(db)
		log.Printf("Result persistence enabled")
	} else {
		log.Printf("DATABASE_URL not set, result persistence disabled")
	}

	app := api.NewApp(appConfig)

	addr := ":" + cfg.Server.Port
	log.Printf("Starting seedhash API on %s", addr)
	if err := http.ListenAndServe(addr, app.Router()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
