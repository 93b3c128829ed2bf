package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/SurajNaik1502/TPC/internal/infrastructure/database"
)

// Applies the pending database migrations and exits. Useful for deploy
// pipelines that migrate before rolling the API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}
}
