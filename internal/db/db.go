package db

import (
	"database/sql"
	"fmt"
	"log"

	"candyshop-be/internal/config"

	_ "github.com/lib/pq"
)

// InitDB opens the Postgres pool described by cfg and verifies connectivity
// with a ping. Startup cannot proceed without a database, so failures are
// fatal.
func InitDB(cfg *config.Config) *sql.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	database, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("pinging database: %v", err)
	}

	log.Println("database connection established")
	return database
}
