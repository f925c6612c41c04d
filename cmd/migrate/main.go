package main

import (
	"uni3_backend/internal/config" // Custom import path (Config)
	"uni3_backend/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus"
)

// Main entry point for migration: creates the tables and seeds reference and demo data
func main() {
	cfg := config.LoadConfig() // Load configuration
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	database, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := db.Seed(database); err != nil {
		logrus.Fatalf("seed failed: %v", err)
	}
	logrus.Info("Seed completed.")
}
