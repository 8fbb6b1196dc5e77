package main

import (
	"log"

	"salestrack/internal/config"

	"gorm.io/gorm"
)

// withDatabase loads configuration, opens the connection, runs fn and closes it
func withDatabase(fn func(cfg *config.Config, db *gorm.DB)) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			log.Printf("❌ Error closing database: %v", err)
		}
	}()

	fn(cfg, db)
}
