package main

import (
	"log"

	"menu-backend/internal/config"
	"menu-backend/internal/database"
	"menu-backend/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if cfg.Env == config.EnvDevelopment {
		if err := database.Seed(db); err != nil {
			log.Printf("[WARN] seed failed: %v", err)
		}
	}

	app := server.New(cfg, db)

	log.Println("server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
