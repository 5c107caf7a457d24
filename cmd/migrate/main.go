package main

import (
	"log"

	"github.com/portfolli/backend/config"
	"github.com/portfolli/backend/internal/database"
	"github.com/portfolli/backend/internal/models"
)

// defaultCategories are seeded once; Category is read-only at runtime.
var defaultCategories = []string{
	"General",
	"Career",
	"Projects",
	"Help",
	"Showcase",
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Schema migrated")

	for _, name := range defaultCategories {
		category := models.Category{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", name, err)
		}
	}
	log.Println("Categories seeded")
}
