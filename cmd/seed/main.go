package main

import (
	"context"
	"fmt"
	"log"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/services"
)

func main() {
	// Load configuration
	_, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	projects, skills, err := services.SeedDefaults(context.Background(), database.GetDB())
	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Printf("Inserted %d projects\n", projects)
	fmt.Printf("Inserted %d skills\n", skills)
	fmt.Println("Database seeded successfully!")
}
