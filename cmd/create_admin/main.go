package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/util"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Admin.Username == "" {
		log.Fatal("ADMIN_USERNAME must be set to create an admin user")
	}

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	db := database.GetDB()

	// Check if admin already exists
	var existing domain.AdminUser
	if err := db.Where("username = ?", cfg.Admin.Username).First(&existing).Error; err == nil {
		fmt.Println("Admin user already exists!")
		return
	}

	fmt.Printf("Password for %s: ", cfg.Admin.Username)
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		log.Fatal("Password must not be empty")
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := domain.AdminUser{
		Username:       cfg.Admin.Username,
		HashedPassword: hashedPassword,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	fmt.Println("Admin user created successfully!")
	fmt.Printf("Username: %s\n", admin.Username)
}
