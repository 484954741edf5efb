package main

import (
	"fmt"
	"log"

	"esim4travel/internal/config"
	"esim4travel/internal/database"
)

func main() {
	fmt.Println("🗑️  Resetting database...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.DropSchema(db.DB); err != nil {
		log.Fatal("Failed to drop schema:", err)
	}
	fmt.Println("✅ Dropped all tables")

	if err := database.InitializeSchema(db.DB); err != nil {
		log.Fatal("Failed to recreate schema:", err)
	}
	fmt.Println("✅ Recreated schema")

	fmt.Println("\nDatabase reset complete. Run cmd/seed to load sample data.")
}
