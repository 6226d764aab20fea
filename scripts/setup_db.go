package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"student-auth-service/internal/config"
	"student-auth-service/internal/repository/postgres"
)

const schemaFilePath = "db/schema.sql"

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Println("=== Setting Up Database ===")
	fmt.Println()

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("Connected to database")
	fmt.Println()

	schema, err := os.ReadFile(schemaFilePath)
	if err != nil {
		log.Fatalf("Failed to read schema file: %v", err)
	}

	ctx := context.Background()

	fmt.Println("Executing schema...")
	if _, err := db.Pool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("Failed to execute schema: %v", err)
	}

	fmt.Println("Schema executed successfully")
	fmt.Println()

	fmt.Println("=== Verifying Tables ===")
	tables := []string{"credentials", "students"}

	for _, table := range tables {
		var exists bool
		query := `SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)`
		if err := db.Pool.QueryRow(ctx, query, table).Scan(&exists); err != nil {
			fmt.Printf("Error checking table '%s': %v\n", table, err)
			continue
		}

		if exists {
			fmt.Printf("Table '%s' created\n", table)
		} else {
			fmt.Printf("Table '%s' NOT created\n", table)
		}
	}

	fmt.Println()
	fmt.Println("=== Database Setup Complete ===")
}
