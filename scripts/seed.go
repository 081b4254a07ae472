//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hugh/orgspace/internal/auth"
	"github.com/hugh/orgspace/internal/database"
	"github.com/hugh/orgspace/pkg/config"
	"github.com/hugh/orgspace/pkg/util"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	authService := auth.NewService(db, jwtService)

	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")
	firstName := os.Getenv("SEED_FIRST_NAME")
	lastName := os.Getenv("SEED_LAST_NAME")

	if email == "" {
		email = "demo@example.com"
	}
	if password == "" {
		password = "demo123!"
	}
	if firstName == "" {
		firstName = "Demo"
	}
	if lastName == "" {
		lastName = "User"
	}

	resp, err := authService.Register(context.Background(), auth.RegisterInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})

	if err != nil {
		if err == auth.ErrUserExists {
			fmt.Printf("Seed user already exists: %s\n", email)
			return
		}
		log.Fatalf("failed to create seed user: %v", err)
	}

	fmt.Printf("Seed user created successfully!\n")
	fmt.Printf("Email: %s\n", resp.User.Email)
	fmt.Printf("Organisation: %s\n", resp.Org.Name)
	fmt.Printf("Token: %s\n", resp.Token)
}
