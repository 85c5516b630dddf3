package main

import (
	"Tastebook-Backend/cmd/config"
	migration "Tastebook-Backend/cmd/database/migrate"
	"Tastebook-Backend/internal/utils"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
	utils.LoadConfig()

	if utils.GetConfig("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be configured")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error setting up app: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
