package config

import (
	"Tastebook-Backend/internal/utils"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB binds the process to its single remote store. All repositories
// share the returned handle.
func ConnectDB() (*gorm.DB, error) {
	host := utils.GetConfig("DB_HOST")
	name := utils.GetConfig("DB_NAME")
	if host == "" || name == "" {
		log.Fatal("DB_HOST and DB_NAME must be configured")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host,
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		name,
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
