package config

import (
	"fmt"

	"github.com/hagi-aesthetics/hagi-store/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the shared database handle, set by InitDB.
var DB *gorm.DB

// InitDB initializes the database connection and runs migrations
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.Product{},
		&models.SpinTopupOrder{},
	); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}
