package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"campushub/src/core/config"
	"campushub/src/core/logger"
	"campushub/src/core/models"
)

var DB *gorm.DB

func ConnectDB() {
	// Fetch configuration values from environment or config files
	host := config.Config("DB_HOST")
	port := config.Config("DB_PORT")
	user := config.Config("DB_USER")
	password := config.Config("DB_PASSWORD")
	dbname := config.Config("DB_NAME")

	// Build the connection string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbname)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("error connecting to the database")
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Registration{},
		&models.Note{},
		&models.PaymentOrder{},
	); err != nil {
		logger.Log.Fatal().Err(err).Msg("database migration failed")
	}

	logger.Log.Info().Msg("database connected")
}
