package config

import (
	"fmt"
	"os"

	"github.com/s7eamy/learn2-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database and creates the schema idempotently. SQLite is
// the default; setting DB_URL switches to postgres for deployed environments.
func Connect() (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		dialector = postgres.Open(dbURL)
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "learn2.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table the application uses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.FlashcardSet{},
		&models.Flashcard{},
		&models.Quiz{},
		&models.Question{},
		&models.Answer{},
		&models.FlashcardAttempt{},
		&models.QuizAttempt{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}
	return nil
}
