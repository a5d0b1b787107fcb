package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection without running migrations.
// TranslateError is on so callers can match duplicate-key failures with
// errors.Is(err, gorm.ErrDuplicatedKey).
func Connect(databaseURL string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("✅ Database connection established successfully!")
	return conn, nil
}
