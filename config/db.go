package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spotilike/api/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the handle opened by Init. Handlers derive a request-scoped
// session from it and pass that explicitly into every store call.
var DB *gorm.DB

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init connects to MySQL and migrates the schema, including the
// cascade constraints the delete operations rely on.
func Init() {
	username := env("DB_USER", "root")
	password := env("DB_PASSWORD", "")
	host := env("DB_HOST", "localhost")
	port := env("DB_PORT", "3306")
	dbName := env("DB_NAME", "spotilike")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", username, password, host, port, dbName)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}
}

// Migrate creates or updates every table. Tests reuse it against
// their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Artist{},
		&models.Album{},
		&models.Song{},
		&models.Genre{},
		&models.User{},
	)
}
