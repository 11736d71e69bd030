package db

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	// Load environment variables from .env file (optional in deployment)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	// DB_DSN selects a Postgres deployment; the default is the local
	// gestiones.db file the portal has always used.
	dsn := os.Getenv("DB_DSN")
	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Println("Error al conectar a la base de datos:", err)
			return nil, err
		}
		log.Println("Portal DB connected successfully (postgres)!")
		return db, nil
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "gestiones.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Println("Error al conectar a la base de datos:", err)
		return nil, err
	}

	log.Printf("Portal DB connected successfully (sqlite, %s)!\n", path)

	return db, nil
}
