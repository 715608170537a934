package database

import (
	"log"
	"os"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	pgOnce sync.Once
	pg     *gorm.DB
)

// ConnectPostgres initializes a singleton PostgreSQL connection using GORM.
// The relational store owns the offices roster, page configurations and the
// submission tables; this system only reads and appends, it never migrates.
func ConnectPostgres() error {
	var err error
	pgOnce.Do(func() {
		dsn := os.Getenv("POSTGRES_DSN")
		if dsn == "" {
			log.Fatal("POSTGRES_DSN environment variable not set. Please create a .env file and set it.")
		}

		pg, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL:", err)
			return
		}
		log.Println("PostgreSQL connected")
	})
	return err
}

// PG returns the initialized database or nil if ConnectPostgres was not called.
func PG() *gorm.DB {
	return pg
}
