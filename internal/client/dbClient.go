package client

import (
	"log"

	"bigcommerce-carecloud-sync/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitSqliteClient(databasePath string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&model.SyncEvent{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
