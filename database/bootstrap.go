// database/bootstrap.go
package database

import (
	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ada/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("open sqlite")
	}

	if err := db.AutoMigrate(
		&entities.Plan{},
		&entities.Item{},
		&entities.Receipt{},
		&entities.LedgerEntry{},
		&entities.Conversation{},
		&entities.Message{},
		&entities.CalendarEvent{},
		&entities.Reminder{},
	); err != nil {
		log.Fatal().Err(err).Msg("automigrate")
	}

	return db
}
