package database

import (
	"log"
	"os"
	"time"

	"pokehub/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database connection and runs migrations. The
// returned handle is injected into the repositories; there is no
// package-level connection state.
func Connect(dsn string) (*gorm.DB, error) {
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.DeviceToken{},
		&models.FriendRequest{},
		&models.Friend{},
		&models.PokePrototype{},
		&models.Poke{},
		&models.Habit{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
