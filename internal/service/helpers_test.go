package service

import (
	"testing"
	"time"

	"beertally-be/internal/config"
	"beertally-be/internal/model"
	"beertally-be/internal/repository/memory"
	"beertally-be/internal/repository/unitofwork"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}

	// A :memory: database exists per connection, so the pool must stay at one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.RoomParticipant{},
		&model.RoomMessage{},
		&model.Tally{},
		&model.GameScore{},
		&model.Activity{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(newTestDB(t))
}

func newTestSessions() *memory.SessionRepository {
	return memory.NewSessionRepository(time.Hour)
}

func testChatConfig() config.ChatConfig {
	return config.ChatConfig{
		MaxMessageLength: 500,
		HistoryLimit:     50,
		RoomCodeLength:   6,
		RoomCodeAttempts: 10,
	}
}
