package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"beertally-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewContainerWiresAppLogger(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	logPath := filepath.Join(t.TempDir(), "app.log")
	cfg := &config.Config{
		App: config.AppConfig{
			Port:        "0",
			Environment: "test",
			LogFilePath: logPath,
			// Unresolvable endpoints so bootstrap takes its warning paths
			// without reaching real infrastructure.
			NatsURL:  "://bad",
			RedisURL: "not-a-redis-url",
		},
		Chat: config.ChatConfig{
			MaxMessageLength: 500,
			HistoryLimit:     50,
			RoomCodeLength:   6,
			RoomCodeAttempts: 10,
		},
		Session: config.SessionConfig{TTLMinutes: 60},
	}

	c := NewContainer(db, cfg)

	require.NotNil(t, c.Logger)
	assert.NotNil(t, c.AuthController)
	assert.NotNil(t, c.RoomController)
	assert.NotNil(t, c.TallyController)
	assert.NotNil(t, c.GameController)
	assert.NotNil(t, c.ActivityController)
	assert.NotNil(t, c.SessionMiddleware)
	assert.NotNil(t, c.LeaderboardConsumer)
	assert.NotNil(t, c.ChatHandler)
	assert.NotNil(t, c.WebSocketHub)

	// Bootstrap warnings go through the app logger, not stdlib log.
	_ = c.Logger.Sync()
	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Failed to parse Redis URL")
}
