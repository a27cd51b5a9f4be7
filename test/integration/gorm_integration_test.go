package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"beertally-be/internal/entity"
	"beertally-be/internal/repository/unitofwork"
	"beertally-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.RoomRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Room Repository", func(t *testing.T) {
		count, err := uow.RoomRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Room count: %d", count)
	})

	t.Run("Check Transactional Room Join With Message", func(t *testing.T) {
		userId := uuid.New()
		user := &entity.User{
			Id:           userId,
			SessionToken: "integration-" + uuid.New().String(),
			DisplayName:  "Integration Test User",
		}

		roomId := uuid.New()
		room := &entity.Room{
			Id:            roomId,
			Code:          "IT" + uuid.New().String()[:4],
			DisplayName:   "Integration Room",
			CreatorUserId: userId,
			Active:        true,
		}

		// Setup DB Data
		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)
		err = uow.RoomRepository().Create(context.Background(), room)
		assert.NoError(t, err)

		// Transaction Test
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		participant := &entity.RoomParticipant{
			Id:       uuid.New(),
			RoomId:   roomId,
			UserId:   userId,
			JoinedAt: time.Now(),
			Active:   true,
		}
		err = uow.ParticipantRepository().Create(ctx, participant)
		assert.NoError(t, err)

		message := &entity.RoomMessage{
			Id:     uuid.New(),
			RoomId: roomId,
			UserId: userId,
			Body:   "integration proost",
		}
		err = uow.MessageRepository().Create(ctx, message)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		count, err := uow.MessageRepository().Count(context.Background(), roomId)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(1))

		t.Log("Successfully joined room and stored message in Transaction")
	})
}
