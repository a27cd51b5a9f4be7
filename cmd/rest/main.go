package main

import (
	"context"
	"log"

	"beertally-be/internal/bootstrap"
	"beertally-be/internal/config"
	"beertally-be/internal/server"
	"beertally-be/internal/tracer"
	"beertally-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		container.Logger.Info("Background", "Starting Leaderboard Consumer", nil)
		if err := container.LeaderboardConsumer.Consume(context.Background()); err != nil {
			container.Logger.Error("Background", "Leaderboard Consumer failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
