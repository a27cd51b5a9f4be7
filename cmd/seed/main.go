package main

import (
	"log"
	"os"
	"time"

	"beertally-be/internal/model"
	"beertally-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a demo room with a few users and some chat history so the frontend
// has something to show on a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	log.Println("Seeding demo data...")

	users := []model.User{
		{Id: uuid.New(), SessionToken: "seed-token-jan", DisplayName: "Jan"},
		{Id: uuid.New(), SessionToken: "seed-token-piet", DisplayName: "Piet"},
		{Id: uuid.New(), SessionToken: "seed-token-klaas", DisplayName: "Klaas"},
	}
	for i := range users {
		var existing model.User
		if err := db.Where("session_token = ?", users[i].SessionToken).First(&existing).Error; err == nil {
			log.Printf("%s User '%s' already exists, skipping...", yellow("SKIP"), existing.DisplayName)
			users[i] = existing
			continue
		}
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("Error creating user '%s': %v", users[i].DisplayName, err)
		}
		log.Printf("%s Created user: %s", green("OK"), users[i].DisplayName)
	}

	room := model.Room{
		Id:            uuid.New(),
		Code:          "DEMO01",
		DisplayName:   "Demo Kroeg",
		CreatorUserId: users[0].Id,
		Active:        true,
	}
	var existingRoom model.Room
	if err := db.Where("code = ?", room.Code).First(&existingRoom).Error; err == nil {
		log.Printf("%s Room '%s' already exists, skipping...", yellow("SKIP"), room.Code)
		room = existingRoom
	} else {
		if err := db.Create(&room).Error; err != nil {
			log.Fatalf("Error creating room: %v", err)
		}
		log.Printf("%s Created room: %s (%s)", green("OK"), room.DisplayName, room.Code)
	}

	now := time.Now()
	for i, u := range users {
		participant := model.RoomParticipant{
			Id:       uuid.New(),
			RoomId:   room.Id,
			UserId:   u.Id,
			JoinedAt: now.Add(time.Duration(i) * time.Minute),
			Active:   true,
		}
		var existing model.RoomParticipant
		if err := db.Where("room_id = ? AND user_id = ?", room.Id, u.Id).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&participant).Error; err != nil {
			log.Fatalf("Error creating participant: %v", err)
		}
	}

	messages := []string{
		"Proost!",
		"Wie staat er bovenaan het klassement?",
		"Nog een rondje?",
	}
	for i, body := range messages {
		message := model.RoomMessage{
			Id:     uuid.New(),
			RoomId: room.Id,
			UserId: users[i%len(users)].Id,
			Body:   body,
		}
		if err := db.Create(&message).Error; err != nil {
			log.Fatalf("Error creating message: %v", err)
		}
	}
	log.Printf("%s Created %d messages", green("OK"), len(messages))

	for i, u := range users {
		for j := 0; j <= i; j++ {
			tally := model.Tally{Id: uuid.New(), UserId: u.Id}
			if err := db.Create(&tally).Error; err != nil {
				log.Fatalf("Error creating tally: %v", err)
			}
		}
	}
	log.Printf("%s Created tallies", green("OK"))

	log.Println(green("✅ Seeding completed!"))
}
