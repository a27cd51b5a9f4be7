package entity

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	Id            uuid.UUID
	Code          string
	DisplayName   string
	CreatorUserId uuid.UUID
	Active        bool
	CreatedAt     time.Time
}

// RoomParticipant is the persisted membership record. Active distinguishes
// current presence from historical membership; the row itself is never deleted.
type RoomParticipant struct {
	Id       uuid.UUID
	RoomId   uuid.UUID
	UserId   uuid.UUID
	JoinedAt time.Time
	Active   bool
}

// Participant is a roster entry: membership joined with the display name.
type Participant struct {
	UserId      uuid.UUID
	DisplayName string
	JoinedAt    time.Time
}

type RoomMessage struct {
	Id        uuid.UUID
	RoomId    uuid.UUID
	UserId    uuid.UUID
	Body      string
	CreatedAt time.Time

	// AuthorName is resolved with a join at read time so a rename changes how
	// past messages display. Never persisted on the message row.
	AuthorName string
}
