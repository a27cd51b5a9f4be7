package store

import (
	"time"

	"github.com/google/uuid"
)

// Session is the volatile handle for a resolved identity. The token itself is
// the persistent key (users.session_token); this struct only caches the
// resolution so hot paths skip the database.
type Session struct {
	Token       string
	UserID      uuid.UUID
	DisplayName string
	ResolvedAt  time.Time
}
