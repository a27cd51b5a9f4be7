package specification

import (
	"strings"

	"gorm.io/gorm"
)

// ByRoomCode matches a room by its share code. Codes are stored uppercase and
// looked up case-insensitively, so the input is normalized here.
type ByRoomCode struct {
	Code string
}

func (s ByRoomCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ?", strings.ToUpper(strings.TrimSpace(s.Code)))
}

// ActiveOnly filters to rows with the active flag set.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}
