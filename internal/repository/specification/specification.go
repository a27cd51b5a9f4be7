package specification

import "gorm.io/gorm"

// Specification is a composable query filter applied onto a gorm chain.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
