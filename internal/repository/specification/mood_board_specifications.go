package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublicOrOwnedBy admits public boards plus the caller's own.
type PublicOrOwnedBy struct {
	UserID uuid.UUID
}

func (s PublicOrOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_public = ? OR user_id = ?", true, s.UserID)
}

type PublicOnly struct{}

func (s PublicOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_public = ?", true)
}
