package model

import (
	"time"

	"github.com/google/uuid"
)

type WishlistItem struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_wishlist_user_perfume,unique"`
	PerfumeId uuid.UUID `gorm:"type:uuid;not null;index:idx_wishlist_user_perfume,unique;index"`
	Priority  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
