package model

import (
	"time"

	"github.com/google/uuid"
)

type CollectionItem struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_collection_user_perfume,unique"`
	PerfumeId uuid.UUID `gorm:"type:uuid;not null;index:idx_collection_user_perfume,unique"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CollectionItem) TableName() string {
	return "collection_items"
}
