package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PerfumeId uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_perfume_user,unique"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_perfume_user,unique;index"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
