package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MoodBoard struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`

	// PerfumeIds is a JSON array of perfume UUIDs pinned to the board.
	PerfumeIds datatypes.JSON `gorm:"type:jsonb"`

	// Layout is free-form board geometry owned by the frontend.
	Layout datatypes.JSON `gorm:"type:jsonb"`

	IsPublic  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (MoodBoard) TableName() string {
	return "mood_boards"
}
