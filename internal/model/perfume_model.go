package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Perfume struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Brand       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Price       float64
	ImageURL    string `gorm:"type:varchar(512)"`

	// Tags is a JSON array of category labels (brand, accords, occasions).
	Tags datatypes.JSON `gorm:"type:jsonb"`

	// NoteGroups is the scent pyramid: [{label, notes:[{name, weight}]}],
	// weight being the note's prominence percentage within the perfume.
	NoteGroups datatypes.JSON `gorm:"type:jsonb"`

	// Aggregate review rating, maintained by the rating consumer.
	AvgRating   float64 `gorm:"not null;default:0"`
	RatingCount int     `gorm:"not null;default:0"`

	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Perfume) TableName() string {
	return "perfumes"
}
