package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type VendingMachine struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:varchar(512)"`
	Latitude  float64   `gorm:"not null;index"`
	Longitude float64   `gorm:"not null;index"`
	Status    string    `gorm:"type:varchar(32);not null;default:'active'"`

	// Stock is a JSON array of {perfume_id, quantity} entries.
	Stock datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (VendingMachine) TableName() string {
	return "vending_machines"
}
