package entity

import (
	"time"

	"github.com/google/uuid"
)

type MachineStatus string

const (
	MachineStatusActive      MachineStatus = "active"
	MachineStatusMaintenance MachineStatus = "maintenance"
	MachineStatusRetired     MachineStatus = "retired"
)

type StockEntry struct {
	PerfumeId uuid.UUID `json:"perfume_id"`
	Quantity  int       `json:"quantity"`
}

type VendingMachine struct {
	Id        uuid.UUID
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Status    MachineStatus
	Stock     []StockEntry
	CreatedAt time.Time
	UpdatedAt *time.Time
}
