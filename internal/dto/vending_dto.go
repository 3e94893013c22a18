package dto

import (
	"time"

	"github.com/google/uuid"
)

type StockEntryDTO struct {
	PerfumeId uuid.UUID `json:"perfume_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

type CreateVendingMachineRequest struct {
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type CreateVendingMachineResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateStockRequest struct {
	Id    uuid.UUID
	Stock []StockEntryDTO `json:"stock" validate:"required,dive"`
}

type UpdateMachineStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=active maintenance retired"`
}

type VendingMachineResponse struct {
	Id        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Status    string          `json:"status"`
	Stock     []StockEntryDTO `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// NearbyMachinesQuery selects machines within a radius of the caller.
type NearbyMachinesQuery struct {
	Latitude  float64 `query:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `query:"lon" validate:"gte=-180,lte=180"`
	RadiusKm  float64 `query:"radius_km" validate:"omitempty,gt=0,lte=100"`
}

type NearbyMachineResponse struct {
	VendingMachineResponse
	DistanceKm float64 `json:"distance_km"`
}
