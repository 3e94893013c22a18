package mapper

import (
	"encoding/json"
	"time"

	"quickie-be/internal/entity"
	"quickie-be/internal/model"

	"gorm.io/datatypes"
)

type VendingMachineMapper struct{}

func NewVendingMachineMapper() *VendingMachineMapper {
	return &VendingMachineMapper{}
}

func (m *VendingMachineMapper) ToEntity(v *model.VendingMachine) *entity.VendingMachine {
	if v == nil {
		return nil
	}

	var updatedAt *time.Time
	if !v.UpdatedAt.IsZero() {
		t := v.UpdatedAt
		updatedAt = &t
	}

	var stock []entity.StockEntry
	if len(v.Stock) > 0 {
		_ = json.Unmarshal(v.Stock, &stock)
	}

	return &entity.VendingMachine{
		Id:        v.Id,
		Name:      v.Name,
		Address:   v.Address,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		Status:    entity.MachineStatus(v.Status),
		Stock:     stock,
		CreatedAt: v.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *VendingMachineMapper) ToModel(v *entity.VendingMachine) *model.VendingMachine {
	if v == nil {
		return nil
	}

	var updatedAt time.Time
	if v.UpdatedAt != nil {
		updatedAt = *v.UpdatedAt
	}

	stockJSON, _ := json.Marshal(v.Stock)

	return &model.VendingMachine{
		Id:        v.Id,
		Name:      v.Name,
		Address:   v.Address,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		Status:    string(v.Status),
		Stock:     datatypes.JSON(stockJSON),
		CreatedAt: v.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *VendingMachineMapper) ToEntities(machines []*model.VendingMachine) []*entity.VendingMachine {
	entities := make([]*entity.VendingMachine, len(machines))
	for i, v := range machines {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
