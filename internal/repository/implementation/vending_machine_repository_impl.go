package implementation

import (
	"context"
	"errors"

	"quickie-be/internal/entity"
	"quickie-be/internal/mapper"
	"quickie-be/internal/model"
	"quickie-be/internal/repository/contract"
	"quickie-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendingMachineRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VendingMachineMapper
}

func NewVendingMachineRepository(db *gorm.DB) contract.VendingMachineRepository {
	return &VendingMachineRepositoryImpl{
		db:     db,
		mapper: mapper.NewVendingMachineMapper(),
	}
}

func (r *VendingMachineRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VendingMachineRepositoryImpl) Create(ctx context.Context, machine *entity.VendingMachine) error {
	m := r.mapper.ToModel(machine)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*machine = *r.mapper.ToEntity(m)
	return nil
}

func (r *VendingMachineRepositoryImpl) Update(ctx context.Context, machine *entity.VendingMachine) error {
	m := r.mapper.ToModel(machine)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*machine = *r.mapper.ToEntity(m)
	return nil
}

func (r *VendingMachineRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.VendingMachine{}, id).Error
}

func (r *VendingMachineRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VendingMachine, error) {
	var m model.VendingMachine
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VendingMachineRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VendingMachine, error) {
	var models []*model.VendingMachine
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VendingMachineRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.VendingMachine{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
