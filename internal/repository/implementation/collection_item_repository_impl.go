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

type CollectionItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InteractionMapper
}

func NewCollectionItemRepository(db *gorm.DB) contract.CollectionItemRepository {
	return &CollectionItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewInteractionMapper(),
	}
}

func (r *CollectionItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CollectionItemRepositoryImpl) Create(ctx context.Context, item *entity.CollectionItem) error {
	m := r.mapper.CollectionToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.CollectionToEntity(m)
	return nil
}

func (r *CollectionItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CollectionItem{}, id).Error
}

func (r *CollectionItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollectionItem, error) {
	var m model.CollectionItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CollectionToEntity(&m), nil
}

func (r *CollectionItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollectionItem, error) {
	var models []*model.CollectionItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CollectionToEntities(models), nil
}

func (r *CollectionItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CollectionItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
