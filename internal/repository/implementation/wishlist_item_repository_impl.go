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

type WishlistItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InteractionMapper
}

func NewWishlistItemRepository(db *gorm.DB) contract.WishlistItemRepository {
	return &WishlistItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewInteractionMapper(),
	}
}

func (r *WishlistItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WishlistItemRepositoryImpl) Create(ctx context.Context, item *entity.WishlistItem) error {
	m := r.mapper.WishlistToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.WishlistToEntity(m)
	return nil
}

func (r *WishlistItemRepositoryImpl) Update(ctx context.Context, item *entity.WishlistItem) error {
	m := r.mapper.WishlistToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.WishlistToEntity(m)
	return nil
}

func (r *WishlistItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WishlistItem{}, id).Error
}

func (r *WishlistItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WishlistItem, error) {
	var m model.WishlistItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.WishlistToEntity(&m), nil
}

func (r *WishlistItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WishlistItem, error) {
	var models []*model.WishlistItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.WishlistToEntities(models), nil
}

func (r *WishlistItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WishlistItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
