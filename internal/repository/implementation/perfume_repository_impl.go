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

type PerfumeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PerfumeMapper
}

func NewPerfumeRepository(db *gorm.DB) contract.PerfumeRepository {
	return &PerfumeRepositoryImpl{
		db:     db,
		mapper: mapper.NewPerfumeMapper(),
	}
}

func (r *PerfumeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PerfumeRepositoryImpl) Create(ctx context.Context, perfume *entity.Perfume) error {
	m := r.mapper.ToModel(perfume)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*perfume = *r.mapper.ToEntity(m)
	return nil
}

func (r *PerfumeRepositoryImpl) Update(ctx context.Context, perfume *entity.Perfume) error {
	m := r.mapper.ToModel(perfume)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*perfume = *r.mapper.ToEntity(m)
	return nil
}

func (r *PerfumeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Perfume{}, id).Error
}

func (r *PerfumeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Perfume, error) {
	var m model.Perfume
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PerfumeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Perfume, error) {
	var models []*model.Perfume
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PerfumeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Perfume{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PerfumeRepositoryImpl) UpdateRating(ctx context.Context, id uuid.UUID, avgRating float64, ratingCount int) error {
	return r.db.WithContext(ctx).Model(&model.Perfume{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"avg_rating":   avgRating,
			"rating_count": ratingCount,
		}).Error
}
