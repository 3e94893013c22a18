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

type MoodBoardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MoodBoardMapper
}

func NewMoodBoardRepository(db *gorm.DB) contract.MoodBoardRepository {
	return &MoodBoardRepositoryImpl{
		db:     db,
		mapper: mapper.NewMoodBoardMapper(),
	}
}

func (r *MoodBoardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MoodBoardRepositoryImpl) Create(ctx context.Context, board *entity.MoodBoard) error {
	m := r.mapper.ToModel(board)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*board = *r.mapper.ToEntity(m)
	return nil
}

func (r *MoodBoardRepositoryImpl) Update(ctx context.Context, board *entity.MoodBoard) error {
	m := r.mapper.ToModel(board)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*board = *r.mapper.ToEntity(m)
	return nil
}

func (r *MoodBoardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MoodBoard{}, id).Error
}

func (r *MoodBoardRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodBoard, error) {
	var m model.MoodBoard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MoodBoardRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodBoard, error) {
	var models []*model.MoodBoard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MoodBoardRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MoodBoard{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
