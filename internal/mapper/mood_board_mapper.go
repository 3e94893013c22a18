package mapper

import (
	"encoding/json"
	"time"

	"quickie-be/internal/entity"
	"quickie-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MoodBoardMapper struct{}

func NewMoodBoardMapper() *MoodBoardMapper {
	return &MoodBoardMapper{}
}

func (m *MoodBoardMapper) ToEntity(b *model.MoodBoard) *entity.MoodBoard {
	if b == nil {
		return nil
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	var perfumeIds []uuid.UUID
	if len(b.PerfumeIds) > 0 {
		_ = json.Unmarshal(b.PerfumeIds, &perfumeIds)
	}

	return &entity.MoodBoard{
		Id:          b.Id,
		UserId:      b.UserId,
		Name:        b.Name,
		Description: b.Description,
		PerfumeIds:  perfumeIds,
		Layout:      json.RawMessage(b.Layout),
		IsPublic:    b.IsPublic,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *MoodBoardMapper) ToModel(b *entity.MoodBoard) *model.MoodBoard {
	if b == nil {
		return nil
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	idsJSON, _ := json.Marshal(b.PerfumeIds)

	return &model.MoodBoard{
		Id:          b.Id,
		UserId:      b.UserId,
		Name:        b.Name,
		Description: b.Description,
		PerfumeIds:  datatypes.JSON(idsJSON),
		Layout:      datatypes.JSON(b.Layout),
		IsPublic:    b.IsPublic,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *MoodBoardMapper) ToEntities(boards []*model.MoodBoard) []*entity.MoodBoard {
	entities := make([]*entity.MoodBoard, len(boards))
	for i, b := range boards {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
