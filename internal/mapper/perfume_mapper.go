package mapper

import (
	"encoding/json"
	"time"

	"quickie-be/internal/entity"
	"quickie-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PerfumeMapper struct{}

func NewPerfumeMapper() *PerfumeMapper {
	return &PerfumeMapper{}
}

func (m *PerfumeMapper) ToEntity(p *model.Perfume) *entity.Perfume {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	var tags []string
	if len(p.Tags) > 0 {
		_ = json.Unmarshal(p.Tags, &tags)
	}

	var groups []entity.PerfumeNoteGroup
	if len(p.NoteGroups) > 0 {
		_ = json.Unmarshal(p.NoteGroups, &groups)
	}

	return &entity.Perfume{
		Id:          p.Id,
		Name:        p.Name,
		Brand:       p.Brand,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Tags:        tags,
		NoteGroups:  groups,
		AvgRating:   p.AvgRating,
		RatingCount: p.RatingCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *PerfumeMapper) ToModel(p *entity.Perfume) *model.Perfume {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	tagsJSON, _ := json.Marshal(p.Tags)
	groupsJSON, _ := json.Marshal(p.NoteGroups)

	return &model.Perfume{
		Id:          p.Id,
		Name:        p.Name,
		Brand:       p.Brand,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Tags:        datatypes.JSON(tagsJSON),
		NoteGroups:  datatypes.JSON(groupsJSON),
		AvgRating:   p.AvgRating,
		RatingCount: p.RatingCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *PerfumeMapper) ToEntities(perfumes []*model.Perfume) []*entity.Perfume {
	entities := make([]*entity.Perfume, len(perfumes))
	for i, p := range perfumes {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
