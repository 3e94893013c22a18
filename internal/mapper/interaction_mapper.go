package mapper

import (
	"quickie-be/internal/entity"
	"quickie-be/internal/model"
)

type InteractionMapper struct{}

func NewInteractionMapper() *InteractionMapper {
	return &InteractionMapper{}
}

func (m *InteractionMapper) CollectionToEntity(c *model.CollectionItem) *entity.CollectionItem {
	if c == nil {
		return nil
	}
	return &entity.CollectionItem{
		Id:        c.Id,
		UserId:    c.UserId,
		PerfumeId: c.PerfumeId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *InteractionMapper) CollectionToModel(c *entity.CollectionItem) *model.CollectionItem {
	if c == nil {
		return nil
	}
	return &model.CollectionItem{
		Id:        c.Id,
		UserId:    c.UserId,
		PerfumeId: c.PerfumeId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *InteractionMapper) CollectionToEntities(items []*model.CollectionItem) []*entity.CollectionItem {
	entities := make([]*entity.CollectionItem, len(items))
	for i, c := range items {
		entities[i] = m.CollectionToEntity(c)
	}
	return entities
}

func (m *InteractionMapper) WishlistToEntity(w *model.WishlistItem) *entity.WishlistItem {
	if w == nil {
		return nil
	}
	return &entity.WishlistItem{
		Id:        w.Id,
		UserId:    w.UserId,
		PerfumeId: w.PerfumeId,
		Priority:  w.Priority,
		CreatedAt: w.CreatedAt,
	}
}

func (m *InteractionMapper) WishlistToModel(w *entity.WishlistItem) *model.WishlistItem {
	if w == nil {
		return nil
	}
	return &model.WishlistItem{
		Id:        w.Id,
		UserId:    w.UserId,
		PerfumeId: w.PerfumeId,
		Priority:  w.Priority,
		CreatedAt: w.CreatedAt,
	}
}

func (m *InteractionMapper) WishlistToEntities(items []*model.WishlistItem) []*entity.WishlistItem {
	entities := make([]*entity.WishlistItem, len(items))
	for i, w := range items {
		entities[i] = m.WishlistToEntity(w)
	}
	return entities
}
