package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddCollectionItemRequest struct {
	PerfumeId uuid.UUID `json:"perfume_id" validate:"required"`
}

type CollectionItemResponse struct {
	Id        uuid.UUID       `json:"id"`
	Perfume   PerfumeResponse `json:"perfume"`
	CreatedAt time.Time       `json:"created_at"`
}

type AddWishlistItemRequest struct {
	PerfumeId uuid.UUID `json:"perfume_id" validate:"required"`
	Priority  int       `json:"priority" validate:"gte=0,lte=10"`
}

type UpdateWishlistPriorityRequest struct {
	Id       uuid.UUID
	Priority int `json:"priority" validate:"gte=0,lte=10"`
}

type WishlistItemResponse struct {
	Id        uuid.UUID       `json:"id"`
	Perfume   PerfumeResponse `json:"perfume"`
	Priority  int             `json:"priority"`
	CreatedAt time.Time       `json:"created_at"`
}
