package entity

import (
	"time"

	"github.com/google/uuid"
)

// CollectionItem marks a perfume the user owns.
type CollectionItem struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	PerfumeId uuid.UUID
	CreatedAt time.Time
}

// WishlistItem marks a perfume the user wants. Priority orders the
// wishlist view; it plays no role in scoring.
type WishlistItem struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	PerfumeId uuid.UUID
	Priority  int
	CreatedAt time.Time
}
