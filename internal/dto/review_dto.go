package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	PerfumeId uuid.UUID
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

type CreateReviewResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateReviewRequest struct {
	Id      uuid.UUID
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type ReviewResponse struct {
	Id        uuid.UUID  `json:"id"`
	PerfumeId uuid.UUID  `json:"perfume_id"`
	UserId    uuid.UUID  `json:"user_id"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
