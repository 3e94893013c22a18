package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateMoodBoardRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	PerfumeIds  []uuid.UUID     `json:"perfume_ids"`
	Layout      json.RawMessage `json:"layout"`
	IsPublic    bool            `json:"is_public"`
}

type CreateMoodBoardResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateMoodBoardRequest struct {
	Id          uuid.UUID
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	PerfumeIds  []uuid.UUID     `json:"perfume_ids"`
	Layout      json.RawMessage `json:"layout"`
	IsPublic    bool            `json:"is_public"`
}

type MoodBoardResponse struct {
	Id          uuid.UUID       `json:"id"`
	UserId      uuid.UUID       `json:"user_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	PerfumeIds  []uuid.UUID     `json:"perfume_ids"`
	Layout      json.RawMessage `json:"layout,omitempty"`
	IsPublic    bool            `json:"is_public"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at"`
}
