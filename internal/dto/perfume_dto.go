package dto

import (
	"time"

	"github.com/google/uuid"
)

type PerfumeNoteDTO struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight" validate:"gte=0,lte=100"`
}

type PerfumeNoteGroupDTO struct {
	Label string           `json:"label" validate:"required"`
	Notes []PerfumeNoteDTO `json:"notes"`
}

type CreatePerfumeRequest struct {
	Name        string                `json:"name" validate:"required"`
	Brand       string                `json:"brand" validate:"required"`
	Description string                `json:"description"`
	Price       float64               `json:"price" validate:"gte=0"`
	ImageURL    string                `json:"image_url" validate:"omitempty,url"`
	Tags        []string              `json:"tags"`
	NoteGroups  []PerfumeNoteGroupDTO `json:"note_groups" validate:"dive"`
}

type CreatePerfumeResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdatePerfumeRequest struct {
	Id          uuid.UUID
	Name        string                `json:"name" validate:"required"`
	Brand       string                `json:"brand" validate:"required"`
	Description string                `json:"description"`
	Price       float64               `json:"price" validate:"gte=0"`
	ImageURL    string                `json:"image_url" validate:"omitempty,url"`
	Tags        []string              `json:"tags"`
	NoteGroups  []PerfumeNoteGroupDTO `json:"note_groups" validate:"dive"`
}

type PerfumeResponse struct {
	Id          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Brand       string                `json:"brand"`
	Description string                `json:"description"`
	Price       float64               `json:"price"`
	ImageURL    string                `json:"image_url,omitempty"`
	Tags        []string              `json:"tags"`
	NoteGroups  []PerfumeNoteGroupDTO `json:"note_groups"`
	AvgRating   float64               `json:"avg_rating"`
	RatingCount int                   `json:"rating_count"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at"`
}

// ListPerfumesQuery carries the query-string filters of the catalog listing.
type ListPerfumesQuery struct {
	Brand  string `query:"brand"`
	Tag    string `query:"tag"`
	Search string `query:"search"`
	Sort   string `query:"sort" validate:"omitempty,oneof=newest price_asc price_desc rating"`
	Page   int    `query:"page" validate:"omitempty,gte=1"`
	Limit  int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

type ListPerfumesResponse struct {
	Items []PerfumeResponse `json:"items"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
}
