package entity

import (
	"time"

	"github.com/google/uuid"
)

// PerfumeNote is a single scent descriptor with its prominence within
// the perfume (percentage, 0-100).
type PerfumeNote struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// PerfumeNoteGroup is one layer of the scent pyramid.
type PerfumeNoteGroup struct {
	Label string        `json:"label"`
	Notes []PerfumeNote `json:"notes"`
}

type Perfume struct {
	Id          uuid.UUID
	Name        string
	Brand       string
	Description string
	Price       float64
	ImageURL    string
	Tags        []string
	NoteGroups  []PerfumeNoteGroup
	AvgRating   float64
	RatingCount int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}
