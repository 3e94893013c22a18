package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MoodBoard struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Name        string
	Description string
	PerfumeIds  []uuid.UUID

	// Layout is opaque board geometry owned by the frontend.
	Layout json.RawMessage

	IsPublic  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
