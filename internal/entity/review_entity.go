package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	Id        uuid.UUID
	PerfumeId uuid.UUID
	UserId    uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
