package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByBrand struct {
	Brand string
}

func (s ByBrand) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("brand = ?", s.Brand)
}

// ByTag matches perfumes whose JSON tags array contains the tag.
type ByTag struct {
	Tag string
}

func (s ByTag) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tags @> ?", `["`+s.Tag+`"]`)
}

// NameSearch matches name or brand case-insensitively.
type NameSearch struct {
	Term string
}

func (s NameSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("name ILIKE ? OR brand ILIKE ?", pattern, pattern)
}

type ByPerfumeID struct {
	PerfumeID uuid.UUID
}

func (s ByPerfumeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("perfume_id = ?", s.PerfumeID)
}
