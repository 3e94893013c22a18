package specification

import (
	"gorm.io/gorm"
)

// WithinBounds is a bounding-box prefilter for nearby-machine queries.
// Exact distance is computed in the service layer.
type WithinBounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

func (s WithinBounds) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("latitude BETWEEN ? AND ?", s.MinLat, s.MaxLat).
		Where("longitude BETWEEN ? AND ?", s.MinLon, s.MaxLon)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
