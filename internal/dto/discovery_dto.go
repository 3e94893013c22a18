package dto

import (
	"github.com/google/uuid"
)

// RecommendationsQuery selects how many ranked perfumes to return.
type RecommendationsQuery struct {
	Limit int `query:"limit" validate:"omitempty,gte=1,lte=50"`
}

type RecommendationResponse struct {
	Perfume PerfumeResponse `json:"perfume"`
	Score   float64         `json:"score"`
}

type RecommendationsResponse struct {
	Items     []RecommendationResponse `json:"items"`
	ColdStart bool                     `json:"cold_start"`
}

// InsightsQuery picks the rating source for the summary. "personal" uses
// the caller's own review ratings, "catalog" the aggregate perfume rating.
type InsightsQuery struct {
	RatingSource string `query:"rating_source" validate:"omitempty,oneof=personal catalog"`
}

type InsightsResponse struct {
	TopNotes      []NameCount `json:"top_notes"`
	TopBrands     []NameCount `json:"top_brands"`
	AverageRating *float64    `json:"average_rating"`
	RatedCount    int         `json:"rated_count"`
	TotalPerfumes int         `json:"total_perfumes"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ProfileDebugResponse struct {
	UserId uuid.UUID          `json:"user_id"`
	Tags   map[string]float64 `json:"tags"`
	Notes  map[string]float64 `json:"notes"`
	Empty  bool               `json:"empty"`
}
