package service

import (
	"testing"

	"quickie-be/internal/entity"
)

func TestAggregateRating(t *testing.T) {
	tests := []struct {
		name      string
		ratings   []int
		wantAvg   float64
		wantCount int
	}{
		{name: "no reviews resets to zero", ratings: nil, wantAvg: 0, wantCount: 0},
		{name: "single review", ratings: []int{4}, wantAvg: 4, wantCount: 1},
		{name: "mean of several", ratings: []int{5, 4, 3}, wantAvg: 4, wantCount: 3},
		{name: "non integer mean", ratings: []int{5, 4}, wantAvg: 4.5, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]*entity.Review, len(tt.ratings))
			for i, r := range tt.ratings {
				reviews[i] = &entity.Review{Rating: r}
			}

			avg, count := aggregateRating(reviews)
			if avg != tt.wantAvg {
				t.Errorf("avg = %v, want %v", avg, tt.wantAvg)
			}
			if count != tt.wantCount {
				t.Errorf("count = %d, want %d", count, tt.wantCount)
			}
		})
	}
}
