package service

import (
	"context"
	"sort"

	"quickie-be/internal/dto"
	"quickie-be/internal/repository/specification"
	"quickie-be/internal/repository/unitofwork"
	"quickie-be/pkg/scoring"

	"github.com/google/uuid"
)

const insightsTopN = 5

type IInsightsService interface {
	Summary(ctx context.Context, userId uuid.UUID, query *dto.InsightsQuery) (*dto.InsightsResponse, error)
}

type insightsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewInsightsService(uowFactory unitofwork.RepositoryFactory) IInsightsService {
	return &insightsService{
		uowFactory: uowFactory,
	}
}

// topCounts sorts a tally map into the topN entries, largest count first.
// Equal counts break alphabetically so the output is deterministic.
func topCounts(counts map[string]int, topN int) []dto.NameCount {
	out := make([]dto.NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, dto.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if topN < len(out) {
		out = out[:topN]
	}
	return out
}

func (s *insightsService) Summary(ctx context.Context, userId uuid.UUID, query *dto.InsightsQuery) (*dto.InsightsResponse, error) {
	source := scoring.RatingSourcePersonal
	if query.RatingSource == "catalog" {
		source = scoring.RatingSourceCatalog
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	owned := specification.OwnedBy{UserID: userId}

	reviews, err := uow.ReviewRepository().FindAll(ctx, owned)
	if err != nil {
		return nil, err
	}
	collection, err := uow.CollectionItemRepository().FindAll(ctx, owned)
	if err != nil {
		return nil, err
	}

	// The shelf is collection plus anything reviewed; a review implies
	// the user knows the perfume even if they never collected it.
	ratings := make(map[uuid.UUID]float64, len(reviews))
	shelf := make([]uuid.UUID, 0, len(collection)+len(reviews))
	seen := make(map[uuid.UUID]bool)

	for _, c := range collection {
		if !seen[c.PerfumeId] {
			seen[c.PerfumeId] = true
			shelf = append(shelf, c.PerfumeId)
		}
	}
	for _, r := range reviews {
		ratings[r.PerfumeId] = float64(r.Rating)
		if !seen[r.PerfumeId] {
			seen[r.PerfumeId] = true
			shelf = append(shelf, r.PerfumeId)
		}
	}

	perfumes, err := perfumesByIds(ctx, uow, shelf)
	if err != nil {
		return nil, err
	}

	entries := make([]scoring.RatedItem, 0, len(shelf))
	for _, id := range shelf {
		perfume, ok := perfumes[id]
		if !ok {
			continue
		}
		entry := scoring.RatedItem{Item: toCatalogItem(perfume)}
		if rating, ok := ratings[id]; ok {
			r := rating
			entry.Rating = &r
		}
		entries = append(entries, entry)
	}

	summary := scoring.Aggregate(entries, source)

	var avgRating *float64
	if summary.RatedCount > 0 {
		avg := summary.TotalRating / float64(summary.RatedCount)
		avgRating = &avg
	}

	return &dto.InsightsResponse{
		TopNotes:      topCounts(summary.Notes, insightsTopN),
		TopBrands:     topCounts(summary.Brands, insightsTopN),
		AverageRating: avgRating,
		RatedCount:    summary.RatedCount,
		TotalPerfumes: len(entries),
	}, nil
}
