package service

import (
	"context"
	"time"

	"quickie-be/internal/dto"
	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"
	"quickie-be/internal/repository/unitofwork"
	"quickie-be/pkg/scoring"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultRecommendationLimit = 10
	catalogCacheKey            = "catalog_snapshot"
)

type IRecommendationService interface {
	Recommend(ctx context.Context, userId uuid.UUID, query *dto.RecommendationsQuery) (*dto.RecommendationsResponse, error)
	Profile(ctx context.Context, userId uuid.UUID) (*dto.ProfileDebugResponse, error)
}

// catalogSnapshot is the cached scoring view of the whole catalog plus
// an index back to the full perfume rows for response building.
type catalogSnapshot struct {
	items    []scoring.CatalogItem
	perfumes map[string]*entity.Perfume
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewRecommendationService(uowFactory unitofwork.RepositoryFactory) IRecommendationService {
	return &recommendationService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func toCatalogItem(p *entity.Perfume) scoring.CatalogItem {
	groups := make([]scoring.NoteGroup, len(p.NoteGroups))
	for i, g := range p.NoteGroups {
		notes := make([]scoring.Note, len(g.Notes))
		for j, n := range g.Notes {
			notes[j] = scoring.Note{Name: n.Name, Weight: n.Weight}
		}
		groups[i] = scoring.NoteGroup{Label: g.Label, Notes: notes}
	}

	var avg *float64
	if p.RatingCount > 0 {
		v := p.AvgRating
		avg = &v
	}

	return scoring.CatalogItem{
		ID:        p.Id.String(),
		Brand:     p.Brand,
		Tags:      p.Tags,
		Notes:     groups,
		AvgRating: avg,
	}
}

// loadCatalog returns the scoring snapshot, refreshing it from the
// database every few minutes. Catalog order is recency, which is what
// cold-start users see.
func (s *recommendationService) loadCatalog(ctx context.Context, uow unitofwork.UnitOfWork) (*catalogSnapshot, error) {
	if cached, found := s.cache.Get(catalogCacheKey); found {
		return cached.(*catalogSnapshot), nil
	}

	perfumes, err := uow.PerfumeRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	snapshot := &catalogSnapshot{
		items:    make([]scoring.CatalogItem, len(perfumes)),
		perfumes: make(map[string]*entity.Perfume, len(perfumes)),
	}
	for i, p := range perfumes {
		snapshot.items[i] = toCatalogItem(p)
		snapshot.perfumes[p.Id.String()] = p
	}

	s.cache.Set(catalogCacheKey, snapshot, gocache.DefaultExpiration)
	return snapshot, nil
}

// buildInteractions merges a user's reviews, collection, and wishlist
// into one interaction per perfume. A rating always wins over a bare
// possession flag for the same perfume.
func buildInteractions(reviews []*entity.Review, collection []*entity.CollectionItem, wishlist []*entity.WishlistItem) []scoring.Interaction {
	byId := make(map[string]*scoring.Interaction)
	order := make([]string, 0, len(reviews)+len(collection)+len(wishlist))

	get := func(perfumeId uuid.UUID) *scoring.Interaction {
		id := perfumeId.String()
		if in, ok := byId[id]; ok {
			return in
		}
		in := &scoring.Interaction{ItemID: id}
		byId[id] = in
		order = append(order, id)
		return in
	}

	for _, r := range reviews {
		rating := float64(r.Rating)
		get(r.PerfumeId).Rating = &rating
	}
	for _, c := range collection {
		get(c.PerfumeId).InCollection = true
	}
	for _, w := range wishlist {
		get(w.PerfumeId).Wishlisted = true
	}

	out := make([]scoring.Interaction, len(order))
	for i, id := range order {
		out[i] = *byId[id]
	}
	return out
}

func (s *recommendationService) userInteractions(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) ([]scoring.Interaction, error) {
	owned := specification.OwnedBy{UserID: userId}

	reviews, err := uow.ReviewRepository().FindAll(ctx, owned)
	if err != nil {
		return nil, err
	}
	collection, err := uow.CollectionItemRepository().FindAll(ctx, owned)
	if err != nil {
		return nil, err
	}
	wishlist, err := uow.WishlistItemRepository().FindAll(ctx, owned)
	if err != nil {
		return nil, err
	}

	return buildInteractions(reviews, collection, wishlist), nil
}

func (s *recommendationService) Recommend(ctx context.Context, userId uuid.UUID, query *dto.RecommendationsQuery) (*dto.RecommendationsResponse, error) {
	limit := query.Limit
	if limit < 1 {
		limit = defaultRecommendationLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	snapshot, err := s.loadCatalog(ctx, uow)
	if err != nil {
		return nil, err
	}

	interactions, err := s.userInteractions(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	profile := scoring.BuildProfile(snapshot.items, interactions)
	ranked := scoring.Rank(snapshot.items, interactions, profile, limit)

	items := make([]dto.RecommendationResponse, 0, len(ranked))
	for _, item := range ranked {
		perfume, ok := snapshot.perfumes[item.ID]
		if !ok {
			continue
		}
		score := 0.0
		if !profile.IsEmpty() {
			score = scoring.Score(item, profile)
		}
		items = append(items, dto.RecommendationResponse{
			Perfume: toPerfumeResponse(perfume),
			Score:   score,
		})
	}

	return &dto.RecommendationsResponse{
		Items:     items,
		ColdStart: profile.IsEmpty(),
	}, nil
}

func (s *recommendationService) Profile(ctx context.Context, userId uuid.UUID) (*dto.ProfileDebugResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	snapshot, err := s.loadCatalog(ctx, uow)
	if err != nil {
		return nil, err
	}

	interactions, err := s.userInteractions(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	profile := scoring.BuildProfile(snapshot.items, interactions)

	tags := make(map[string]float64, len(profile.Tags))
	for name, b := range profile.Tags {
		tags[name] = b.Mean()
	}
	notes := make(map[string]float64, len(profile.Notes))
	for name, b := range profile.Notes {
		notes[name] = b.Mean()
	}

	return &dto.ProfileDebugResponse{
		UserId: userId,
		Tags:   tags,
		Notes:  notes,
		Empty:  profile.IsEmpty(),
	}, nil
}
