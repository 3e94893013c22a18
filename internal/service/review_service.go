package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quickie-be/internal/dto"
	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"
	"quickie-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReviewService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReviewRequest) (*dto.CreateReviewResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	ListByPerfume(ctx context.Context, perfumeId uuid.UUID) ([]*dto.ReviewResponse, error)
	ListByUser(ctx context.Context, userId uuid.UUID) ([]*dto.ReviewResponse, error)
}

type reviewService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewReviewService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IReviewService {
	return &reviewService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:        r.Id,
		PerfumeId: r.PerfumeId,
		UserId:    r.UserId,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// publishRefresh queues an aggregate rating recompute for the perfume.
// Failures are logged, not returned: the review write already succeeded
// and the aggregate can catch up on the next write.
func (s *reviewService) publishRefresh(ctx context.Context, perfumeId uuid.UUID) {
	payload, _ := json.Marshal(dto.RefreshRatingMessage{PerfumeId: perfumeId})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish rating refresh for %s: %v\n", perfumeId, err)
	}
}

func (s *reviewService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReviewRequest) (*dto.CreateReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	perfume, err := uow.PerfumeRepository().FindOne(ctx, specification.ByID{ID: req.PerfumeId})
	if err != nil {
		return nil, err
	}
	if perfume == nil {
		return nil, errors.New("perfume not found")
	}

	existing, err := uow.ReviewRepository().FindOne(ctx,
		specification.ByPerfumeID{PerfumeID: req.PerfumeId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("you have already reviewed this perfume")
	}

	review := &entity.Review{
		Id:        uuid.New(),
		PerfumeId: req.PerfumeId,
		UserId:    userId,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := uow.ReviewRepository().Create(ctx, review); err != nil {
		return nil, err
	}

	s.publishRefresh(ctx, req.PerfumeId)

	return &dto.CreateReviewResponse{Id: review.Id}, nil
}

func (s *reviewService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	review, err := uow.ReviewRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errors.New("review not found")
	}
	if review.UserId != userId {
		return nil, errors.New("review not found")
	}

	review.Rating = req.Rating
	review.Comment = req.Comment

	if err := uow.ReviewRepository().Update(ctx, review); err != nil {
		return nil, err
	}

	s.publishRefresh(ctx, review.PerfumeId)

	return toReviewResponse(review), nil
}

func (s *reviewService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	review, err := uow.ReviewRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if review == nil {
		return errors.New("review not found")
	}
	if review.UserId != userId {
		return errors.New("review not found")
	}

	if err := uow.ReviewRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.publishRefresh(ctx, review.PerfumeId)
	return nil
}

func (s *reviewService) ListByPerfume(ctx context.Context, perfumeId uuid.UUID) ([]*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.ByPerfumeID{PerfumeID: perfumeId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ReviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = toReviewResponse(r)
	}
	return out, nil
}

func (s *reviewService) ListByUser(ctx context.Context, userId uuid.UUID) ([]*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ReviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = toReviewResponse(r)
	}
	return out, nil
}
