package service

import (
	"context"
	"errors"
	"time"

	"quickie-be/internal/dto"
	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"
	"quickie-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWishlistService interface {
	Add(ctx context.Context, userId uuid.UUID, req *dto.AddWishlistItemRequest) (*dto.WishlistItemResponse, error)
	UpdatePriority(ctx context.Context, userId uuid.UUID, req *dto.UpdateWishlistPriorityRequest) error
	Remove(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID) ([]*dto.WishlistItemResponse, error)
}

type wishlistService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWishlistService(uowFactory unitofwork.RepositoryFactory) IWishlistService {
	return &wishlistService{
		uowFactory: uowFactory,
	}
}

func (s *wishlistService) Add(ctx context.Context, userId uuid.UUID, req *dto.AddWishlistItemRequest) (*dto.WishlistItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	perfume, err := uow.PerfumeRepository().FindOne(ctx, specification.ByID{ID: req.PerfumeId})
	if err != nil {
		return nil, err
	}
	if perfume == nil {
		return nil, errors.New("perfume not found")
	}

	existing, err := uow.WishlistItemRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByPerfumeID{PerfumeID: req.PerfumeId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("perfume already in wishlist")
	}

	item := &entity.WishlistItem{
		Id:        uuid.New(),
		UserId:    userId,
		PerfumeId: req.PerfumeId,
		Priority:  req.Priority,
		CreatedAt: time.Now(),
	}

	if err := uow.WishlistItemRepository().Create(ctx, item); err != nil {
		return nil, err
	}

	return &dto.WishlistItemResponse{
		Id:        item.Id,
		Perfume:   toPerfumeResponse(perfume),
		Priority:  item.Priority,
		CreatedAt: item.CreatedAt,
	}, nil
}

func (s *wishlistService) UpdatePriority(ctx context.Context, userId uuid.UUID, req *dto.UpdateWishlistPriorityRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.WishlistItemRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if item == nil || item.UserId != userId {
		return errors.New("wishlist item not found")
	}

	item.Priority = req.Priority
	return uow.WishlistItemRepository().Update(ctx, item)
}

func (s *wishlistService) Remove(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.WishlistItemRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if item == nil || item.UserId != userId {
		return errors.New("wishlist item not found")
	}
	return uow.WishlistItemRepository().Delete(ctx, id)
}

func (s *wishlistService) List(ctx context.Context, userId uuid.UUID) ([]*dto.WishlistItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.WishlistItemRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "priority", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.PerfumeId
	}

	perfumes, err := perfumesByIds(ctx, uow, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.WishlistItemResponse, 0, len(items))
	for _, item := range items {
		perfume, ok := perfumes[item.PerfumeId]
		if !ok {
			continue
		}
		out = append(out, &dto.WishlistItemResponse{
			Id:        item.Id,
			Perfume:   toPerfumeResponse(perfume),
			Priority:  item.Priority,
			CreatedAt: item.CreatedAt,
		})
	}
	return out, nil
}
