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

type ICollectionService interface {
	Add(ctx context.Context, userId uuid.UUID, req *dto.AddCollectionItemRequest) (*dto.CollectionItemResponse, error)
	Remove(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID) ([]*dto.CollectionItemResponse, error)
}

type collectionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCollectionService(uowFactory unitofwork.RepositoryFactory) ICollectionService {
	return &collectionService{
		uowFactory: uowFactory,
	}
}

func (s *collectionService) Add(ctx context.Context, userId uuid.UUID, req *dto.AddCollectionItemRequest) (*dto.CollectionItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	perfume, err := uow.PerfumeRepository().FindOne(ctx, specification.ByID{ID: req.PerfumeId})
	if err != nil {
		return nil, err
	}
	if perfume == nil {
		return nil, errors.New("perfume not found")
	}

	existing, err := uow.CollectionItemRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByPerfumeID{PerfumeID: req.PerfumeId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("perfume already in collection")
	}

	item := &entity.CollectionItem{
		Id:        uuid.New(),
		UserId:    userId,
		PerfumeId: req.PerfumeId,
		CreatedAt: time.Now(),
	}

	if err := uow.CollectionItemRepository().Create(ctx, item); err != nil {
		return nil, err
	}

	return &dto.CollectionItemResponse{
		Id:        item.Id,
		Perfume:   toPerfumeResponse(perfume),
		CreatedAt: item.CreatedAt,
	}, nil
}

func (s *collectionService) Remove(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.CollectionItemRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if item == nil || item.UserId != userId {
		return errors.New("collection item not found")
	}
	return uow.CollectionItemRepository().Delete(ctx, id)
}

func (s *collectionService) List(ctx context.Context, userId uuid.UUID) ([]*dto.CollectionItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.CollectionItemRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	perfumes, err := perfumesByIds(ctx, uow, collectionPerfumeIds(items))
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CollectionItemResponse, 0, len(items))
	for _, item := range items {
		perfume, ok := perfumes[item.PerfumeId]
		if !ok {
			// Perfume soft-deleted after it was collected; hide the item.
			continue
		}
		out = append(out, &dto.CollectionItemResponse{
			Id:        item.Id,
			Perfume:   toPerfumeResponse(perfume),
			CreatedAt: item.CreatedAt,
		})
	}
	return out, nil
}

func collectionPerfumeIds(items []*entity.CollectionItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.PerfumeId
	}
	return ids
}

// perfumesByIds loads the referenced perfumes in one query and indexes
// them for joining against interaction rows.
func perfumesByIds(ctx context.Context, uow unitofwork.UnitOfWork, ids []uuid.UUID) (map[uuid.UUID]*entity.Perfume, error) {
	out := make(map[uuid.UUID]*entity.Perfume, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	perfumes, err := uow.PerfumeRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	for _, p := range perfumes {
		out[p.Id] = p
	}
	return out, nil
}
