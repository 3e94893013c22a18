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

type IMoodBoardService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMoodBoardRequest) (*dto.CreateMoodBoardResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.MoodBoardResponse, error)
	ListOwn(ctx context.Context, userId uuid.UUID) ([]*dto.MoodBoardResponse, error)
	ListPublic(ctx context.Context) ([]*dto.MoodBoardResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateMoodBoardRequest) (*dto.MoodBoardResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type moodBoardService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMoodBoardService(uowFactory unitofwork.RepositoryFactory) IMoodBoardService {
	return &moodBoardService{
		uowFactory: uowFactory,
	}
}

func toMoodBoardResponse(b *entity.MoodBoard) *dto.MoodBoardResponse {
	return &dto.MoodBoardResponse{
		Id:          b.Id,
		UserId:      b.UserId,
		Name:        b.Name,
		Description: b.Description,
		PerfumeIds:  b.PerfumeIds,
		Layout:      b.Layout,
		IsPublic:    b.IsPublic,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// validBoardPerfumeIds drops references to perfumes that no longer exist
// so a board never points at removed catalog rows.
func validBoardPerfumeIds(ctx context.Context, uow unitofwork.UnitOfWork, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	perfumes, err := perfumesByIds(ctx, uow, ids)
	if err != nil {
		return nil, err
	}
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := perfumes[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *moodBoardService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMoodBoardRequest) (*dto.CreateMoodBoardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	perfumeIds, err := validBoardPerfumeIds(ctx, uow, req.PerfumeIds)
	if err != nil {
		return nil, err
	}

	board := &entity.MoodBoard{
		Id:          uuid.New(),
		UserId:      userId,
		Name:        req.Name,
		Description: req.Description,
		PerfumeIds:  perfumeIds,
		Layout:      req.Layout,
		IsPublic:    req.IsPublic,
		CreatedAt:   time.Now(),
	}

	if err := uow.MoodBoardRepository().Create(ctx, board); err != nil {
		return nil, err
	}

	return &dto.CreateMoodBoardResponse{Id: board.Id}, nil
}

func (s *moodBoardService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.MoodBoardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	// Private boards are invisible to everyone but their owner.
	board, err := uow.MoodBoardRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.PublicOrOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, errors.New("mood board not found")
	}
	return toMoodBoardResponse(board), nil
}

func (s *moodBoardService) ListOwn(ctx context.Context, userId uuid.UUID) ([]*dto.MoodBoardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	boards, err := uow.MoodBoardRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toMoodBoardResponses(boards), nil
}

func (s *moodBoardService) ListPublic(ctx context.Context) ([]*dto.MoodBoardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	boards, err := uow.MoodBoardRepository().FindAll(ctx,
		specification.PublicOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toMoodBoardResponses(boards), nil
}

func toMoodBoardResponses(boards []*entity.MoodBoard) []*dto.MoodBoardResponse {
	out := make([]*dto.MoodBoardResponse, len(boards))
	for i, b := range boards {
		out[i] = toMoodBoardResponse(b)
	}
	return out
}

func (s *moodBoardService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateMoodBoardRequest) (*dto.MoodBoardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	board, err := uow.MoodBoardRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if board == nil || board.UserId != userId {
		return nil, errors.New("mood board not found")
	}

	perfumeIds, err := validBoardPerfumeIds(ctx, uow, req.PerfumeIds)
	if err != nil {
		return nil, err
	}

	board.Name = req.Name
	board.Description = req.Description
	board.PerfumeIds = perfumeIds
	board.Layout = req.Layout
	board.IsPublic = req.IsPublic

	if err := uow.MoodBoardRepository().Update(ctx, board); err != nil {
		return nil, err
	}

	return toMoodBoardResponse(board), nil
}

func (s *moodBoardService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	board, err := uow.MoodBoardRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if board == nil || board.UserId != userId {
		return errors.New("mood board not found")
	}
	return uow.MoodBoardRepository().Delete(ctx, id)
}
