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

type IPerfumeService interface {
	Create(ctx context.Context, req *dto.CreatePerfumeRequest) (*dto.CreatePerfumeResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.PerfumeResponse, error)
	List(ctx context.Context, query *dto.ListPerfumesQuery) (*dto.ListPerfumesResponse, error)
	Update(ctx context.Context, req *dto.UpdatePerfumeRequest) (*dto.PerfumeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type perfumeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPerfumeService(uowFactory unitofwork.RepositoryFactory) IPerfumeService {
	return &perfumeService{
		uowFactory: uowFactory,
	}
}

func noteGroupsFromDTO(groups []dto.PerfumeNoteGroupDTO) []entity.PerfumeNoteGroup {
	out := make([]entity.PerfumeNoteGroup, len(groups))
	for i, g := range groups {
		notes := make([]entity.PerfumeNote, len(g.Notes))
		for j, n := range g.Notes {
			notes[j] = entity.PerfumeNote{Name: n.Name, Weight: n.Weight}
		}
		out[i] = entity.PerfumeNoteGroup{Label: g.Label, Notes: notes}
	}
	return out
}

func noteGroupsToDTO(groups []entity.PerfumeNoteGroup) []dto.PerfumeNoteGroupDTO {
	out := make([]dto.PerfumeNoteGroupDTO, len(groups))
	for i, g := range groups {
		notes := make([]dto.PerfumeNoteDTO, len(g.Notes))
		for j, n := range g.Notes {
			notes[j] = dto.PerfumeNoteDTO{Name: n.Name, Weight: n.Weight}
		}
		out[i] = dto.PerfumeNoteGroupDTO{Label: g.Label, Notes: notes}
	}
	return out
}

func toPerfumeResponse(p *entity.Perfume) dto.PerfumeResponse {
	return dto.PerfumeResponse{
		Id:          p.Id,
		Name:        p.Name,
		Brand:       p.Brand,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Tags:        p.Tags,
		NoteGroups:  noteGroupsToDTO(p.NoteGroups),
		AvgRating:   p.AvgRating,
		RatingCount: p.RatingCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (s *perfumeService) Create(ctx context.Context, req *dto.CreatePerfumeRequest) (*dto.CreatePerfumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	perfume := &entity.Perfume{
		Id:          uuid.New(),
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
		NoteGroups:  noteGroupsFromDTO(req.NoteGroups),
		CreatedAt:   time.Now(),
	}

	if err := uow.PerfumeRepository().Create(ctx, perfume); err != nil {
		return nil, err
	}

	return &dto.CreatePerfumeResponse{Id: perfume.Id}, nil
}

func (s *perfumeService) Show(ctx context.Context, id uuid.UUID) (*dto.PerfumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	perfume, err := uow.PerfumeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if perfume == nil {
		return nil, errors.New("perfume not found")
	}

	res := toPerfumeResponse(perfume)
	return &res, nil
}

func listSortSpec(sort string) specification.Specification {
	switch sort {
	case "price_asc":
		return specification.OrderBy{Field: "price"}
	case "price_desc":
		return specification.OrderBy{Field: "price", Desc: true}
	case "rating":
		return specification.OrderBy{Field: "avg_rating", Desc: true}
	default:
		return specification.OrderBy{Field: "created_at", Desc: true}
	}
}

func (s *perfumeService) List(ctx context.Context, query *dto.ListPerfumesQuery) (*dto.ListPerfumesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	var filters []specification.Specification
	if query.Brand != "" {
		filters = append(filters, specification.ByBrand{Brand: query.Brand})
	}
	if query.Tag != "" {
		filters = append(filters, specification.ByTag{Tag: query.Tag})
	}
	if query.Search != "" {
		filters = append(filters, specification.NameSearch{Term: query.Search})
	}

	total, err := uow.PerfumeRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		listSortSpec(query.Sort),
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	perfumes, err := uow.PerfumeRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PerfumeResponse, len(perfumes))
	for i, p := range perfumes {
		items[i] = toPerfumeResponse(p)
	}

	return &dto.ListPerfumesResponse{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func (s *perfumeService) Update(ctx context.Context, req *dto.UpdatePerfumeRequest) (*dto.PerfumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	perfume, err := uow.PerfumeRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if perfume == nil {
		return nil, errors.New("perfume not found")
	}

	perfume.Name = req.Name
	perfume.Brand = req.Brand
	perfume.Description = req.Description
	perfume.Price = req.Price
	perfume.ImageURL = req.ImageURL
	perfume.Tags = req.Tags
	perfume.NoteGroups = noteGroupsFromDTO(req.NoteGroups)

	if err := uow.PerfumeRepository().Update(ctx, perfume); err != nil {
		return nil, err
	}

	res := toPerfumeResponse(perfume)
	return &res, nil
}

func (s *perfumeService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	perfume, err := uow.PerfumeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if perfume == nil {
		return errors.New("perfume not found")
	}
	return uow.PerfumeRepository().Delete(ctx, id)
}
