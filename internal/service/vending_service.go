package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"quickie-be/internal/dto"
	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"
	"quickie-be/internal/repository/unitofwork"

	"quickie-be/pkg/events"
	pktNats "quickie-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	defaultNearbyRadiusKm = 10
	earthRadiusKm         = 6371
)

type IVendingService interface {
	Create(ctx context.Context, req *dto.CreateVendingMachineRequest) (*dto.CreateVendingMachineResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.VendingMachineResponse, error)
	List(ctx context.Context) ([]*dto.VendingMachineResponse, error)
	UpdateStock(ctx context.Context, req *dto.UpdateStockRequest) (*dto.VendingMachineResponse, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateMachineStatusRequest) (*dto.VendingMachineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Nearby(ctx context.Context, query *dto.NearbyMachinesQuery) ([]*dto.NearbyMachineResponse, error)
}

type vendingService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewVendingService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IVendingService {
	return &vendingService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func stockFromDTO(stock []dto.StockEntryDTO) []entity.StockEntry {
	out := make([]entity.StockEntry, len(stock))
	for i, s := range stock {
		out[i] = entity.StockEntry{PerfumeId: s.PerfumeId, Quantity: s.Quantity}
	}
	return out
}

func stockToDTO(stock []entity.StockEntry) []dto.StockEntryDTO {
	out := make([]dto.StockEntryDTO, len(stock))
	for i, s := range stock {
		out[i] = dto.StockEntryDTO{PerfumeId: s.PerfumeId, Quantity: s.Quantity}
	}
	return out
}

func toVendingMachineResponse(m *entity.VendingMachine) *dto.VendingMachineResponse {
	return &dto.VendingMachineResponse{
		Id:        m.Id,
		Name:      m.Name,
		Address:   m.Address,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Status:    string(m.Status),
		Stock:     stockToDTO(m.Stock),
		CreatedAt: m.CreatedAt,
	}
}

// haversineKm computes the great-circle distance between two points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// boundingBox expands a center point into a lat/lon box for the SQL
// prefilter. Longitude degrees shrink toward the poles.
func boundingBox(lat, lon, radiusKm float64) specification.WithinBounds {
	latDelta := radiusKm / 111.0
	lonDelta := latDelta
	if cos := math.Cos(lat * math.Pi / 180); cos > 0.01 {
		lonDelta = latDelta / cos
	}
	return specification.WithinBounds{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLon: lon - lonDelta,
		MaxLon: lon + lonDelta,
	}
}

// restockedEntries reports stock entries whose quantity rose from zero,
// which is what wishlist holders want to hear about.
func restockedEntries(before, after []entity.StockEntry) []entity.StockEntry {
	prev := make(map[uuid.UUID]int, len(before))
	for _, s := range before {
		prev[s.PerfumeId] = s.Quantity
	}
	var out []entity.StockEntry
	for _, s := range after {
		if s.Quantity > 0 && prev[s.PerfumeId] == 0 {
			out = append(out, s)
		}
	}
	return out
}

func (s *vendingService) Create(ctx context.Context, req *dto.CreateVendingMachineRequest) (*dto.CreateVendingMachineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	machine := &entity.VendingMachine{
		Id:        uuid.New(),
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    entity.MachineStatusActive,
		Stock:     []entity.StockEntry{},
		CreatedAt: time.Now(),
	}

	if err := uow.VendingMachineRepository().Create(ctx, machine); err != nil {
		return nil, err
	}

	return &dto.CreateVendingMachineResponse{Id: machine.Id}, nil
}

func (s *vendingService) Show(ctx context.Context, id uuid.UUID) (*dto.VendingMachineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	machine, err := uow.VendingMachineRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, errors.New("vending machine not found")
	}
	return toVendingMachineResponse(machine), nil
}

func (s *vendingService) List(ctx context.Context) ([]*dto.VendingMachineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	machines, err := uow.VendingMachineRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.VendingMachineResponse, len(machines))
	for i, m := range machines {
		out[i] = toVendingMachineResponse(m)
	}
	return out, nil
}

func (s *vendingService) UpdateStock(ctx context.Context, req *dto.UpdateStockRequest) (*dto.VendingMachineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	machine, err := uow.VendingMachineRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, errors.New("vending machine not found")
	}

	newStock := stockFromDTO(req.Stock)
	restocked := restockedEntries(machine.Stock, newStock)

	machine.Stock = newStock
	if err := uow.VendingMachineRepository().Update(ctx, machine); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		for _, entry := range restocked {
			event := events.BaseEvent{
				Type: "PERFUME_RESTOCKED",
				Data: map[string]interface{}{
					"machine_id":   machine.Id,
					"machine_name": machine.Name,
					"perfume_id":   entry.PerfumeId,
					"quantity":     entry.Quantity,
				},
				OccurredAt: time.Now(),
			}
			if err := s.eventPublisher.Publish(ctx, event); err != nil {
				fmt.Printf("[WARN] Failed to publish PERFUME_RESTOCKED event: %v\n", err)
			}
		}
	}

	return toVendingMachineResponse(machine), nil
}

func (s *vendingService) UpdateStatus(ctx context.Context, req *dto.UpdateMachineStatusRequest) (*dto.VendingMachineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	machine, err := uow.VendingMachineRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, errors.New("vending machine not found")
	}

	machine.Status = entity.MachineStatus(req.Status)
	if err := uow.VendingMachineRepository().Update(ctx, machine); err != nil {
		return nil, err
	}
	return toVendingMachineResponse(machine), nil
}

func (s *vendingService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	machine, err := uow.VendingMachineRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if machine == nil {
		return errors.New("vending machine not found")
	}
	return uow.VendingMachineRepository().Delete(ctx, id)
}

func (s *vendingService) Nearby(ctx context.Context, query *dto.NearbyMachinesQuery) ([]*dto.NearbyMachineResponse, error) {
	radius := query.RadiusKm
	if radius <= 0 {
		radius = defaultNearbyRadiusKm
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	machines, err := uow.VendingMachineRepository().FindAll(ctx,
		boundingBox(query.Latitude, query.Longitude, radius),
		specification.ByStatus{Status: string(entity.MachineStatusActive)},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.NearbyMachineResponse, 0, len(machines))
	for _, m := range machines {
		// The box admits corners outside the circle; re-check exact distance.
		distance := haversineKm(query.Latitude, query.Longitude, m.Latitude, m.Longitude)
		if distance > radius {
			continue
		}
		out = append(out, &dto.NearbyMachineResponse{
			VendingMachineResponse: *toVendingMachineResponse(m),
			DistanceKm:             math.Round(distance*100) / 100,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	return out, nil
}
