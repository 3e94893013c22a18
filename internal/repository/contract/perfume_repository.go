package contract

import (
	"context"

	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PerfumeRepository interface {
	Create(ctx context.Context, perfume *entity.Perfume) error
	Update(ctx context.Context, perfume *entity.Perfume) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Perfume, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Perfume, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateRating overwrites the aggregate rating columns. Used by the
	// rating consumer after recomputing from reviews.
	UpdateRating(ctx context.Context, id uuid.UUID, avgRating float64, ratingCount int) error
}
