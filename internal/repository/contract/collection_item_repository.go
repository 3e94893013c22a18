package contract

import (
	"context"

	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CollectionItemRepository interface {
	Create(ctx context.Context, item *entity.CollectionItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollectionItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollectionItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
