package contract

import (
	"context"

	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WishlistItemRepository interface {
	Create(ctx context.Context, item *entity.WishlistItem) error
	Update(ctx context.Context, item *entity.WishlistItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WishlistItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WishlistItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
