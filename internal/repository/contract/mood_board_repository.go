package contract

import (
	"context"

	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MoodBoardRepository interface {
	Create(ctx context.Context, board *entity.MoodBoard) error
	Update(ctx context.Context, board *entity.MoodBoard) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodBoard, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodBoard, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
