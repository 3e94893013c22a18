package contract

import (
	"context"

	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VendingMachineRepository interface {
	Create(ctx context.Context, machine *entity.VendingMachine) error
	Update(ctx context.Context, machine *entity.VendingMachine) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VendingMachine, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VendingMachine, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
