package unitofwork

import (
	"context"

	"quickie-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PerfumeRepository() contract.PerfumeRepository
	ReviewRepository() contract.ReviewRepository
	CollectionItemRepository() contract.CollectionItemRepository
	WishlistItemRepository() contract.WishlistItemRepository
	MoodBoardRepository() contract.MoodBoardRepository
	VendingMachineRepository() contract.VendingMachineRepository
	NotificationRepository() contract.NotificationRepository
}
