package unitofwork

import (
	"context"
	"fmt"

	"quickie-be/internal/repository/contract"
	"quickie-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when outside one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PerfumeRepository() contract.PerfumeRepository {
	return implementation.NewPerfumeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReviewRepository() contract.ReviewRepository {
	return implementation.NewReviewRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CollectionItemRepository() contract.CollectionItemRepository {
	return implementation.NewCollectionItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WishlistItemRepository() contract.WishlistItemRepository {
	return implementation.NewWishlistItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MoodBoardRepository() contract.MoodBoardRepository {
	return implementation.NewMoodBoardRepository(u.getDB())
}

func (u *UnitOfWorkImpl) VendingMachineRepository() contract.VendingMachineRepository {
	return implementation.NewVendingMachineRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NotificationRepository() contract.NotificationRepository {
	return implementation.NewNotificationRepository(u.getDB())
}
