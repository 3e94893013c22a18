package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"
	"quickie-be/internal/repository/unitofwork"
	"quickie-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func connect(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	return unitofwork.NewRepositoryFactory(gormDB)
}

func TestGormConnection(t *testing.T) {
	uowFactory := connect(t)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.PerfumeRepository())
	assert.NotNil(t, uow.ReviewRepository())
	assert.NotNil(t, uow.VendingMachineRepository())

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Perfume Repository", func(t *testing.T) {
		count, err := uow.PerfumeRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Perfume count: %d", count)
	})
}

func TestPerfumeReviewRoundTrip(t *testing.T) {
	uowFactory := connect(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	user := &entity.User{
		Id:       uuid.New(),
		Email:    "test-integration-" + uuid.New().String() + "@example.com",
		FullName: "Integration Test User",
		Role:     entity.UserRoleUser,
		Status:   entity.UserStatusActive,
	}

	perfume := &entity.Perfume{
		Id:    uuid.New(),
		Name:  "Integration Test Perfume",
		Brand: "Test Brand",
		Price: 42,
		Tags:  []string{"test"},
		NoteGroups: []entity.PerfumeNoteGroup{
			{Label: "top", Notes: []entity.PerfumeNote{{Name: "bergamot", Weight: 50}}},
		},
		CreatedAt: time.Now(),
	}

	assert.NoError(t, uow.UserRepository().Create(ctx, user))
	assert.NoError(t, uow.PerfumeRepository().Create(ctx, perfume))

	review := &entity.Review{
		Id:        uuid.New(),
		PerfumeId: perfume.Id,
		UserId:    user.Id,
		Rating:    5,
		Comment:   "Round trip test",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, uow.ReviewRepository().Create(ctx, review))

	found, err := uow.ReviewRepository().FindOne(ctx,
		specification.ByPerfumeID{PerfumeID: perfume.Id},
		specification.OwnedBy{UserID: user.Id},
	)
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, 5, found.Rating)
	}

	// Rating recompute path
	assert.NoError(t, uow.PerfumeRepository().UpdateRating(ctx, perfume.Id, 5, 1))

	reloaded, err := uow.PerfumeRepository().FindOne(ctx, specification.ByID{ID: perfume.Id})
	assert.NoError(t, err)
	if assert.NotNil(t, reloaded) {
		assert.Equal(t, float64(5), reloaded.AvgRating)
		assert.Equal(t, 1, reloaded.RatingCount)
	}

	// Cleanup
	assert.NoError(t, uow.ReviewRepository().Delete(ctx, review.Id))
	assert.NoError(t, uow.PerfumeRepository().Delete(ctx, perfume.Id))
}

func TestMoodBoardVisibility(t *testing.T) {
	uowFactory := connect(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	owner := uuid.New()
	stranger := uuid.New()

	private := &entity.MoodBoard{
		Id:        uuid.New(),
		UserId:    owner,
		Name:      "Private Visibility Board",
		IsPublic:  false,
		CreatedAt: time.Now(),
	}
	public := &entity.MoodBoard{
		Id:        uuid.New(),
		UserId:    owner,
		Name:      "Public Visibility Board",
		IsPublic:  true,
		CreatedAt: time.Now(),
	}
	assert.NoError(t, uow.MoodBoardRepository().Create(ctx, private))
	assert.NoError(t, uow.MoodBoardRepository().Create(ctx, public))

	// The owner sees their private board.
	found, err := uow.MoodBoardRepository().FindOne(ctx,
		specification.ByID{ID: private.Id},
		specification.PublicOrOwnedBy{UserID: owner},
	)
	assert.NoError(t, err)
	assert.NotNil(t, found)

	// A stranger does not.
	found, err = uow.MoodBoardRepository().FindOne(ctx,
		specification.ByID{ID: private.Id},
		specification.PublicOrOwnedBy{UserID: stranger},
	)
	assert.NoError(t, err)
	assert.Nil(t, found)

	// Everyone sees the public board, including anonymous callers.
	found, err = uow.MoodBoardRepository().FindOne(ctx,
		specification.ByID{ID: public.Id},
		specification.PublicOrOwnedBy{UserID: uuid.Nil},
	)
	assert.NoError(t, err)
	assert.NotNil(t, found)

	// Cleanup
	assert.NoError(t, uow.MoodBoardRepository().Delete(ctx, private.Id))
	assert.NoError(t, uow.MoodBoardRepository().Delete(ctx, public.Id))
}

func TestActiveUsersFilter(t *testing.T) {
	uowFactory := connect(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	active := &entity.User{
		Id:       uuid.New(),
		Email:    "active-" + uuid.New().String() + "@example.com",
		FullName: "Active Filter User",
		Role:     entity.UserRoleUser,
		Status:   entity.UserStatusActive,
	}
	blocked := &entity.User{
		Id:       uuid.New(),
		Email:    "blocked-" + uuid.New().String() + "@example.com",
		FullName: "Blocked Filter User",
		Role:     entity.UserRoleUser,
		Status:   entity.UserStatusBlocked,
	}
	assert.NoError(t, uow.UserRepository().Create(ctx, active))
	assert.NoError(t, uow.UserRepository().Create(ctx, blocked))

	users, err := uow.UserRepository().FindAll(ctx,
		specification.ByIDs{IDs: []uuid.UUID{active.Id, blocked.Id}},
		specification.ActiveUsers{},
	)
	assert.NoError(t, err)
	if assert.Len(t, users, 1) {
		assert.Equal(t, active.Id, users[0].Id)
	}
}

func TestTransactionRollback(t *testing.T) {
	uowFactory := connect(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	assert.NoError(t, uow.Begin(ctx))

	perfume := &entity.Perfume{
		Id:        uuid.New(),
		Name:      "Rollback Test Perfume",
		Brand:     "Test Brand",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, uow.PerfumeRepository().Create(ctx, perfume))
	assert.NoError(t, uow.Rollback())

	// The row must not survive the rollback.
	fresh := uowFactory.NewUnitOfWork(ctx)
	found, err := fresh.PerfumeRepository().FindOne(ctx, specification.ByID{ID: perfume.Id})
	assert.NoError(t, err)
	assert.Nil(t, found)
}
