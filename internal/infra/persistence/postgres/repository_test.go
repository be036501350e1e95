package postgres

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db.Session(&gorm.Session{SkipDefaultTransaction: true})
}

func seedStock(t *testing.T, repo repository.StockRepository, name string, quantity int) *entity.Stock {
	t.Helper()

	stock := &entity.Stock{
		ProductName:    name,
		Quantity:       quantity,
		QuantityLeft:   quantity,
		Price:          2.5,
		CurrencySymbol: "$",
		DateParts:      entity.DateParts{Month: "March", Day: "4", Year: "2024"},
	}
	require.NoError(t, repo.Create(context.Background(), stock))

	return stock
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{
		Firstname:    "Jane",
		Lastname:     "Doe",
		Email:        "jane@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleAdmin,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, entity.RoleAdmin, found.Role)

	dup := &entity.User{Firstname: "J", Lastname: "D", Email: "jane@example.com", PasswordHash: "x", Role: entity.RoleAdmin}
	err = repo.Create(ctx, dup)
	assert.True(t, errors.Is(err, repository.ErrUserEmailTaken))

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))
	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.PasswordHash)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	assert.True(t, errors.Is(repo.UpdatePassword(ctx, uuid.New(), "x"), repository.ErrUserNotFound))
}

func TestStockRepository_SearchAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewStockRepository(newTestDB(t))

	for _, name := range []string{"Blue Pen", "Red Pen", "Stapler", "Pencil 50%", "Paper", "Ink"} {
		seedStock(t, repo, name, 10)
	}

	found, err := repo.SearchByProductName(ctx, "PEN", 10)
	require.NoError(t, err)
	assert.Len(t, found, 3)

	// LIKE wildcards in the query are matched literally.
	found, err = repo.SearchByProductName(ctx, "50%", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Pencil 50%", found[0].ProductName)

	found, err = repo.SearchByProductName(ctx, "", 3)
	require.NoError(t, err)
	assert.Len(t, found, 3)

	recent, err := repo.ListRecent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 5)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)

	byName, err := repo.FindByProductName(ctx, "Stapler")
	require.NoError(t, err)
	assert.Equal(t, "Stapler", byName.ProductName)

	_, err = repo.FindByProductName(ctx, "stapler")
	assert.True(t, errors.Is(err, repository.ErrStockNotFound))
}

func TestStockRepository_UpdateKeepsQuantityLeft(t *testing.T) {
	ctx := context.Background()
	repo := NewStockRepository(newTestDB(t))
	stock := seedStock(t, repo, "Pen", 10)

	_, err := repo.DecrementQuantityLeft(ctx, stock.ID, 4)
	require.NoError(t, err)

	stock.ProductName = "Gel Pen"
	stock.QuantityLeft = 99
	require.NoError(t, repo.Update(ctx, stock))

	got, err := repo.FindByID(ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gel Pen", got.ProductName)
	assert.Equal(t, 6, got.QuantityLeft)

	missing := &entity.Stock{ID: uuid.New(), ProductName: "x"}
	assert.True(t, errors.Is(repo.Update(ctx, missing), repository.ErrStockNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, uuid.New()), repository.ErrStockNotFound))
}

func TestStockRepository_DecrementIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	stock := seedStock(t, NewStockRepository(db), "Pen", 10)
	txManager := NewTransactionManager(db)

	var wg sync.WaitGroup
	for _, n := range []int{3, 4} {
		wg.Add(1)
		go func(amount int) {
			defer wg.Done()
			err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
				_, err := f.StockRepo().DecrementQuantityLeft(ctx, stock.ID, amount)

				return err
			})
			assert.NoError(t, err)
		}(n)
	}
	wg.Wait()

	got, err := NewStockRepository(db).FindByID(ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.QuantityLeft)
	assert.Equal(t, 10, got.Quantity)
}

func TestStockRepository_DecrementMissing(t *testing.T) {
	repo := NewStockRepository(newTestDB(t))

	_, err := repo.DecrementQuantityLeft(context.Background(), uuid.New(), 1)
	assert.True(t, errors.Is(err, repository.ErrStockNotFound))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	stock := seedStock(t, NewStockRepository(db), "Pen", 10)
	boom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.StockRepo().DecrementQuantityLeft(ctx, stock.ID, 5); err != nil {
			return err
		}
		if err := f.RecordRepo().Create(ctx, &entity.Record{ProductName: "Pen", Quantity: 5, StockID: stock.ID}); err != nil {
			return err
		}

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	got, err := NewStockRepository(db).FindByID(ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.QuantityLeft)

	total, err := NewRecordRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRecordRepository_ListByProductName(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordRepository(newTestDB(t))
	stockID := uuid.New()

	for _, name := range []string{"Pen", "Pen", "Ink"} {
		require.NoError(t, repo.Create(ctx, &entity.Record{
			ProductName:      name,
			Quantity:         2,
			PricePerQuantity: 1.5,
			TotalAmount:      3,
			Customer:         "ACME",
			Staff:            "Bob",
			StockID:          stockID,
		}))
	}

	pens, err := repo.ListByProductName(ctx, "Pen")
	require.NoError(t, err)
	assert.Len(t, pens, 2)

	pens[0].Customer = "Globex"
	require.NoError(t, repo.Update(ctx, pens[0]))
	got, err := repo.FindByID(ctx, pens[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Globex", got.Customer)
	assert.Equal(t, stockID, got.StockID)

	require.NoError(t, repo.Delete(ctx, got.ID))
	_, err = repo.FindByID(ctx, got.ID)
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))
}

func TestStaffRepository_SaveChecksVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewStaffRepository(newTestDB(t))

	staff := &entity.Staff{StaffName: "Bob", Email: "bob@example.com", PhoneNumber: "555", Position: "Clerk"}
	require.NoError(t, repo.Create(ctx, staff))
	assert.Equal(t, 0, staff.Version)

	first, err := repo.FindByID(ctx, staff.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, staff.ID)
	require.NoError(t, err)

	entry := first.AddWorkDone(entity.WorkDoneEntry{WorkDone: "Inventory count", Charge: 40})
	require.NoError(t, repo.Save(ctx, first))
	assert.Equal(t, 1, first.Version)

	second.AddWorkDone(entity.WorkDoneEntry{WorkDone: "Shelf restock", Charge: 20})
	assert.True(t, errors.Is(repo.Save(ctx, second), repository.ErrStaleVersion))

	got, err := repo.FindByID(ctx, staff.ID)
	require.NoError(t, err)
	require.Len(t, got.WorkDone, 1)
	assert.Equal(t, entry.ID, got.WorkDone[0].ID)
	assert.Equal(t, "Inventory count", got.WorkDone[0].WorkDone)
	assert.InDelta(t, 40, got.WorkDone[0].Charge, 0.001)

	ghost := &entity.Staff{ID: uuid.New()}
	assert.True(t, errors.Is(repo.Save(ctx, ghost), repository.ErrStaffNotFound))
}

func TestWorkdoneRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkdoneRepository(newTestDB(t))

	wd := &entity.Workdone{WorkDone: "Cleaning", Charge: "15", DateParts: entity.DateParts{Month: "May", Day: "1", Year: "2024"}}
	require.NoError(t, repo.Create(ctx, wd))

	wd.Charge = "20"
	require.NoError(t, repo.Update(ctx, wd))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "20", list[0].Charge)
	assert.Equal(t, "May", list[0].Month)

	require.NoError(t, repo.Delete(ctx, wd.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, wd.ID), repository.ErrWorkdoneNotFound))
}
