// Package persistence selects the storage backend named by database.driver and provides
// the transaction manager and repositories built on it.
package persistence

import (
	"log/slog"

	"inventory/config"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/memory"
	"inventory/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params holds the dependencies of New.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of persistence components handed to the use cases.
type Repositories struct {
	fx.Out

	TxManager repository.TransactionManager
	Users     repository.UserRepository
	Stocks    repository.StockRepository
	Records   repository.RecordRepository
	Staffs    repository.StaffRepository
	Workdones repository.WorkdoneRepository
}

// New opens the configured backend.
func New(params Params) (Repositories, error) {
	driver := params.Config.Database.Driver
	params.Logger.Info("Initializing persistence", slog.String("driver", driver))

	if driver == config.DriverMemory {
		store := memory.NewStore()

		return Repositories{
			TxManager: memory.NewTransactionManager(store),
			Users:     memory.NewUserRepository(store),
			Stocks:    memory.NewStockRepository(store),
			Records:   memory.NewRecordRepository(store),
			Staffs:    memory.NewStaffRepository(store),
			Workdones: memory.NewWorkdoneRepository(store),
		}, nil
	}

	dbParams := postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case config.DriverPostgres:
		db, err = postgres.New(dbParams)
	case config.DriverSQLite:
		db, err = postgres.NewSQLite(dbParams)
	default:
		return Repositories{}, errors.Errorf("unknown database driver: %s", driver)
	}
	if err != nil {
		return Repositories{}, err
	}

	return Repositories{
		TxManager: postgres.NewTransactionManager(db),
		Users:     postgres.NewUserRepository(db),
		Stocks:    postgres.NewStockRepository(db),
		Records:   postgres.NewRecordRepository(db),
		Staffs:    postgres.NewStaffRepository(db),
		Workdones: postgres.NewWorkdoneRepository(db),
	}, nil
}
