package memory

import (
	"context"

	"inventory/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager whose transactions run one at a time.
// A failing callback restores the tables to how they were before it started.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store, lock: noLock{}}
}

func (f *repositoryFactory) StockRepo() repository.StockRepository {
	return &stockRepository{store: f.store, lock: noLock{}}
}

func (f *repositoryFactory) RecordRepo() repository.RecordRepository {
	return &recordRepository{store: f.store, lock: noLock{}}
}

func (f *repositoryFactory) StaffRepo() repository.StaffRepository {
	return &staffRepository{store: f.store, lock: noLock{}}
}

func (f *repositoryFactory) WorkdoneRepo() repository.WorkdoneRepository {
	return &workdoneRepository{store: f.store, lock: noLock{}}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.take()
	committed := false
	defer func() {
		if !committed {
			tm.store.restore(snap)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		return err
	}
	committed = true

	return nil
}
