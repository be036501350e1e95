package memory

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type recordRepository struct {
	store *Store
	lock  locker
}

// NewRecordRepository returns a RecordRepository backed by store.
func NewRecordRepository(store *Store) repository.RecordRepository {
	return &recordRepository{store: store, lock: &store.mu}
}

func (repo *recordRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Record, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	record, ok := repo.store.records[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}

	return &record, nil
}

func (repo *recordRepository) List(_ context.Context) ([]*entity.Record, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	return repo.filter(nil), nil
}

func (repo *recordRepository) ListByProductName(_ context.Context, productName string) ([]*entity.Record, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	return repo.filter(func(r *entity.Record) bool { return r.ProductName == productName }), nil
}

func (repo *recordRepository) Count(_ context.Context) (int64, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	return int64(len(repo.store.records)), nil
}

func (repo *recordRepository) Create(_ context.Context, record *entity.Record) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if err := repo.store.stamp(&record.ID, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to generate record id")
	}
	repo.store.records[record.ID] = *record

	return nil
}

func (repo *recordRepository) Update(_ context.Context, record *entity.Record) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	current, ok := repo.store.records[record.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}

	updated := *record
	updated.StockID = current.StockID
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = repo.store.now()
	repo.store.records[record.ID] = updated

	return nil
}

func (repo *recordRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if _, ok := repo.store.records[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(repo.store.records, id)

	return nil
}

func (repo *recordRepository) filter(match func(*entity.Record) bool) []*entity.Record {
	records := make([]*entity.Record, 0, len(repo.store.records))
	for _, record := range repo.store.records {
		if match == nil || match(&record) {
			records = append(records, &record)
		}
	}
	newestFirst(records, func(r *entity.Record) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })

	return records
}
