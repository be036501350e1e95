package memory

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type workdoneRepository struct {
	store *Store
	lock  locker
}

// NewWorkdoneRepository returns a WorkdoneRepository backed by store.
func NewWorkdoneRepository(store *Store) repository.WorkdoneRepository {
	return &workdoneRepository{store: store, lock: &store.mu}
}

func (repo *workdoneRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Workdone, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	workdone, ok := repo.store.workdones[id]
	if !ok {
		return nil, repository.ErrWorkdoneNotFound
	}

	return &workdone, nil
}

func (repo *workdoneRepository) List(_ context.Context) ([]*entity.Workdone, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	workdones := make([]*entity.Workdone, 0, len(repo.store.workdones))
	for _, workdone := range repo.store.workdones {
		workdones = append(workdones, &workdone)
	}
	newestFirst(workdones, func(w *entity.Workdone) (time.Time, uuid.UUID) { return w.CreatedAt, w.ID })

	return workdones, nil
}

func (repo *workdoneRepository) Create(_ context.Context, workdone *entity.Workdone) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if err := repo.store.stamp(&workdone.ID, &workdone.CreatedAt, &workdone.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to generate workdone id")
	}
	repo.store.workdones[workdone.ID] = *workdone

	return nil
}

func (repo *workdoneRepository) Update(_ context.Context, workdone *entity.Workdone) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	current, ok := repo.store.workdones[workdone.ID]
	if !ok {
		return repository.ErrWorkdoneNotFound
	}

	current.WorkDone = workdone.WorkDone
	current.Charge = workdone.Charge
	current.DateParts = workdone.DateParts
	current.UpdatedAt = repo.store.now()
	repo.store.workdones[workdone.ID] = current

	return nil
}

func (repo *workdoneRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if _, ok := repo.store.workdones[id]; !ok {
		return repository.ErrWorkdoneNotFound
	}
	delete(repo.store.workdones, id)

	return nil
}
