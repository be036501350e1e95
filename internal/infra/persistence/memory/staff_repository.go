package memory

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type staffRepository struct {
	store *Store
	lock  locker
}

// NewStaffRepository returns a StaffRepository backed by store.
func NewStaffRepository(store *Store) repository.StaffRepository {
	return &staffRepository{store: store, lock: &store.mu}
}

func (repo *staffRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Staff, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	staff, ok := repo.store.staffs[id]
	if !ok {
		return nil, repository.ErrStaffNotFound
	}
	staff = cloneStaff(staff)

	return &staff, nil
}

func (repo *staffRepository) List(_ context.Context) ([]*entity.Staff, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	staffs := make([]*entity.Staff, 0, len(repo.store.staffs))
	for _, staff := range repo.store.staffs {
		staff = cloneStaff(staff)
		staffs = append(staffs, &staff)
	}
	newestFirst(staffs, func(s *entity.Staff) (time.Time, uuid.UUID) { return s.CreatedAt, s.ID })

	return staffs, nil
}

func (repo *staffRepository) Create(_ context.Context, staff *entity.Staff) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if err := repo.store.stamp(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to generate staff id")
	}
	if staff.WorkDone == nil {
		staff.WorkDone = []entity.WorkDoneEntry{}
	}
	staff.Version = 0
	repo.store.staffs[staff.ID] = cloneStaff(*staff)

	return nil
}

func (repo *staffRepository) Save(_ context.Context, staff *entity.Staff) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	current, ok := repo.store.staffs[staff.ID]
	if !ok {
		return repository.ErrStaffNotFound
	}
	if current.Version != staff.Version {
		return repository.ErrStaleVersion
	}

	staff.Version++
	staff.CreatedAt = current.CreatedAt
	staff.UpdatedAt = repo.store.now()
	repo.store.staffs[staff.ID] = cloneStaff(*staff)

	return nil
}

func (repo *staffRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if _, ok := repo.store.staffs[id]; !ok {
		return repository.ErrStaffNotFound
	}
	delete(repo.store.staffs, id)

	return nil
}
