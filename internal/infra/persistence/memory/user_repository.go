package memory

import (
	"context"
	"slices"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userRepository struct {
	store *Store
	lock  locker
}

// NewUserRepository returns a UserRepository backed by store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store, lock: &store.mu}
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	user, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	for _, user := range repo.store.users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) List(_ context.Context) ([]*entity.User, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	users := make([]*entity.User, 0, len(repo.store.users))
	for _, user := range repo.store.users {
		users = append(users, &user)
	}
	newestFirst(users, func(u *entity.User) (time.Time, uuid.UUID) { return u.CreatedAt, u.ID })
	slices.Reverse(users)

	return users, nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	for _, existing := range repo.store.users {
		if existing.Email == user.Email {
			return repository.ErrUserEmailTaken
		}
	}

	if err := repo.store.stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to generate user id")
	}
	repo.store.users[user.ID] = *user

	return nil
}

func (repo *userRepository) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	user, ok := repo.store.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = repo.store.now()
	repo.store.users[id] = user

	return nil
}
