// Package memory is a process-local persistence driver. It keeps every table in a map and
// serializes all access behind a single mutex, which makes it suitable for development and tests.
package memory

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds all tables of the in-memory driver.
type Store struct {
	mu sync.Mutex

	users     map[uuid.UUID]entity.User
	stocks    map[uuid.UUID]entity.Stock
	records   map[uuid.UUID]entity.Record
	staffs    map[uuid.UUID]entity.Staff
	workdones map[uuid.UUID]entity.Workdone

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]entity.User),
		stocks:    make(map[uuid.UUID]entity.Stock),
		records:   make(map[uuid.UUID]entity.Record),
		staffs:    make(map[uuid.UUID]entity.Staff),
		workdones: make(map[uuid.UUID]entity.Workdone),
		now:       time.Now,
	}
}

// snapshot is a copy of every table taken at the start of a transaction.
type snapshot struct {
	users     map[uuid.UUID]entity.User
	stocks    map[uuid.UUID]entity.Stock
	records   map[uuid.UUID]entity.Record
	staffs    map[uuid.UUID]entity.Staff
	workdones map[uuid.UUID]entity.Workdone
}

// take must be called with mu held.
func (s *Store) take() snapshot {
	staffs := make(map[uuid.UUID]entity.Staff, len(s.staffs))
	for id, staff := range s.staffs {
		staffs[id] = cloneStaff(staff)
	}

	return snapshot{
		users:     cloneMap(s.users),
		stocks:    cloneMap(s.stocks),
		records:   cloneMap(s.records),
		staffs:    staffs,
		workdones: cloneMap(s.workdones),
	}
}

// restore must be called with mu held.
func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.stocks = snap.stocks
	s.records = snap.records
	s.staffs = snap.staffs
	s.workdones = snap.workdones
}

// stamp assigns an id when missing and sets both timestamps to now.
func (s *Store) stamp(id *uuid.UUID, createdAt, updatedAt *time.Time) error {
	if *id == uuid.Nil {
		v7, err := uuid.NewV7()
		if err != nil {
			return err
		}
		*id = v7
	}

	now := s.now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now

	return nil
}

// locker guards repository calls made outside a transaction. Repositories handed out by
// a transaction run while Execute already holds the store mutex, so they use noLock.
type locker interface {
	Lock()
	Unlock()
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

func cloneMap[V any](m map[uuid.UUID]V) map[uuid.UUID]V {
	out := make(map[uuid.UUID]V, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

func cloneStaff(staff entity.Staff) entity.Staff {
	staff.WorkDone = slices.Clone(staff.WorkDone)

	return staff
}

// newestFirst sorts by creation time descending. UUIDv7 ids break ties in creation order.
func newestFirst[T any](items []T, key func(T) (time.Time, uuid.UUID)) {
	slices.SortFunc(items, func(a, b T) int {
		at, aid := key(a)
		bt, bid := key(b)
		if c := bt.Compare(at); c != 0 {
			return c
		}

		return cmp.Compare(bid.String(), aid.String())
	})
}
