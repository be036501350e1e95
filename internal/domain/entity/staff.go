package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Staff is a staff member together with their own work log.
// The WorkDone entries are owned by the staff member and only change through its methods.
type Staff struct {
	ID          uuid.UUID `json:"_id"`
	StaffName   string    `json:"staffName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Position    string    `json:"position"`
	DateParts
	WorkDone []WorkDoneEntry `json:"workDone"`

	// Version is bumped on every persisted change and guards whole-aggregate rewrites.
	Version int `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WorkDoneEntry is a single line of a staff member's work log.
type WorkDoneEntry struct {
	ID       uuid.UUID `json:"_id"`
	WorkDone string    `json:"workdone"`
	Charge   float64   `json:"charge"`
	DateParts
}

// WorkDonePatch carries the fields to change on an entry; nil fields are left as they are.
type WorkDonePatch struct {
	WorkDone *string
	Charge   *float64
	Month    *string
	Day      *string
	Year     *string
}

// RemovalStrategy selects how an entry is taken out of the work log.
type RemovalStrategy int

const (
	// RemoveBySplice locates the entry index and cuts it out.
	RemoveBySplice RemovalStrategy = iota
	// RemoveByPull filters out every entry with the given id.
	RemoveByPull
)

// AddWorkDone appends entry, assigning a fresh id when it has none.
func (s *Staff) AddWorkDone(entry WorkDoneEntry) WorkDoneEntry {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	s.WorkDone = append(s.WorkDone, entry)

	return entry
}

// FindWorkDone returns the index of the entry with the given id, or -1.
func (s *Staff) FindWorkDone(id uuid.UUID) int {
	return slices.IndexFunc(s.WorkDone, func(e WorkDoneEntry) bool {
		return e.ID == id
	})
}

// EditWorkDone applies patch to the entry with the given id in place.
func (s *Staff) EditWorkDone(id uuid.UUID, patch WorkDonePatch) (WorkDoneEntry, bool) {
	idx := s.FindWorkDone(id)
	if idx < 0 {
		return WorkDoneEntry{}, false
	}

	entry := &s.WorkDone[idx]
	if patch.WorkDone != nil {
		entry.WorkDone = *patch.WorkDone
	}
	if patch.Charge != nil {
		entry.Charge = *patch.Charge
	}
	if patch.Month != nil {
		entry.Month = *patch.Month
	}
	if patch.Day != nil {
		entry.Day = *patch.Day
	}
	if patch.Year != nil {
		entry.Year = *patch.Year
	}

	return *entry, true
}

// RemoveWorkDone removes the entry with the given id using strategy.
// It reports false when no entry matched.
func (s *Staff) RemoveWorkDone(id uuid.UUID, strategy RemovalStrategy) bool {
	switch strategy {
	case RemoveByPull:
		before := len(s.WorkDone)
		s.WorkDone = slices.DeleteFunc(s.WorkDone, func(e WorkDoneEntry) bool {
			return e.ID == id
		})

		return len(s.WorkDone) != before
	default:
		idx := s.FindWorkDone(id)
		if idx < 0 {
			return false
		}
		s.WorkDone = slices.Delete(s.WorkDone, idx, idx+1)

		return true
	}
}
