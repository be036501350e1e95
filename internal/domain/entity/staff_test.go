package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaffWithEntries(t *testing.T, n int) *Staff {
	t.Helper()

	staff := &Staff{ID: uuid.New(), StaffName: "Jane"}
	for i := range n {
		staff.AddWorkDone(WorkDoneEntry{
			WorkDone:  "task",
			Charge:    float64(10 * (i + 1)),
			DateParts: DateParts{Month: "May", Day: "1", Year: "2024"},
		})
	}

	return staff
}

func TestStaff_AddWorkDone_AssignsID(t *testing.T) {
	staff := &Staff{}

	entry := staff.AddWorkDone(WorkDoneEntry{WorkDone: "fix sink", Charge: 25})

	assert.NotEqual(t, uuid.Nil, entry.ID)
	require.Len(t, staff.WorkDone, 1)
	assert.Equal(t, entry, staff.WorkDone[0])
}

func TestStaff_EditWorkDone(t *testing.T) {
	staff := newStaffWithEntries(t, 3)
	target := staff.WorkDone[1]
	newDesc := "repaint"
	newCharge := 99.5

	edited, ok := staff.EditWorkDone(target.ID, WorkDonePatch{WorkDone: &newDesc, Charge: &newCharge})

	require.True(t, ok)
	assert.Equal(t, "repaint", edited.WorkDone)
	assert.Equal(t, 99.5, edited.Charge)
	assert.Equal(t, target.DateParts, edited.DateParts)
	assert.Equal(t, edited, staff.WorkDone[1])
}

func TestStaff_EditWorkDone_Missing(t *testing.T) {
	staff := newStaffWithEntries(t, 2)
	desc := "x"

	_, ok := staff.EditWorkDone(uuid.New(), WorkDonePatch{WorkDone: &desc})

	assert.False(t, ok)
}

func TestStaff_RemoveWorkDone_StrategiesLeaveSiblingsUntouched(t *testing.T) {
	strategies := map[string]RemovalStrategy{
		"splice": RemoveBySplice,
		"pull":   RemoveByPull,
	}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			staff := newStaffWithEntries(t, 4)
			original := append([]WorkDoneEntry(nil), staff.WorkDone...)
			victim := original[2]

			removed := staff.RemoveWorkDone(victim.ID, strategy)

			require.True(t, removed)
			require.Len(t, staff.WorkDone, 3)
			assert.Equal(t, []WorkDoneEntry{original[0], original[1], original[3]}, staff.WorkDone)
			assert.Equal(t, -1, staff.FindWorkDone(victim.ID))
		})
	}
}

func TestStaff_RemoveWorkDone_Missing(t *testing.T) {
	for _, strategy := range []RemovalStrategy{RemoveBySplice, RemoveByPull} {
		staff := newStaffWithEntries(t, 2)

		assert.False(t, staff.RemoveWorkDone(uuid.New(), strategy))
		assert.Len(t, staff.WorkDone, 2)
	}
}
