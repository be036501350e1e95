package impl

import (
	"context"
	"testing"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	mockRepo "inventory/internal/mocks/repository"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkdoneService_CreateWorkdone(t *testing.T) {
	workdoneRepo := mockRepo.NewMockWorkdoneRepository(t)
	srv := NewWorkdoneService(WorkdoneServiceParams{WorkdoneRepo: workdoneRepo, Logger: newDiscardLogger()})

	ctx := context.Background()
	input := &usecase.CreateWorkdoneInput{
		WorkDone: "inventory count",
		Charge:   "50",
		Date:     entity.DateParts{Month: "June", Day: "3", Year: "2024"},
	}

	workdoneRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Workdone")).
		Run(func(_ context.Context, workdone *entity.Workdone) {
			workdone.ID = uuid.New()
		}).
		Return(nil)

	workdone, err := srv.CreateWorkdone(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, workdone.ID)
	assert.Equal(t, "50", workdone.Charge)
	assert.Equal(t, input.Date, workdone.DateParts)
}

func TestWorkdoneService_UpdateWorkdone(t *testing.T) {
	workdoneRepo := mockRepo.NewMockWorkdoneRepository(t)
	srv := NewWorkdoneService(WorkdoneServiceParams{WorkdoneRepo: workdoneRepo, Logger: newDiscardLogger()})

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Workdone{ID: id, WorkDone: "count", Charge: "10"}
	charge := "15"

	workdoneRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	workdoneRepo.EXPECT().Update(ctx, existing).Return(nil)

	workdone, err := srv.UpdateWorkdone(ctx, id, &usecase.UpdateWorkdoneInput{Charge: &charge})

	require.NoError(t, err)
	assert.Equal(t, "15", workdone.Charge)
	assert.Equal(t, "count", workdone.WorkDone)
}

func TestWorkdoneService_NotFound(t *testing.T) {
	workdoneRepo := mockRepo.NewMockWorkdoneRepository(t)
	srv := NewWorkdoneService(WorkdoneServiceParams{WorkdoneRepo: workdoneRepo, Logger: newDiscardLogger()})

	ctx := context.Background()
	id := uuid.New()

	workdoneRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrWorkdoneNotFound)
	workdoneRepo.EXPECT().Delete(ctx, id).Return(repository.ErrWorkdoneNotFound)

	_, err := srv.GetWorkdone(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrWorkDoneNotFound))

	err = srv.DeleteWorkdone(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrWorkDoneNotFound))
}
