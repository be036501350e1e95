package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned when a record is not found.
var ErrRecordNotFound = errors.New("record not found")

// RecordRepository defines persistence operations for usage records.
type RecordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)
	List(ctx context.Context) ([]*entity.Record, error)
	ListByProductName(ctx context.Context, productName string) ([]*entity.Record, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, record *entity.Record) error
	Update(ctx context.Context, record *entity.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
}
