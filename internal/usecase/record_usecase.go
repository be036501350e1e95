package usecase

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// AddRecordInput defines a consumption of a stock item, matched by product name.
type AddRecordInput struct {
	ProductName      string
	Quantity         int
	PricePerQuantity float64
	Overview         string
	Customer         string
	Staff            string
	Date             entity.DateParts
}

// UpdateRecordInput holds the fields to change; nil fields are kept.
// Editing a record does not touch the stock it was taken from.
type UpdateRecordInput struct {
	ProductName      *string
	Quantity         *int
	PricePerQuantity *float64
	Overview         *string
	Customer         *string
	Staff            *string
	Month            *string
	Day              *string
	Year             *string
}

// RecordUsecase defines usage record operations.
type RecordUsecase interface {
	// AddRecord stores the record and decrements the matching stock in one transaction.
	AddRecord(ctx context.Context, input *AddRecordInput) (*entity.Record, error)

	GetRecord(ctx context.Context, id uuid.UUID) (*entity.Record, error)
	ListRecords(ctx context.Context) ([]*entity.Record, error)
	ListRecordsByProductName(ctx context.Context, productName string) ([]*entity.Record, error)
	CountRecords(ctx context.Context) (int64, error)
	UpdateRecord(ctx context.Context, id uuid.UUID, input *UpdateRecordInput) (*entity.Record, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	ExportRecords(ctx context.Context) ([]byte, error)
}
