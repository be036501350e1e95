package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workdone is a standalone work log entry, unrelated to any staff member.
type Workdone struct {
	ID       uuid.UUID `json:"_id"`
	WorkDone string    `json:"workDone"`
	Charge   string    `json:"charge"`
	DateParts
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
