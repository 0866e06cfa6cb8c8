package models

import (
	"time"

	"github.com/google/uuid"
)

type ShiftStatus string

const (
	ShiftStatusOpen   ShiftStatus = "open"
	ShiftStatusClosed ShiftStatus = "closed"
)

type ShiftAction string

const (
	ShiftActionOpen  ShiftAction = "open"
	ShiftActionClose ShiftAction = "close"
)

// Shift is a bounded working session for one operator. EndTime is NULL
// while the shift is open; a partial unique index on
// (operator_id) WHERE end_time IS NULL guarantees at most one open
// shift per operator (see database.Migrate).
type Shift struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	OperatorID uuid.UUID   `gorm:"type:uuid;not null;index" json:"operator_id"`
	Status     ShiftStatus `gorm:"size:20;not null;default:'open'" json:"status"`
	StartTime  time.Time   `gorm:"not null" json:"start_time"`
	EndTime    *time.Time  `json:"end_time"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Operator   User        `gorm:"foreignKey:OperatorID" json:"-"`
}

// ShiftLog is the append-only audit trail: exactly one row per
// open/close transition. Rows are never updated or deleted.
type ShiftLog struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ShiftID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"shift_id"`
	OperatorID uuid.UUID   `gorm:"type:uuid;not null;index" json:"operator_id"`
	Action     ShiftAction `gorm:"size:10;not null" json:"action"`
	CreatedAt  time.Time   `gorm:"not null;index" json:"created_at"`
	Shift      Shift       `gorm:"foreignKey:ShiftID" json:"-"`
	Operator   User        `gorm:"foreignKey:OperatorID" json:"-"`
}
