package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/models"
)

type CloseShiftRequest struct {
	ShiftID uuid.UUID `json:"shift_id"`
}

// ShiftLogEntry is a denormalized audit row: the log itself plus the
// operator's display name and the shift's boundaries at query time
// (ShiftEnd is null while the shift is still open).
type ShiftLogEntry struct {
	ID           uuid.UUID          `json:"id"`
	ShiftID      uuid.UUID          `json:"shift_id"`
	Action       models.ShiftAction `json:"action"`
	CreatedAt    time.Time          `json:"created_at"`
	OperatorID   uuid.UUID          `json:"operator_id"`
	OperatorName string             `json:"operator_name"`
	ShiftStart   time.Time          `json:"shift_start"`
	ShiftEnd     *time.Time         `json:"shift_end"`
}
