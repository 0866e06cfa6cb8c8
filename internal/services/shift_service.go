package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/authz"
	"github.com/olegkh/autoservice-crm/internal/dto"
	"github.com/olegkh/autoservice-crm/internal/models"
	"gorm.io/gorm"
)

var (
	ErrShiftAlreadyOpen = errors.New("operator already has an open shift")
	ErrNoOpenShift      = errors.New("operator has no open shift")
	ErrShiftNotFound    = errors.New("shift not found or already closed")
)

// ShiftService owns the shift lifecycle: no-shift -> open -> closed.
// Closed is terminal for a shift instance; the operator may open a new
// one afterwards.
type ShiftService struct {
	db    *gorm.DB
	guard *authz.Guard
}

func NewShiftService(db *gorm.DB, guard *authz.Guard) *ShiftService {
	return &ShiftService{db: db, guard: guard}
}

// Open starts a new shift for the operator and appends the open audit
// entry in the same transaction. A concurrent second opener loses to
// the partial unique index on shifts and gets ErrShiftAlreadyOpen too.
func (s *ShiftService) Open(operatorID uuid.UUID) (*models.Shift, error) {
	if _, err := s.guard.Authorize(operatorID, models.RoleOperator); err != nil {
		return nil, err
	}

	var shift models.Shift
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Shift
		err := tx.Where("operator_id = ? AND end_time IS NULL", operatorID).First(&existing).Error
		if err == nil {
			return ErrShiftAlreadyOpen
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check open shift: %w", err)
		}

		now := time.Now()
		shift = models.Shift{
			ID:         uuid.New(),
			OperatorID: operatorID,
			Status:     models.ShiftStatusOpen,
			StartTime:  now,
		}
		if err := tx.Create(&shift).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrShiftAlreadyOpen
			}
			return fmt.Errorf("failed to create shift: %w", err)
		}

		log := models.ShiftLog{
			ID:         uuid.New(),
			ShiftID:    shift.ID,
			OperatorID: operatorID,
			Action:     models.ShiftActionOpen,
			CreatedAt:  now,
		}
		if err := tx.Create(&log).Error; err != nil {
			return fmt.Errorf("failed to append shift log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// Current returns the operator's unique open shift.
func (s *ShiftService) Current(operatorID uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := s.db.Where("operator_id = ? AND end_time IS NULL", operatorID).First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOpenShift
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up current shift: %w", err)
	}
	return &shift, nil
}

// Close ends the shift. The guarded UPDATE (end_time IS NULL in the
// predicate) makes a second close attempt report ErrShiftNotFound
// instead of re-closing, and covers shifts owned by someone else.
func (s *ShiftService) Close(shiftID, operatorID uuid.UUID) (*models.Shift, error) {
	if _, err := s.guard.Authorize(operatorID, models.RoleOperator); err != nil {
		return nil, err
	}

	var shift models.Shift
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&models.Shift{}).
			Where("id = ? AND operator_id = ? AND end_time IS NULL", shiftID, operatorID).
			Updates(map[string]interface{}{
				"status":   models.ShiftStatusClosed,
				"end_time": now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to close shift: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrShiftNotFound
		}

		log := models.ShiftLog{
			ID:         uuid.New(),
			ShiftID:    shiftID,
			OperatorID: operatorID,
			Action:     models.ShiftActionClose,
			CreatedAt:  now,
		}
		if err := tx.Create(&log).Error; err != nil {
			return fmt.Errorf("failed to append shift log: %w", err)
		}

		return tx.First(&shift, "id = ?", shiftID).Error
	})
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// Logs returns the audit trail newest first, denormalized with the
// operator name and the shift boundaries as of query time.
func (s *ShiftService) Logs(operatorID *uuid.UUID) ([]dto.ShiftLogEntry, error) {
	q := s.db.Table("shift_logs").
		Select("shift_logs.id, shift_logs.shift_id, shift_logs.action, shift_logs.created_at, " +
			"shift_logs.operator_id, users.name AS operator_name, " +
			"shifts.start_time AS shift_start, shifts.end_time AS shift_end").
		Joins("JOIN users ON users.id = shift_logs.operator_id").
		Joins("JOIN shifts ON shifts.id = shift_logs.shift_id").
		Order("shift_logs.created_at DESC")

	if operatorID != nil {
		q = q.Where("shift_logs.operator_id = ?", *operatorID)
	}

	entries := make([]dto.ShiftLogEntry, 0)
	if err := q.Scan(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list shift logs: %w", err)
	}
	return entries, nil
}
