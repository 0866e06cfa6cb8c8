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
	ErrOperationNotFound = errors.New("operation not found")
	ErrInvalidStatus     = errors.New("operation is not pending")
	ErrReasonRequired    = errors.New("cancel reason is required")
)

// OperationService drives the payment lifecycle of operations:
// pending -> paid or pending -> cancelled. Every mutation is scoped to
// the caller's currently open shift.
type OperationService struct {
	db     *gorm.DB
	guard  *authz.Guard
	shifts *ShiftService
}

func NewOperationService(db *gorm.DB, guard *authz.Guard, shifts *ShiftService) *OperationService {
	return &OperationService{db: db, guard: guard, shifts: shifts}
}

// Create records a new pending operation bound to the operator's open
// shift. service_id and master_id are stored as given; their existence
// is not checked here.
func (s *OperationService) Create(operatorID uuid.UUID, req *dto.CreateOperationRequest) (*models.Operation, error) {
	if _, err := s.guard.Authorize(operatorID, models.RoleOperator); err != nil {
		return nil, err
	}

	shift, err := s.shifts.Current(operatorID)
	if err != nil {
		return nil, err
	}

	op := models.Operation{
		ID:            uuid.New(),
		ShiftID:       shift.ID,
		OperatorID:    operatorID,
		MasterID:      req.MasterID,
		ServiceID:     req.ServiceID,
		ClientName:    req.ClientName,
		Car:           req.Car,
		Price:         req.Price,
		Comment:       req.Comment,
		PaymentStatus: models.PaymentStatusPending,
		Date:          time.Now(),
	}
	if err := s.db.Create(&op).Error; err != nil {
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}
	return &op, nil
}

// Pay transitions a pending operation in the caller's open shift to
// paid. The status predicate in the UPDATE makes the transition fire
// at most once even under concurrent requests.
func (s *OperationService) Pay(opID, callerID uuid.UUID) (*models.Operation, error) {
	if _, err := s.guard.Authorize(callerID, models.RoleOperator, models.RoleMaster); err != nil {
		return nil, err
	}

	shift, err := s.shifts.Current(callerID)
	if err != nil {
		return nil, err
	}

	op, err := s.inShift(opID, shift.ID)
	if err != nil {
		return nil, err
	}

	result := s.db.Model(&models.Operation{}).
		Where("id = ? AND shift_id = ? AND payment_status = ?", opID, shift.ID, models.PaymentStatusPending).
		Update("payment_status", models.PaymentStatusPaid)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to pay operation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvalidStatus
	}

	op.PaymentStatus = models.PaymentStatusPaid
	return op, nil
}

// Cancel marks an operation in the caller's open shift as cancelled
// and records the reason verbatim. There is no status guard: a paid
// operation can still be cancelled.
func (s *OperationService) Cancel(opID, operatorID uuid.UUID, reason string) (*models.Operation, error) {
	if _, err := s.guard.Authorize(operatorID, models.RoleOperator); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, ErrReasonRequired
	}

	shift, err := s.shifts.Current(operatorID)
	if err != nil {
		return nil, err
	}

	op, err := s.inShift(opID, shift.ID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(op).Updates(map[string]interface{}{
		"payment_status": models.PaymentStatusCancelled,
		"cancel_reason":  reason,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to cancel operation: %w", err)
	}

	op.PaymentStatus = models.PaymentStatusCancelled
	op.CancelReason = &reason
	return op, nil
}

// Delete hard-deletes an operation with no role or shift check.
func (s *OperationService) Delete(opID uuid.UUID) error {
	result := s.db.Delete(&models.Operation{}, "id = ?", opID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete operation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOperationNotFound
	}
	return nil
}

// List returns operations, optionally filtered by operator.
func (s *OperationService) List(operatorID *uuid.UUID) ([]models.Operation, error) {
	ops := make([]models.Operation, 0)
	err := s.db.Scopes(authz.ForOperator(operatorID)).Order("created_at ASC").Find(&ops).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	return ops, nil
}

func (s *OperationService) inShift(opID, shiftID uuid.UUID) (*models.Operation, error) {
	var op models.Operation
	err := s.db.Where("id = ? AND shift_id = ?", opID, shiftID).First(&op).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOperationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up operation: %w", err)
	}
	return &op, nil
}
