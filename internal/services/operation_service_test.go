package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/authz"
	"github.com/olegkh/autoservice-crm/internal/dto"
	"github.com/olegkh/autoservice-crm/internal/models"
	"gorm.io/gorm"
)

func createRequest(serviceID uuid.UUID) *dto.CreateOperationRequest {
	return &dto.CreateOperationRequest{
		ServiceID:  serviceID,
		ClientName: "Клиент Иванов",
		Car:        "A123BC77",
		Price:      2500,
	}
}

func TestCreateOperation_BindsToOpenShift(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	operator := createUser(t, db, "Иван Петров", models.RoleOperator)
	service := createService(t, db, "Замена масла", 2500)

	shift, err := ops.shifts.Open(operator.ID)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	op, err := ops.Create(operator.ID, createRequest(service.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if op.ShiftID != shift.ID {
		t.Fatalf("expected shift %s, got %s", shift.ID, op.ShiftID)
	}
	if op.PaymentStatus != models.PaymentStatusPending {
		t.Fatalf("expected pending status, got %q", op.PaymentStatus)
	}
	if op.Date.IsZero() {
		t.Fatal("expected operation date to be set")
	}
}

func TestCreateOperation_NoOpenShift(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	operator := createUser(t, db, "Иван Петров", models.RoleOperator)
	service := createService(t, db, "Диагностика", 500)

	if _, err := ops.Create(operator.ID, createRequest(service.ID)); !errors.Is(err, ErrNoOpenShift) {
		t.Fatalf("expected ErrNoOpenShift, got %v", err)
	}

	var count int64
	db.Model(&models.Operation{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no operation rows, got %d", count)
	}
}

func TestCreateOperation_RequiresOperatorRole(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	master := createUser(t, db, "Сергей Сидоров", models.RoleMaster)
	service := createService(t, db, "Полировка", 5000)

	if _, err := ops.Create(master.ID, createRequest(service.ID)); !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPay_TransitionsExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	operator := createUser(t, db, "Иван Петров", models.RoleOperator)
	service := createService(t, db, "Замена масла", 2500)

	if _, err := ops.shifts.Open(operator.ID); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	op, err := ops.Create(operator.ID, createRequest(service.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	paid, err := ops.Pay(op.ID, operator.ID)
	if err != nil {
		t.Fatalf("Pay failed: %v", err)
	}
	if paid.PaymentStatus != models.PaymentStatusPaid {
		t.Fatalf("expected paid status, got %q", paid.PaymentStatus)
	}

	if _, err := ops.Pay(op.ID, operator.ID); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus on second pay, got %v", err)
	}
}

func TestPay_RoleChecks(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	client := createUser(t, db, "Клиент Иванов", models.RoleClient)

	if _, err := ops.Pay(uuid.New(), client.ID); !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for client, got %v", err)
	}

	// Masters pass the role check but have no shift of their own.
	master := createUser(t, db, "Сергей Сидоров", models.RoleMaster)
	if _, err := ops.Pay(uuid.New(), master.ID); !errors.Is(err, ErrNoOpenShift) {
		t.Fatalf("expected ErrNoOpenShift for master, got %v", err)
	}
}

func TestPay_OperationOutsideCallerShift(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	first := createUser(t, db, "Иван Петров", models.RoleOperator)
	second := createUser(t, db, "Анна Козлова", models.RoleOperator)
	service := createService(t, db, "Замена масла", 2500)

	if _, err := ops.shifts.Open(first.ID); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := ops.shifts.Open(second.ID); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	op, err := ops.Create(first.ID, createRequest(service.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := ops.Pay(op.ID, second.ID); !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestCancel_RecordsReasonVerbatim(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	operator := createUser(t, db, "Иван Петров", models.RoleOperator)
	service := createService(t, db, "Диагностика", 500)

	if _, err := ops.shifts.Open(operator.ID); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	op, err := ops.Create(operator.ID, createRequest(service.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	reason := "Клиент передумал"
	cancelled, err := ops.Cancel(op.ID, operator.ID, reason)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if cancelled.PaymentStatus != models.PaymentStatusCancelled {
		t.Fatalf("expected cancelled status, got %q", cancelled.PaymentStatus)
	}
	if cancelled.CancelReason == nil || *cancelled.CancelReason != reason {
		t.Fatalf("expected reason %q, got %v", reason, cancelled.CancelReason)
	}

	var stored models.Operation
	if err := db.First(&stored, "id = ?", op.ID).Error; err != nil {
		t.Fatalf("failed to reload operation: %v", err)
	}
	if stored.CancelReason == nil || *stored.CancelReason != reason {
		t.Fatalf("stored reason mismatch: %v", stored.CancelReason)
	}
}

func TestCancel_RequiresReason(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	operator := createUser(t, db, "Иван Петров", models.RoleOperator)

	if _, err := ops.Cancel(uuid.New(), operator.ID, ""); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
}

func TestCancel_AllowedAfterPaid(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	operator := createUser(t, db, "Иван Петров", models.RoleOperator)
	service := createService(t, db, "Замена масла", 2500)

	if _, err := ops.shifts.Open(operator.ID); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	op, err := ops.Create(operator.ID, createRequest(service.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := ops.Pay(op.ID, operator.ID); err != nil {
		t.Fatalf("Pay failed: %v", err)
	}

	cancelled, err := ops.Cancel(op.ID, operator.ID, "ошибка кассы")
	if err != nil {
		t.Fatalf("Cancel after pay failed: %v", err)
	}
	if cancelled.PaymentStatus != models.PaymentStatusCancelled {
		t.Fatalf("expected cancelled status, got %q", cancelled.PaymentStatus)
	}
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	operator := createUser(t, db, "Иван Петров", models.RoleOperator)
	service := createService(t, db, "Полировка", 5000)

	if _, err := ops.shifts.Open(operator.ID); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	op, err := ops.Create(operator.ID, createRequest(service.ID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := ops.Delete(op.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := db.First(&models.Operation{}, "id = ?", op.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected row to be gone, got %v", err)
	}

	if err := ops.Delete(op.ID); !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestList_FilterByOperator(t *testing.T) {
	db := newTestDB(t)
	ops := newOperationService(db)
	first := createUser(t, db, "Иван Петров", models.RoleOperator)
	second := createUser(t, db, "Анна Козлова", models.RoleOperator)
	service := createService(t, db, "Замена масла", 2500)

	if _, err := ops.shifts.Open(first.ID); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := ops.shifts.Open(second.ID); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := ops.Create(first.ID, createRequest(service.ID)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := ops.Create(second.ID, createRequest(service.ID)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := ops.List(nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(all))
	}

	mine, err := ops.List(&first.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(mine))
	}
	if mine[0].OperatorID != first.ID {
		t.Fatalf("expected first operator's operation")
	}
}
