package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/dto"
	"github.com/olegkh/autoservice-crm/internal/models"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

// RecordService is the legacy flat CRUD kept for the old frontend.
// No workflow, no shift binding.
type RecordService struct {
	db *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

func (s *RecordService) Create(req *dto.CreateRecordRequest) (*models.Record, error) {
	status := models.PaymentStatusPending
	if req.PaymentStatus != nil {
		status = *req.PaymentStatus
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	rec := models.Record{
		ID:            uuid.New(),
		Client:        req.Client,
		Car:           req.Car,
		Service:       req.Service,
		Price:         req.Price,
		Date:          date,
		PaymentStatus: status,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return &rec, nil
}

func (s *RecordService) Get(id uuid.UUID) (*models.Record, error) {
	var rec models.Record
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to look up record: %w", err)
	}
	return &rec, nil
}

func (s *RecordService) List(offset, limit int) ([]models.Record, error) {
	records := make([]models.Record, 0)
	err := s.db.Order("created_at ASC").Offset(offset).Limit(limit).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func (s *RecordService) Update(id uuid.UUID, req *dto.UpdateRecordRequest) (*models.Record, error) {
	rec, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Client != nil {
		updates["client"] = *req.Client
	}
	if req.Car != nil {
		updates["car"] = *req.Car
	}
	if req.Service != nil {
		updates["service"] = *req.Service
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
	}
	if len(updates) == 0 {
		return rec, nil
	}

	if err := s.db.Model(rec).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	return rec, nil
}

func (s *RecordService) SetPaymentStatus(id uuid.UUID, status models.PaymentStatus) (*models.Record, error) {
	rec, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(rec).Update("payment_status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	rec.PaymentStatus = status
	return rec, nil
}

func (s *RecordService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Record{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
