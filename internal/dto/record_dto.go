package dto

import (
	"time"

	"github.com/olegkh/autoservice-crm/internal/models"
)

type CreateRecordRequest struct {
	Client        string                `json:"client"`
	Car           string                `json:"car"`
	Service       string                `json:"service"`
	Price         float64               `json:"price"`
	Date          time.Time             `json:"date"`
	PaymentStatus *models.PaymentStatus `json:"payment_status"`
}

type UpdateRecordRequest struct {
	Client        *string               `json:"client"`
	Car           *string               `json:"car"`
	Service       *string               `json:"service"`
	Price         *float64              `json:"price"`
	Date          *time.Time            `json:"date"`
	PaymentStatus *models.PaymentStatus `json:"payment_status"`
}

type PaymentStatusUpdateRequest struct {
	PaymentStatus models.PaymentStatus `json:"payment_status"`
}
