package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is the legacy flat billing entry kept for the old frontend:
// no shift binding, service stored by name, free-form CRUD. New code
// should create Operations instead.
type Record struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Client        string        `gorm:"size:255;not null;index" json:"client"`
	Car           string        `gorm:"size:255;not null;index" json:"car"`
	Service       string        `gorm:"size:255;not null" json:"service"`
	Price         float64       `gorm:"not null" json:"price"`
	Date          time.Time     `gorm:"not null" json:"date"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
