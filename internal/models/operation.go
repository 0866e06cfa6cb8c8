package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Operation is a single billable transaction recorded against the
// shift that was open when it was created. It keeps its shift_id after
// the shift closes. CancelReason is populated only when the status is
// cancelled.
type Operation struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ShiftID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"shift_id"`
	OperatorID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"operator_id"`
	MasterID      *uuid.UUID    `gorm:"type:uuid;index" json:"master_id"`
	ServiceID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"service_id"`
	ClientName    string        `gorm:"size:255;not null" json:"client_name"`
	Car           string        `gorm:"size:255;not null" json:"car"`
	Price         float64       `gorm:"not null" json:"price"`
	Comment       string        `gorm:"type:text" json:"comment"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	CancelReason  *string       `gorm:"type:text" json:"cancel_reason"`
	Date          time.Time     `gorm:"not null" json:"date"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Shift         Shift         `gorm:"foreignKey:ShiftID" json:"-"`
	Operator      User          `gorm:"foreignKey:OperatorID" json:"-"`
	Service       Service       `gorm:"foreignKey:ServiceID" json:"-"`
}
