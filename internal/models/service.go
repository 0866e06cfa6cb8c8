package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MasterService links a master to a service they can perform.
// The composite unique index rejects duplicate assignments.
type MasterService struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MasterID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_master_service" json:"master_id"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_master_service" json:"service_id"`
	CreatedAt time.Time `json:"created_at"`
	Master    User      `gorm:"foreignKey:MasterID" json:"-"`
	Service   Service   `gorm:"foreignKey:ServiceID" json:"-"`
}
