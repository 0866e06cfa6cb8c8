package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOperator Role = "operator"
	RoleMaster   Role = "master"
	RoleClient   Role = "client"
)

// User is any person known to the shop: operators behind the counter,
// masters in the workshop, and clients. Role is assigned at creation
// and never reassigned — no endpoint updates it.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	Role      Role      `gorm:"size:20;not null;default:'client'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
