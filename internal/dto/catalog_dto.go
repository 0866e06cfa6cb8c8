package dto

import (
	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/models"
)

type CreateUserRequest struct {
	Name  string      `json:"name"`
	Phone string      `json:"phone"`
	Role  models.Role `json:"role"`
}

type CreateServiceRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type UpdateServiceRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type AssignMasterRequest struct {
	MasterID uuid.UUID `json:"master_id"`
}
