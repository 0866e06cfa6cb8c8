package dto

import "github.com/google/uuid"

type CreateOperationRequest struct {
	ServiceID  uuid.UUID  `json:"service_id"`
	MasterID   *uuid.UUID `json:"master_id"`
	ClientName string     `json:"client_name"`
	Car        string     `json:"car"`
	Price      float64    `json:"price"`
	Comment    string     `json:"comment"`
}

type CancelOperationRequest struct {
	Reason string `json:"reason"`
}
