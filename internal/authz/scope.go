package authz

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForOperator returns a GORM scope that filters rows by operator_id
// when a filter is given, and is a no-op otherwise.
func ForOperator(operatorID *uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if operatorID == nil {
			return db
		}
		return db.Where("operator_id = ?", *operatorID)
	}
}
