package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/authz"
	"github.com/olegkh/autoservice-crm/internal/database"
	"github.com/olegkh/autoservice-crm/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema,
// including the partial unique index on open shifts.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, role models.Role) *models.User {
	t.Helper()

	user := models.User{
		ID:    uuid.New(),
		Name:  name,
		Phone: "+7999" + uuid.New().String()[:7],
		Role:  role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create %s user: %v", role, err)
	}
	return &user
}

func createService(t *testing.T, db *gorm.DB, name string, price float64) *models.Service {
	t.Helper()

	svc := models.Service{ID: uuid.New(), Name: name, Price: price}
	if err := db.Create(&svc).Error; err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return &svc
}

func newShiftService(db *gorm.DB) *ShiftService {
	return NewShiftService(db, authz.NewGuard(db))
}

func newOperationService(db *gorm.DB) *OperationService {
	shifts := newShiftService(db)
	return NewOperationService(db, authz.NewGuard(db), shifts)
}
