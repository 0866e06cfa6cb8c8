package authz

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGuard(t *testing.T) (*Guard, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGuard(db), db
}

func TestAuthorize_AllowsMatchingRole(t *testing.T) {
	guard, db := newTestGuard(t)

	user := models.User{ID: uuid.New(), Name: "Иван Петров", Phone: "+79991112233", Role: models.RoleOperator}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	got, err := guard.Authorize(user.ID, models.RoleOperator)
	if err != nil {
		t.Fatalf("Authorize failed: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, got.ID)
	}
}

func TestAuthorize_AnyOfSeveralRoles(t *testing.T) {
	guard, db := newTestGuard(t)

	master := models.User{ID: uuid.New(), Name: "Сергей Сидоров", Phone: "+79992223344", Role: models.RoleMaster}
	if err := db.Create(&master).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if _, err := guard.Authorize(master.ID, models.RoleOperator, models.RoleMaster); err != nil {
		t.Fatalf("Authorize failed: %v", err)
	}
}

func TestAuthorize_RoleMismatch(t *testing.T) {
	guard, db := newTestGuard(t)

	client := models.User{ID: uuid.New(), Name: "Клиент Иванов", Phone: "+79993334455", Role: models.RoleClient}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if _, err := guard.Authorize(client.ID, models.RoleOperator); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthorize_UnknownUser(t *testing.T) {
	guard, _ := newTestGuard(t)

	if _, err := guard.Authorize(uuid.New(), models.RoleOperator); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
