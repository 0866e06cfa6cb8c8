package services

import (
	"errors"
	"testing"

	"github.com/olegkh/autoservice-crm/internal/dto"
	"github.com/olegkh/autoservice-crm/internal/models"
)

func TestCreateUser_DuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	req := &dto.CreateUserRequest{
		Name:  "Иван Петров",
		Phone: "+79991112233",
		Role:  models.RoleOperator,
	}
	if _, err := users.Create(req); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	req.Name = "Другой Иван"
	if _, err := users.Create(req); !errors.Is(err, ErrPhoneTaken) {
		t.Fatalf("expected ErrPhoneTaken, got %v", err)
	}
}

func TestCreateUser_InvalidRole(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	req := &dto.CreateUserRequest{
		Name:  "Иван Петров",
		Phone: "+79991112233",
		Role:  models.Role("admin"),
	}
	if _, err := users.Create(req); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestListUsers_FilterByRole(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	createUser(t, db, "Иван Петров", models.RoleOperator)
	createUser(t, db, "Сергей Сидоров", models.RoleMaster)

	role := models.RoleMaster
	masters, err := users.List(&role)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(masters) != 1 || masters[0].Role != models.RoleMaster {
		t.Fatalf("expected only masters, got %+v", masters)
	}
}
