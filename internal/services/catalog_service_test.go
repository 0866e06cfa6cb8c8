package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/dto"
	"github.com/olegkh/autoservice-crm/internal/models"
)

func TestAssignMaster_Duplicate(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	master := createUser(t, db, "Сергей Сидоров", models.RoleMaster)
	service := createService(t, db, "Замена масла", 2500)

	if _, err := catalog.AssignMaster(service.ID, master.ID); err != nil {
		t.Fatalf("AssignMaster failed: %v", err)
	}

	if _, err := catalog.AssignMaster(service.ID, master.ID); !errors.Is(err, ErrMasterAlreadyAssigned) {
		t.Fatalf("expected ErrMasterAlreadyAssigned, got %v", err)
	}
}

func TestAssignMaster_UnknownService(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	master := createUser(t, db, "Сергей Сидоров", models.RoleMaster)

	if _, err := catalog.AssignMaster(uuid.New(), master.ID); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestUnassignMaster(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	master := createUser(t, db, "Сергей Сидоров", models.RoleMaster)
	service := createService(t, db, "Диагностика", 500)

	if _, err := catalog.AssignMaster(service.ID, master.ID); err != nil {
		t.Fatalf("AssignMaster failed: %v", err)
	}
	if err := catalog.UnassignMaster(service.ID, master.ID); err != nil {
		t.Fatalf("UnassignMaster failed: %v", err)
	}
	if err := catalog.UnassignMaster(service.ID, master.ID); !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
	}
}

func TestMastersForService(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	master := createUser(t, db, "Сергей Сидоров", models.RoleMaster)
	other := createUser(t, db, "Пётр Смирнов", models.RoleMaster)
	service := createService(t, db, "Полировка", 5000)

	if _, err := catalog.AssignMaster(service.ID, master.ID); err != nil {
		t.Fatalf("AssignMaster failed: %v", err)
	}
	_ = other

	masters, err := catalog.MastersFor(service.ID)
	if err != nil {
		t.Fatalf("MastersFor failed: %v", err)
	}
	if len(masters) != 1 || masters[0].ID != master.ID {
		t.Fatalf("expected only the assigned master, got %+v", masters)
	}

	linked, err := catalog.ServicesFor(master.ID)
	if err != nil {
		t.Fatalf("ServicesFor failed: %v", err)
	}
	if len(linked) != 1 || linked[0].ID != service.ID {
		t.Fatalf("expected only the linked service, got %+v", linked)
	}
}

func TestServiceUpdate(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	service := createService(t, db, "Диагностика", 500)

	newPrice := 700.0
	updated, err := catalog.Update(service.ID, &dto.UpdateServiceRequest{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	_ = updated

	var stored models.Service
	if err := db.First(&stored, "id = ?", service.ID).Error; err != nil {
		t.Fatalf("failed to reload service: %v", err)
	}
	if stored.Price != newPrice {
		t.Fatalf("expected price %v, got %v", newPrice, stored.Price)
	}
	if stored.Name != service.Name {
		t.Fatalf("name should be unchanged, got %q", stored.Name)
	}
}
