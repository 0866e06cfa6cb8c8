package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/olegkh/autoservice-crm/internal/dto"
	"github.com/olegkh/autoservice-crm/internal/models"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound       = errors.New("service not found")
	ErrMasterAlreadyAssigned = errors.New("master already assigned to this service")
	ErrAssignmentNotFound    = errors.New("master is not assigned to this service")
)

// CatalogService manages the offered services and which masters can
// perform which service.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Create(req *dto.CreateServiceRequest) (*models.Service, error) {
	svc := models.Service{
		ID:    uuid.New(),
		Name:  req.Name,
		Price: req.Price,
	}
	if err := s.db.Create(&svc).Error; err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

func (s *CatalogService) Get(id uuid.UUID) (*models.Service, error) {
	var svc models.Service
	if err := s.db.First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to look up service: %w", err)
	}
	return &svc, nil
}

func (s *CatalogService) List() ([]models.Service, error) {
	services := make([]models.Service, 0)
	if err := s.db.Order("created_at ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *CatalogService) Update(id uuid.UUID, req *dto.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if len(updates) == 0 {
		return svc, nil
	}

	if err := s.db.Model(svc).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

func (s *CatalogService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// AssignMaster links a master to a service. The composite unique index
// rejects a second identical link.
func (s *CatalogService) AssignMaster(serviceID, masterID uuid.UUID) (*models.MasterService, error) {
	if _, err := s.Get(serviceID); err != nil {
		return nil, err
	}

	link := models.MasterService{
		ID:        uuid.New(),
		MasterID:  masterID,
		ServiceID: serviceID,
	}
	if err := s.db.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMasterAlreadyAssigned
		}
		return nil, fmt.Errorf("failed to assign master: %w", err)
	}
	return &link, nil
}

func (s *CatalogService) UnassignMaster(serviceID, masterID uuid.UUID) error {
	result := s.db.Where("service_id = ? AND master_id = ?", serviceID, masterID).
		Delete(&models.MasterService{})
	if result.Error != nil {
		return fmt.Errorf("failed to unassign master: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// MastersFor lists masters linked to a service.
func (s *CatalogService) MastersFor(serviceID uuid.UUID) ([]models.User, error) {
	masters := make([]models.User, 0)
	err := s.db.Table("users").
		Joins("JOIN master_services ON master_services.master_id = users.id").
		Where("master_services.service_id = ?", serviceID).
		Order("users.name ASC").
		Find(&masters).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list masters: %w", err)
	}
	return masters, nil
}

// ServicesFor lists services a master is linked to.
func (s *CatalogService) ServicesFor(masterID uuid.UUID) ([]models.Service, error) {
	services := make([]models.Service, 0)
	err := s.db.Table("services").
		Joins("JOIN master_services ON master_services.service_id = services.id").
		Where("master_services.master_id = ?", masterID).
		Order("services.name ASC").
		Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}
