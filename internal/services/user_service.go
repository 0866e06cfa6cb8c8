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
	ErrPhoneTaken   = errors.New("phone already registered")
	ErrInvalidRole  = errors.New("unknown role")
	ErrUserNotFound = errors.New("user not found")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create registers a user. Role is fixed here once and for all: there
// is no endpoint that changes it later.
func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	switch req.Role {
	case models.RoleOperator, models.RoleMaster, models.RoleClient:
	default:
		return nil, ErrInvalidRole
	}

	user := models.User{
		ID:    uuid.New(),
		Name:  req.Name,
		Phone: req.Phone,
		Role:  req.Role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPhoneTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

func (s *UserService) List(role *models.Role) ([]models.User, error) {
	users := make([]models.User, 0)
	q := s.db.Order("created_at ASC")
	if role != nil {
		q = q.Where("role = ?", *role)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
